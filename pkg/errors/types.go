package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigRequired ErrorCode = "CONFIG_REQUIRED"

	// Validation errors
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// External service errors
	ErrCodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrCodeAPITimeout          ErrorCode = "API_TIMEOUT"

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError represents a structured application error.
// Error() renders only Message; Cause is kept for errors.Is/As and logging.
type AppError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Extensions exposes the code and details to GraphQL error formatting
func (e *AppError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code": string(e.Code),
	}
	for k, v := range e.Details {
		ext[k] = v
	}
	return ext
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return New(code, message).WithCause(cause)
}

// Common error constructors

// UpstreamUnavailable creates the single public error for any failed upstream search
func UpstreamUnavailable(cause error) *AppError {
	return Wrap(cause, ErrCodeUpstreamUnavailable, "failed to fetch podcasts from the upstream API")
}

// InvalidInput creates an invalid input error
func InvalidInput(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

// ConfigError creates a configuration error
func ConfigError(key string, reason string) *AppError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("configuration error for '%s': %s", key, reason)).
		WithDetail("key", key).
		WithDetail("reason", reason)
}

// ConfigRequired creates an error for a configuration key that must be set
func ConfigRequired(key string) *AppError {
	return New(ErrCodeConfigRequired, fmt.Sprintf("configuration key '%s' is required", key)).
		WithDetail("key", key)
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}
