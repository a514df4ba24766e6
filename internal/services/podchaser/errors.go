package podchaser

import (
	"errors"
	"fmt"
)

// ErrUpstream matches every failure produced by the client
var ErrUpstream = errors.New("upstream request failed")

// Kind labels a failure for logs and metrics
type Kind string

const (
	KindTransport      Kind = "transport"
	KindUpstreamStatus Kind = "upstream_status"
	KindMalformedBody  Kind = "malformed_body"
	KindMissingField   Kind = "missing_field"
	KindUnknown        Kind = "unknown"
)

// TransportError represents a failure to complete the HTTP exchange
type TransportError struct {
	Endpoint string
	Err      error
}

func (e TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.Endpoint, e.Err)
}

func (e TransportError) Unwrap() error { return e.Err }

func (e TransportError) Is(target error) bool {
	return target == ErrUpstream
}

// UpstreamStatusError represents a non-2xx answer from the upstream API
type UpstreamStatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e UpstreamStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream %s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("upstream %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

func (e UpstreamStatusError) Is(target error) bool {
	return target == ErrUpstream
}

// MalformedBodyError represents a response body that could not be decoded
type MalformedBodyError struct {
	Err error
}

func (e MalformedBodyError) Error() string {
	return fmt.Sprintf("decoding upstream response: %v", e.Err)
}

func (e MalformedBodyError) Unwrap() error { return e.Err }

func (e MalformedBodyError) Is(target error) bool {
	return target == ErrUpstream
}

// MissingFieldError represents a well-formed response without the expected result field
type MissingFieldError struct {
	Path           string
	UpstreamErrors []string
}

func (e MissingFieldError) Error() string {
	if len(e.UpstreamErrors) == 0 {
		return fmt.Sprintf("field %s is missing from the upstream response", e.Path)
	}
	return fmt.Sprintf("field %s is missing from the upstream response (upstream errors: %v)", e.Path, e.UpstreamErrors)
}

func (e MissingFieldError) Is(target error) bool {
	return target == ErrUpstream
}

// KindOf classifies an error returned by the client
func KindOf(err error) Kind {
	var (
		transportErr TransportError
		statusErr    UpstreamStatusError
		malformedErr MalformedBodyError
		missingErr   MissingFieldError
	)

	switch {
	case errors.As(err, &transportErr):
		return KindTransport
	case errors.As(err, &statusErr):
		return KindUpstreamStatus
	case errors.As(err, &malformedErr):
		return KindMalformedBody
	case errors.As(err, &missingErr):
		return KindMissingField
	default:
		return KindUnknown
	}
}
