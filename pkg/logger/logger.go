package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger; a no-op until Init or Set is called
var Log = zap.NewNop()

type requestIDKey struct{}

// Init initializes the global logger with the specified level and format ("json" or "console")
func Init(level, format string) error {
	var config zap.Config

	if format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	}

	config.Level = zap.NewAtomicLevelAt(ParseLevel(level))

	built, err := config.Build()
	if err != nil {
		return err
	}

	Set(built)
	return nil
}

// Set replaces the global logger
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	Log = l
}

// ParseLevel maps a level name to a zap level, defaulting to info
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Sync flushes any buffered log entries
func Sync() {
	_ = Log.Sync()
}

// Named creates a named logger
func Named(name string) *zap.Logger {
	return Log.Named(name)
}

// ContextWithRequestID adds a request ID to ctx
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext retrieves the request ID from ctx
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// FromContext returns l annotated with the request ID carried by ctx, if any
func FromContext(ctx context.Context, l *zap.Logger) *zap.Logger {
	if l == nil {
		l = Log
	}
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		return l.With(zap.String("request_id", requestID))
	}
	return l
}

// Error logs at error level on the global logger
func Error(msg string, fields ...zap.Field) { Log.Error(msg, fields...) }
