package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const (
	loggerKey contextKey = iota
	runIDKey
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithRunID tags the context logger with the run identifier.
func WithRunID(ctx context.Context, runID string) context.Context {
	ctx = context.WithValue(ctx, runIDKey, runID)
	return WithField(ctx, "run_id", runID)
}

// RunID extracts the run identifier from context.
func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// WithScope tags the context logger with the scope being reconciled.
func WithScope(ctx context.Context, scope string) context.Context {
	return WithField(ctx, "scope", scope)
}

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key string, value any) context.Context {
	logCtx := FromContext(ctx).With()
	switch v := value.(type) {
	case string:
		logCtx = logCtx.Str(key, v)
	case int:
		logCtx = logCtx.Int(key, v)
	case bool:
		logCtx = logCtx.Bool(key, v)
	default:
		logCtx = logCtx.Interface(key, v)
	}
	logger := logCtx.Logger()
	return WithLogger(ctx, &logger)
}
