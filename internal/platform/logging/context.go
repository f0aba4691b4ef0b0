package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Attribute keys attached by request-scoped helpers.
const (
	KeyRequestID = "request_id"
	KeyTraceID   = "trace_id"
	KeyTodoID    = "todo_id"
)

var defaultLogger = slog.Default()

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// With enriches the context logger with args, in slog.Logger.With form.
func With(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}

	return WithContext(ctx, FromContext(ctx).With(args...))
}

// WithRequestID tags every later log line for ctx with the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return With(ctx, slog.String(KeyRequestID, requestID))
}

// WithTraceID tags every later log line for ctx with the trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return With(ctx, slog.String(KeyTraceID, traceID))
}

// WithTodoID tags log lines for an operation on a single todo.
func WithTodoID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String(KeyTodoID, id))
}

// SetDefault sets the fallback logger and installs it as slog's default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
