// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Context key types for storing values in context
type contextKey string

const (
	// RequestIDKey is the context key for the per-lookup request ID
	RequestIDKey contextKey = "request_id"
	// RowKey is the context key for the table row being processed
	RowKey contextKey = "row"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter creates a logger writing to w. Development gets a text handler
// at debug level; every other environment gets JSON at info level.
func NewWithWriter(env string, w io.Writer) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithContext returns a logger with request_id and row extracted from ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	newLogger := l

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		newLogger = newLogger.WithRequestID(requestID)
	}

	if row, ok := ctx.Value(RowKey).(int); ok {
		newLogger = &Logger{
			Logger: newLogger.With(slog.Int("row", row)),
		}
	}

	return newLogger
}

// WithRequestID returns a logger with request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// LookupSent logs an outbound identity lookup
func (l *Logger) LookupSent(endpoint, state, zip string) {
	l.Debug("skiptrace_request",
		slog.String("endpoint", endpoint),
		slog.String("state", state),
		slog.String("zip", zip),
	)
}

// LookupOutcome logs how a lookup resolved
func (l *Logger) LookupOutcome(outcome string, latencyMs float64) {
	l.Info("skiptrace_outcome",
		slog.String("outcome", outcome),
		slog.Float64("latency_ms", latencyMs),
	)
}

// LookupError logs a lookup failure that was degraded to an empty result
func (l *Logger) LookupError(outcome string, status int, err error) {
	l.Warn("skiptrace_error",
		slog.String("outcome", outcome),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
}
