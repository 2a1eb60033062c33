// Package logging wraps slog.Logger with field helpers used by the vectgen
// code generator.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with generator-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithFile adds a file field to the logger.
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("file", path),
	}
}

// WithRule adds the operation and index of a dispatch rule.
func (l *Logger) WithRule(op string, index int) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op, "index", index),
	}
}

// LogRender logs the rendering of one generated file.
func (l *Logger) LogRender(ctx context.Context, file string, decls int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "render failed",
			"file", file,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "render completed",
			"file", file,
			"decls", decls,
		)
	}
}

// LogWrite logs writing a generated file to disk.
func (l *Logger) LogWrite(ctx context.Context, path string, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write failed",
			"path", path,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "file written",
			"path", path,
			"bytes", bytes,
		)
	}
}
