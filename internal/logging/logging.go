// Package logging implements the library's logging interface using log/slog.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger adapts log/slog to the texcheck.Logger interface.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing to stderr.
func New() *Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a Logger writing to w. Used for testing.
func NewWithOutput(w io.Writer) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{logger: slog.New(handler)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.logger.Error("operation failed", "error", err)
}
