// Package logger implements a logging adapter over charmbracelet/log.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/devindavies/barrelint/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger. The underlying charm logger is safe for
// concurrent use, including level changes.
type Logger struct {
	logger *log.Logger
}

// New creates a new Logger writing to stderr.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing to w. Used by tests to capture
// output.
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: false,
			Level:           log.InfoLevel,
		}),
	}
}

// SetDebug toggles debug-level output.
func (l *Logger) SetDebug(enabled bool) {
	if enabled {
		l.logger.SetLevel(log.DebugLevel)
		return
	}
	l.logger.SetLevel(log.InfoLevel)
}

// Debug logs a debug message with optional key/value pairs.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.logger.Debug(msg, keyvals...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.logger.Error(msg, keyvals...)
}
