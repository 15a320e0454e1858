package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a structured logger writing to stderr at the given level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a structured logger with a custom writer
func NewWithWriter(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "smsledger",
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
}

// WithContext adds the logger to the context
func WithContext(ctx context.Context, logger *log.Logger) context.Context {
	return log.WithContext(ctx, logger)
}

// FromContext retrieves the logger from the context or returns the default logger
func FromContext(ctx context.Context) *log.Logger {
	return log.FromContext(ctx)
}
