package halfvec

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with halfvec-specific context.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// defaultLogger receives the single capability-selection log line emitted
// by Init. Silent unless replaced via SetLogger.
var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NoopLogger())
}

// SetLogger replaces the package logger. Call before Init to capture the
// capability-selection log line. A nil logger restores the no-op logger.
// Safe for concurrent use.
func SetLogger(l *Logger) {
	if l == nil {
		defaultLogger.Store(NoopLogger())
		return
	}
	defaultLogger.Store(l)
}

func logger() *Logger {
	return defaultLogger.Load()
}
