package slotgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with slotgo-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSlot adds a slot field to the logger.
func (l *Logger) WithSlot(slot uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("slot", slot),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogGrow logs a slot table growth milestone.
func (l *Logger) LogGrow(slots, live int) {
	l.Debug("slot table grew",
		"slots", slots,
		"live", live,
	)
}

// LogStale logs a handle rejected because its slot was reoccupied.
func (l *Logger) LogStale(h Handle, current uint32) {
	l.Debug("stale handle rejected",
		"slot", h.Slot(),
		"generation", h.Generation(),
		"current_generation", current,
	)
}

// LogCorrupted logs a broken bookkeeping invariant.
func (l *Logger) LogCorrupted(err error) {
	l.Error("container corrupted",
		"error", err,
	)
}
