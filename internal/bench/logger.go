package bench

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with benchmark-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// WithKind adds the container kind to the logger.
func (l *Logger) WithKind(kind Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", string(kind)),
	}
}

// LogFixture logs the generated ID set.
func (l *Logger) LogFixture(ctx context.Context, count, maxID int, seed int64) {
	l.InfoContext(ctx, "fixture generated",
		"count", count,
		"max_id", maxID,
		"seed", seed,
	)
}

// LogPhase logs the completion of an add or read phase.
func (l *Logger) LogPhase(ctx context.Context, phase string, ops int, elapsed time.Duration) {
	l.DebugContext(ctx, phase+" completed",
		"ops", ops,
		"elapsed", elapsed,
	)
}

// LogResult logs a finished scenario.
func (l *Logger) LogResult(ctx context.Context, r Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scenario failed",
			"kind", string(r.Kind),
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "scenario completed",
		"kind", string(r.Kind),
		"add", r.AddTime,
		"read", r.ReadTime,
		"len", r.Len,
		"hits", r.Hits,
		"memory_bytes", r.Memory.Total(),
	)
}
