package factorgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/factorgo/search"
)

// Logger wraps slog.Logger with factorgo-specific helpers.
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
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithRadix adds a radix field to the logger.
func (l *Logger) WithRadix(b int) *Logger {
	return &Logger{Logger: l.Logger.With("radix", b)}
}

// LogRun logs the outcome of one search run.
func (l *Logger) LogRun(ctx context.Context, res *search.Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed", "error", err)
		return
	}

	switch res.Status {
	case search.StatusFound:
		l.InfoContext(ctx, "factorization found",
			"p", res.P.String(),
			"q", res.Q.String(),
			"levels", res.Diagnostics.LevelsExplored,
			"generated", res.Diagnostics.Generated,
			"pruned", res.Diagnostics.Pruned,
		)
	default:
		l.InfoContext(ctx, "no factorization found",
			"status", res.Status.String(),
			"levels", res.Diagnostics.LevelsExplored,
			"generated", res.Diagnostics.Generated,
			"pruned", res.Diagnostics.Pruned,
		)
	}
}

// LogReport logs a report write.
func (l *Logger) LogReport(ctx context.Context, path string, err error) {
	if err != nil {
		l.WarnContext(ctx, "report write failed", "path", path, "error", err)
	} else {
		l.InfoContext(ctx, "report written", "path", path)
	}
}
