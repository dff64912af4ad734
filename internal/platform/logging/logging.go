// Package logging builds the service's slog loggers and carries them through
// request contexts. Every logger redacts credentials through masq before a
// record is written.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "schedule saved")
//
// Error logs from application services carry the operation name, the
// entity identifiers and the full error chain:
//
//	logger.ErrorContext(ctx, "failed to save schedule",
//	    slog.String("operation", "SaveSchedule"),
//	    slog.Int64("project_id", key.ProjectID),
//	    slog.Int64("company_id", key.CompanyID),
//	    slog.Any("error", err),
//	)
//
// Loggers taken from a request context already carry request_id and
// correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w.
//
// level accepts any name slog understands ("debug", "INFO", "warn+2", ...)
// and falls back to info. format "text" selects the text handler and
// anything else JSON. Debug loggers also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel converts a level name to a slog.Level. Unknown names yield
// slog.LevelInfo.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
