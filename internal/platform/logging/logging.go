// Package logging builds the service's structured logger on log/slog and
// carries it through request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "relationship defined")
//
// Error logs name the operation, the relationship identifiers involved and
// the full error chain:
//
//	logger.ErrorContext(ctx, "failed to define relationship",
//	    slog.String("operation", "DefineTypeToType"),
//	    slog.String("type_a", a),
//	    slog.String("type_b", b),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New creates a configured *slog.Logger.
//
// level is one of "debug", "info", "warn" or "error" (case-insensitive);
// anything else falls back to info. format "text" selects the text handler,
// every other value the JSON handler. Debug logging adds source locations.
// Attribute values pass through the masq redactor before being written.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard returns a logger that drops every record. Useful for tests and for
// components constructed without a logger.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger returns a new context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel accepts the four named levels only; offsets such as "info+2"
// are not part of the configuration surface.
func parseLevel(level string) slog.Level {
	var lvl slog.Level
	switch err := lvl.UnmarshalText([]byte(level)); {
	case err != nil, lvl != slog.LevelDebug && lvl != slog.LevelInfo &&
		lvl != slog.LevelWarn && lvl != slog.LevelError:
		return slog.LevelInfo
	default:
		return lvl
	}
}
