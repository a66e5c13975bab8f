package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/event-registry/internal/config"
)

// LoggerConfig defines the configuration for the logger.
type LoggerConfig struct {
	// Level is one of debug, info, warn, error (case-insensitive)
	Level string
	// Format is json or text; anything else falls back to json
	Format string
	// Output is where log records are written; defaults to os.Stdout
	Output io.Writer
}

// FromConfig builds a LoggerConfig from the application's log settings.
func FromConfig(cfg config.LogConfig) LoggerConfig {
	return LoggerConfig{Level: cfg.Level, Format: cfg.Format}
}

// ParseLevel converts a textual level into a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", level)
	}
}

// New creates a logger from cfg without touching the process-wide default.
// An invalid level falls back to info and is reported on the new logger.
func New(cfg LoggerConfig) *slog.Logger {
	level, levelErr := ParseLevel(cfg.Level)

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler)
	if levelErr != nil {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}
	return logger
}

// Setup initializes the application's logging system from cfg, sets the
// resulting logger as the slog default and returns it.
func Setup(cfg LoggerConfig) (*slog.Logger, error) {
	logger := New(cfg)
	slog.SetDefault(logger)
	return logger, nil
}

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContextOr returns the logger stored in ctx, or fallback if none is set.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return fallback
}
