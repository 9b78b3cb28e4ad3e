package config

import (
	"context"
	"log/slog"
	"os"
)

type loggerKey struct{}

// current is the process-wide configuration, set once by the root command
// after flag parsing.
var current *Config

// SetCurrent stores the resolved configuration for later retrieval.
func SetCurrent(cfg *Config) {
	current = cfg
}

// GetCurrent returns the resolved configuration, or nil before loading.
func GetCurrent() *Config {
	return current
}

// ContextWithLogger stores the logger in the context.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the context, falling back to the
// process default.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// NewLogger builds the process logger. Verbose switches on debug output.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
