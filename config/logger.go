package config

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide slog.Logger. LOG_LEVEL accepts
// debug, info, warn, or error (default info). Production emits JSON
// for the log pipeline; everything else gets the text handler.
func NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if os.Getenv("GO_ENV") == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
