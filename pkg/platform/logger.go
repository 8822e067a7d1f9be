// Package platform holds process-level wiring shared by the CLI commands.
package platform

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger configures the default slog logger. Output is JSON on stderr so
// command results on stdout stay machine-readable.
func InitLogger(level string) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
