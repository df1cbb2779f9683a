// Package logger builds the JSON slog logger shared by all ihavefood services.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a JSON logger tagged with the service name. The level
// comes from LOG_LEVEL (debug, info, warn, error; default info).
func NewLogger(serviceName string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	return logger.With(slog.String("service", serviceName))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
