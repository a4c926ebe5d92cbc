// Package logger provides structured logging configuration using log/slog.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel overrides the log level from the environment. It wins
// over the preference file's log_level entry.
const EnvLogLevel = "CROSSDIALOG_LOG_LEVEL"

// Config holds logger configuration.
type Config struct {
	Level  slog.Level
	Format string // "text" or "json"
}

// NewLogger creates a configured slog.Logger.
func NewLogger(cfg Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.Level,
		// Add a source location for debug level
		AddSource: cfg.Level <= slog.LevelDebug,
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name (case-insensitive) to a slog.Level.
// Valid values: DEBUG, INFO, WARN, WARNING, ERROR
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// DefaultConfig returns the default logger configuration.
// Parses the CROSSDIALOG_LOG_LEVEL environment variable to set the log level.
// Valid values: DEBUG, INFO, WARN, WARNING, ERROR
// Default: INFO
func DefaultConfig() Config {
	level := slog.LevelInfo

	// Parse CROSSDIALOG_LOG_LEVEL env var
	if envLevel := os.Getenv(EnvLogLevel); envLevel != "" {
		if parsed, ok := ParseLevel(envLevel); ok {
			level = parsed
		}
	}

	return Config{
		Level:  level,
		Format: "text",
	}
}
