package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevelFromEnv returns the level named by AITUTOR_LOG_LEVEL, falling back
// to LOG_LEVEL and then INFO.
func LogLevelFromEnv() slog.Level {
	level := os.Getenv("AITUTOR_LOG_LEVEL")
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		return slog.LevelInfo
	}
	parsed, err := ParseLogLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using INFO\n", err)
	}
	return parsed
}

// ParseLogLevel parses DEBUG, INFO, WARN, WARNING or ERROR (any case).
// Unknown values yield INFO and an error.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger builds the process logger: JSON records in production, text
// otherwise. Nil w writes to stderr.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("service", "aitutor"))
}
