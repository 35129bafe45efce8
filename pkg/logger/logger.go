package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/dnadb/pkg/config"
)

// New creates a new slog.Logger based on the provided configuration.
// It respects the logging level, format and destination from the
// config. Invalid values default to Info level, Text format and
// STDOUT. The "file" destination is resolved by the CLI, which
// passes an open log file through NewWithWriter.
func New(cfg *config.LogConfig) *slog.Logger {
	var w io.Writer
	switch strings.ToLower(cfg.Destination) {
	case "stderr":
		w = os.Stderr
	default:
		w = os.Stdout
	}
	return NewWithWriter(cfg, w)
}

// NewWithWriter creates a new slog.Logger writing to w.
func NewWithWriter(cfg *config.LogConfig, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: level,
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "": // Default to text if empty or invalid
		handler = slog.NewTextHandler(w, opts)
	default:
		// Invalid format, default to text
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level.
// Valid levels: "debug", "info", "warn", "error" (case-insensitive).
// Invalid levels default to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info", "": // Default to info if empty
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Invalid level, default to info
		return slog.LevelInfo
	}
}
