// Package logging provides slog loggers in lokey's output formats.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the log output format.
type Format string

const (
	// FormatJSON emits one JSON object per record.
	FormatJSON Format = "json"
	// FormatHuman emits "TIMESTAMP [level] message | key=value" lines.
	FormatHuman Format = "human"
)

// New creates a logger writing to w in the given format.
func New(w io.Writer, format Format, level slog.Level) *slog.Logger {
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(NewHumanHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewStderr creates a logger writing to stderr. CLI commands log to stderr
// so that command output on stdout stays machine-parseable.
func NewStderr(format Format, level slog.Level) *slog.Logger {
	return New(os.Stderr, format, level)
}

// NewFile creates a logger appending to the file at path.
// The returned file must be closed by the caller.
func NewFile(path string, format Format, level slog.Level) (*slog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return New(f, format, level), f, nil
}

// NewDiscard creates a logger that drops everything. Used in tests.
func NewDiscard() *slog.Logger {
	return slog.New(NewHumanHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(100)}))
}

// ParseLevel converts a string to a slog.Level.
// Supports debug, info, warn, error (case-insensitive); anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat converts a string to a Format, defaulting to human.
func ParseFormat(s string) Format {
	if strings.ToLower(s) == "json" {
		return FormatJSON
	}
	return FormatHuman
}
