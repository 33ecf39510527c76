package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHumanHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatHuman, slog.LevelDebug)

	logger.Info("scan complete", "records", 42, "locales", 3)

	line := buf.String()
	if !strings.Contains(line, "[info] scan complete") {
		t.Errorf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "records=42") || !strings.Contains(line, "locales=3") {
		t.Errorf("attrs missing from line: %q", line)
	}
}

func TestHumanHandlerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatHuman, slog.LevelDebug)

	logger.Warn("write failed", "path", "my locales/en.json")

	if !strings.Contains(buf.String(), `path="my locales/en.json"`) {
		t.Errorf("value with spaces should be quoted: %q", buf.String())
	}
}

func TestHumanHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatHuman, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Error("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("records below level leaked: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("error record missing: %q", out)
	}
}

func TestHumanHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatHuman, slog.LevelDebug).WithGroup("writer")

	logger.Info("applied", "ops", 4)

	if !strings.Contains(buf.String(), "writer.ops=4") {
		t.Errorf("group prefix missing: %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, slog.LevelInfo)

	logger.Info("scan complete", "records", 1)

	if !strings.Contains(buf.String(), `"msg":"scan complete"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
