package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestParseLevel verifies level names and the default.
func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":       DefaultLevel,
		"debug":  zerolog.DebugLevel,
		" INFO ": zerolog.InfoLevel,
		"error":  zerolog.ErrorLevel,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

// TestNewWritesJSONWithRunID verifies non-terminal output is JSON with a run id.
func TestNewWritesJSONWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.InfoLevel)
	logger.Debug().Msg("hidden")
	logger.Info().Str("path", "quiz.txt").Msg("watching")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["message"] != "watching" || entry["path"] != "quiz.txt" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if run, _ := entry["run"].(string); run == "" {
		t.Fatalf("expected run id, got %v", entry)
	}
}

// TestFromEnvWritesToFile verifies QUIZJSON_LOG_FILE redirects output.
func TestFromEnvWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizjson.log")
	t.Setenv(FileEnv, path)
	t.Setenv(LevelEnv, "info")

	logger, closeFn, err := FromEnv(nil)
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	logger.Info().Msg("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("expected log line, got %q", string(data))
	}
}

// TestFromEnvRejectsBadLevel verifies invalid levels are reported.
func TestFromEnvRejectsBadLevel(t *testing.T) {
	t.Setenv(LevelEnv, "chatty")
	t.Setenv(FileEnv, "")
	if _, _, err := FromEnv(nil); err == nil {
		t.Fatalf("expected error")
	}
}
