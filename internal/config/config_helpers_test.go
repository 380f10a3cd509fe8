package config

import (
	"os"
	"path/filepath"
	"testing"
)

// validConfig returns a normalized config used by validation tests.
func validConfig() Config {
	return Config{
		Version:      1,
		LawNumber:    "7",
		OutputDir:    "./out",
		PreviewLimit: 3,
		DebounceMs:   300,
	}
}

// writeConfig writes payload to root/.quizjson/config.yml.
func writeConfig(t *testing.T, root, payload string) string {
	t.Helper()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// noEnv is a lookup with no variables set.
func noEnv(string) (string, bool) {
	return "", false
}

// mapEnv returns a lookup backed by vars.
func mapEnv(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}
