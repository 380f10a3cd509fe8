package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestParseConfigRejectsUnknownFields verifies strict decoding.
func TestParseConfigRejectsUnknownFields(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\nlaw: 3\n"))
	if err == nil || !strings.Contains(err.Error(), "field law not found") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

// TestParseConfigRejectsMultipleDocuments verifies single-document configs.
func TestParseConfigRejectsMultipleDocuments(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\n---\nversion: 1\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple document error, got %v", err)
	}
}

// TestParseConfigAcceptsNumericLawNumber verifies law_number may be written as a number.
func TestParseConfigAcceptsNumericLawNumber(t *testing.T) {
	cfg, err := ParseConfig([]byte("version: 1\nlaw_number: 12\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.LawNumber != "12" || cfg.LawBase() != 12 {
		t.Fatalf("unexpected law number %q (%d)", cfg.LawNumber, cfg.LawBase())
	}
}

// TestNormalizeFillsDefaults verifies unset fields receive defaults.
func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := Config{Version: 1}
	Normalize(&cfg)

	if cfg.LawNumber != DefaultLawNumber || cfg.OutputDir != DefaultOutputDir {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.PreviewLimit != DefaultPreviewLimit || cfg.Debounce() != 300*time.Millisecond {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

// TestParseConfigZeroDebounceUsesDefault verifies debounce_ms: 0 selects the default delay.
func TestParseConfigZeroDebounceUsesDefault(t *testing.T) {
	cfg, err := ParseConfig([]byte("version: 1\ndebounce_ms: 0\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Debounce() != DefaultDebounceMs*time.Millisecond {
		t.Fatalf("expected default debounce, got %v", cfg.Debounce())
	}
}

// TestParseConfigRejectsMultipleMappingDocuments verifies a second document is reported as such even when its fields are known.
func TestParseConfigRejectsMultipleMappingDocuments(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\n---\nunknown: true\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple document error, got %v", err)
	}
}

// TestLawBaseFallsBack verifies invalid law numbers fall back to 1.
func TestLawBaseFallsBack(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3", ""} {
		cfg := Config{LawNumber: raw}
		if got := cfg.LawBase(); got != 1 {
			t.Fatalf("LawBase(%q) = %d, want 1", raw, got)
		}
	}
	if got := (Config{LawNumber: "42abc"}).LawBase(); got != 42 {
		t.Fatalf("expected leading digits to parse, got %d", got)
	}
}

// TestValidateCollectsIssues verifies every invalid field is reported.
func TestValidateCollectsIssues(t *testing.T) {
	cfg := validConfig()
	cfg.Version = 2
	cfg.OutputDir = " "
	cfg.PreviewLimit = -1
	cfg.DebounceMs = -5

	err := Validate(&cfg)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := map[string]bool{}
	for _, issue := range validationErr.Issues {
		fields[issue.Field] = true
	}
	for _, field := range []string{"version", "output_dir", "preview_limit", "debounce_ms"} {
		if !fields[field] {
			t.Fatalf("expected issue for %s, got %v", field, validationErr.Issues)
		}
	}
}

// TestValidateAcceptsValidConfig verifies a valid config passes.
func TestValidateAcceptsValidConfig(t *testing.T) {
	cfg := validConfig()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestLoadMissingVersion verifies version is required.
func TestLoadMissingVersion(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "law_number: 3\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "version: is required") {
		t.Fatalf("expected version error, got %v", err)
	}
}

// TestScaffoldWritesLoadableConfig verifies the scaffold round-trips through Load.
func TestScaffoldWritesLoadableConfig(t *testing.T) {
	path := ConfigPath(t.TempDir())
	if err := Scaffold(path, "", ""); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffold: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("scaffold differs from defaults: %+v", cfg)
	}
	if err := Scaffold(path, "2", "out"); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}
}

// TestApplyEnvOverrides verifies QUIZJSON_* variables win over file values.
func TestApplyEnvOverrides(t *testing.T) {
	cfg := validConfig()
	ApplyEnv(&cfg, mapEnv(map[string]string{
		EnvLawNumber: " 9 ",
		EnvOutputDir: "exports",
		EnvNoColor:   "yes",
	}))
	if cfg.LawBase() != 9 || cfg.OutputDir != "exports" || !cfg.NoColor {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}

	cfg = validConfig()
	ApplyEnv(&cfg, noEnv)
	if cfg != validConfig() {
		t.Fatalf("expected config unchanged, got %+v", cfg)
	}
}

// TestLoadDotEnv verifies .env values reach the environment without overriding it.
func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	payload := EnvLawNumber + "=5\n" + EnvOutputDir + "=from-dotenv\n"
	if err := os.WriteFile(filepath.Join(dir, DotEnvName), []byte(payload), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv(EnvLawNumber, "")
	os.Unsetenv(EnvLawNumber)
	t.Setenv(EnvOutputDir, "from-shell")

	if err := LoadDotEnv(dir); err != nil {
		t.Fatalf("load .env: %v", err)
	}
	if got := os.Getenv(EnvLawNumber); got != "5" {
		t.Fatalf("expected law number from .env, got %q", got)
	}
	if got := os.Getenv(EnvOutputDir); got != "from-shell" {
		t.Fatalf("expected shell value to win, got %q", got)
	}
	if err := LoadDotEnv(t.TempDir()); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}

// TestScaffoldUsesGivenValues verifies prompted values land in the file.
func TestScaffoldUsesGivenValues(t *testing.T) {
	path := ConfigPath(t.TempDir())
	if err := Scaffold(path, "15", "exports"); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffold: %v", err)
	}
	if cfg.LawBase() != 15 || cfg.OutputDir != "exports" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
