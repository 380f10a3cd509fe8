package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override config values.
const (
	EnvLawNumber = "QUIZJSON_LAW_NUMBER"
	EnvOutputDir = "QUIZJSON_OUTPUT_DIR"
	EnvNoColor   = "QUIZJSON_NO_COLOR"
)

// DotEnvName is the optional environment file in the working directory.
const DotEnvName = ".env"

// LoadDotEnv loads dir/.env into the process environment. Variables that are
// already set win. A missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, DotEnvName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", DotEnvName, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", DotEnvName, err)
	}
	return nil
}

// ApplyEnv overrides config values from QUIZJSON_* variables.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if lookup == nil {
		return
	}
	cfg.LawNumber = envOr(lookup, EnvLawNumber, cfg.LawNumber)
	cfg.OutputDir = envOr(lookup, EnvOutputDir, cfg.OutputDir)
	cfg.NoColor = envBool(lookup, EnvNoColor, cfg.NoColor)
}

func envOr(lookup func(string) (string, bool), key, def string) string {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func envBool(lookup func(string) (string, bool), key string, def bool) bool {
	v, _ := lookup(key)
	switch strings.TrimSpace(v) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
