package config

import (
	"errors"
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the config at explicitPath, or the nearest config above
// startDir when explicitPath is empty. Without a config file it returns
// Defaults and an empty path. Environment overrides are applied last.
func Resolve(startDir, explicitPath string) (Config, string, error) {
	path := explicitPath
	if path == "" {
		found, err := FindConfigPath(startDir)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return Config{}, "", err
			}
			cfg := Defaults()
			ApplyEnv(&cfg, os.LookupEnv)
			return cfg, "", nil
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	ApplyEnv(&cfg, os.LookupEnv)
	return cfg, path, nil
}
