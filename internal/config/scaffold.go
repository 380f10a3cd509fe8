package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configTemplate = `version: 1

# First law number; exports are written to law_<N>_tests.json.
law_number: %q

# Directory for convert, watch and edit exports.
output_dir: %q

# Questions shown in full by preview.
preview_limit: 3

# Pause after the last change before watch and edit re-parse.
debounce_ms: 300

no_color: false
`

// Scaffold writes a starter config file at configPath. Empty values fall back
// to the defaults. It refuses to overwrite an existing file.
func Scaffold(configPath, lawNumber, outputDir string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if strings.TrimSpace(lawNumber) == "" {
		lawNumber = DefaultLawNumber
	}
	if strings.TrimSpace(outputDir) == "" {
		outputDir = DefaultOutputDir
	}
	payload := fmt.Sprintf(configTemplate, strings.TrimSpace(lawNumber), strings.TrimSpace(outputDir))

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
