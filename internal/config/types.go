package config

import (
	"time"

	"quizjson/internal/export"
)

// Default values applied by Normalize.
const (
	DefaultLawNumber    = "1"
	DefaultOutputDir    = "."
	DefaultPreviewLimit = 3
	DefaultDebounceMs   = 300
)

// Config is the contents of .quizjson/config.yml.
type Config struct {
	Version int `yaml:"version"`
	// LawNumber is kept as written; LawBase interprets it.
	LawNumber    string `yaml:"law_number"`
	OutputDir    string `yaml:"output_dir"`
	PreviewLimit int    `yaml:"preview_limit"`
	// DebounceMs of 0 selects DefaultDebounceMs, the same as leaving it out.
	DebounceMs int  `yaml:"debounce_ms"`
	NoColor    bool `yaml:"no_color"`
}

// Defaults returns the configuration used when no config file exists.
func Defaults() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// LawBase returns the starting law number, falling back to 1 when the
// configured value is not a positive integer.
func (c Config) LawBase() int {
	return export.ParseLawBase(c.LawNumber)
}

// Debounce returns the settling delay for watch and edit.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}
