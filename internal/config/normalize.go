package config

import "strings"

// Normalize fills unset fields with defaults. Zero preview_limit and
// debounce_ms count as unset.
func Normalize(cfg *Config) {
	cfg.LawNumber = strings.TrimSpace(cfg.LawNumber)
	if cfg.LawNumber == "" {
		cfg.LawNumber = DefaultLawNumber
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.PreviewLimit == 0 {
		cfg.PreviewLimit = DefaultPreviewLimit
	}
	if cfg.DebounceMs == 0 {
		cfg.DebounceMs = DefaultDebounceMs
	}
}
