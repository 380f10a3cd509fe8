package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizjson/internal/config"
	"quizjson/internal/export"
)

// settings are the effective options of a command after merging defaults,
// the config file, the environment, and flags.
type settings struct {
	cfg        config.Config
	configPath string
	lawBase    int
	outputDir  string
	noColor    bool
}

// sharedFlags are flags common to the quiz commands.
type sharedFlags struct {
	configPath *string
	law        *string
	out        *string
	noColor    *bool
}

// addSharedFlags registers the flags named in include.
func addSharedFlags(flags *flag.FlagSet, include ...string) sharedFlags {
	var shared sharedFlags
	for _, name := range include {
		switch name {
		case "config":
			shared.configPath = flags.String("config", "", "Path to config file (default: search for .quizjson/config.yml)")
		case "law":
			shared.law = flags.String("law", "", "Starting law number (default from config, else 1)")
		case "out":
			shared.out = flags.String("out", "", "Output directory for the export (default from config)")
		case "no-color":
			shared.noColor = flags.Bool("no-color", false, "Disable colored output")
		}
	}
	return shared
}

// loadSettings resolves the config and applies explicitly set flags on top.
func loadSettings(flags *flag.FlagSet, shared sharedFlags) (settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return settings{}, fmt.Errorf("get working directory: %w", err)
	}
	if err := config.LoadDotEnv(wd); err != nil {
		return settings{}, err
	}
	explicit := ""
	if shared.configPath != nil && strings.TrimSpace(*shared.configPath) != "" {
		explicit, err = filepath.Abs(*shared.configPath)
		if err != nil {
			return settings{}, fmt.Errorf("resolve config path: %w", err)
		}
	}
	cfg, path, err := config.Resolve(wd, explicit)
	if err != nil {
		return settings{}, err
	}

	resolved := settings{
		cfg:        cfg,
		configPath: path,
		lawBase:    cfg.LawBase(),
		outputDir:  cfg.OutputDir,
		noColor:    cfg.NoColor,
	}
	if path != "" && !filepath.IsAbs(cfg.OutputDir) {
		resolved.outputDir = filepath.Join(config.RootFromConfigPath(path), cfg.OutputDir)
	}
	set := flagsSet(flags)
	if set["law"] {
		resolved.lawBase = export.ParseLawBase(*shared.law)
	}
	if set["out"] {
		resolved.outputDir = *shared.out
	}
	if set["no-color"] {
		resolved.noColor = *shared.noColor
	}
	return resolved, nil
}
