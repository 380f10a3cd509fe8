//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cucumber/godog"
)

// anEmptyWorkingDirectory switches to a fresh temp directory.
func (s *featureState) anEmptyWorkingDirectory() error {
	if s.workDir != "" {
		return nil
	}
	dir, err := os.MkdirTemp("", "quizjson-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	for _, key := range []string{"QUIZJSON_LAW_NUMBER", "QUIZJSON_OUTPUT_DIR", "QUIZJSON_NO_COLOR", "QUIZJSON_LOG_FILE", "QUIZJSON_LOG_LEVEL"} {
		if err := s.unsetEnv(key); err != nil {
			return err
		}
	}
	return nil
}

// aFileContaining writes a doc string to a file in the working directory.
func (s *featureState) aFileContaining(name string, content *godog.DocString) error {
	return s.writeFile(name, content.Content+"\n")
}

// anEmptyFile writes an empty file in the working directory.
func (s *featureState) anEmptyFile(name string) error {
	return s.writeFile(name, "")
}

// aConfigFileContaining writes .quizjson/config.yml.
func (s *featureState) aConfigFileContaining(content *godog.DocString) error {
	return s.writeFile(filepath.Join(".quizjson", "config.yml"), content.Content+"\n")
}

// writeFile writes content relative to the working directory.
func (s *featureState) writeFile(name, content string) error {
	if err := s.anEmptyWorkingDirectory(); err != nil {
		return err
	}
	path := filepath.Join(s.workDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
