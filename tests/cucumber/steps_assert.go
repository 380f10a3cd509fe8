//go:build cucumber
// +build cucumber

package cucumber

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cucumber/godog"
)

// theExitCodeIs asserts the CLI exit code.
func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

// stdoutContains asserts a substring of stdout.
func (s *featureState) stdoutContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected stdout to contain %q, got %q", text, s.stdout.String())
	}
	return nil
}

// stderrContains asserts a substring of stderr.
func (s *featureState) stderrContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected stderr to contain %q, got %q", text, s.stderr.String())
	}
	return nil
}

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

// theFileContainsJSON compares a file with the expected JSON value.
func (s *featureState) theFileContainsJSON(name string, expected *godog.DocString) error {
	data, err := os.ReadFile(filepath.Join(s.workDir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	var got, want any
	if err := json.Unmarshal(data, &got); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(expected.Content), &want); err != nil {
		return fmt.Errorf("decode expected JSON: %w", err)
	}
	if !reflect.DeepEqual(got, want) {
		return fmt.Errorf("%s does not match:\n%s", name, data)
	}
	return nil
}

// theFileDoesNotExist asserts no file was written.
func (s *featureState) theFileDoesNotExist(name string) error {
	_, err := os.Stat(filepath.Join(s.workDir, name))
	if err == nil {
		return fmt.Errorf("expected %s not to exist", name)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", name, err)
	}
	return nil
}
