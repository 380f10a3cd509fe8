package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Marshal renders entries as an indented JSON array with a trailing newline.
// Text is written as-is: HTML characters are not escaped.
func Marshal(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries); err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName returns the export file name for a starting law number.
func FileName(base int) string {
	if base < 1 {
		base = DefaultLawBase
	}
	return fmt.Sprintf("law_%d_tests.json", base)
}

// WriteFile writes entries to dir/FileName(base) and returns the written path.
func WriteFile(dir string, base int, entries []Entry) (string, error) {
	if dir == "" {
		dir = "."
	}
	payload, err := Marshal(entries)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, FileName(base))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return path, nil
}
