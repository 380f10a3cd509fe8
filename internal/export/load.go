package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"gopkg.in/yaml.v3"
)

// Document is an export file read back from disk.
type Document struct {
	Entries []Entry
	// JSON is the document re-encoded by Marshal, ready for schema validation.
	JSON []byte
	// Repaired reports whether the JSON had to be repaired before decoding.
	Repaired bool
}

// LoadDocument reads an export from a .json, .yml, or .yaml file. When repair
// is set and the JSON does not decode, the bytes are repaired and decoded again.
func LoadDocument(path string, repair bool) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read export: %w", err)
	}
	var (
		entries  []Entry
		repaired bool
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		entries, err = parseYAMLEntries(data)
	default:
		entries, err = parseJSONEntries(data)
		if err != nil && repair {
			fixed, repairErr := jsonrepair.JSONRepair(string(data))
			if repairErr != nil {
				return Document{}, fmt.Errorf("%w (repair failed: %v)", err, repairErr)
			}
			entries, err = parseJSONEntries([]byte(fixed))
			repaired = err == nil
		}
	}
	if err != nil {
		return Document{}, err
	}
	payload, err := Marshal(entries)
	if err != nil {
		return Document{}, err
	}
	return Document{Entries: entries, JSON: payload, Repaired: repaired}, nil
}

func parseJSONEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&json.RawMessage{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return entries, nil
}

func parseYAMLEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&yaml.Node{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return entries, nil
}
