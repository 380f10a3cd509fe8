package export

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is the JSON Schema every export document satisfies.
//
//go:embed schema.json
var Schema string

const schemaURL = "law-tests.schema.json"

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled compiles Schema once per process.
func compiled() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		compiledSchema, compileErr = jsonschema.CompileString(schemaURL, Schema)
	})
	return compiledSchema, compileErr
}

// ValidateSchema checks raw export JSON against Schema.
func ValidateSchema(data []byte) error {
	schema, err := compiled()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
