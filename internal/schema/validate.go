// Package schema validates documents against JSON schemas written as Go maps.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON schema definition.
type Schema struct {
	// Name identifies the schema and keys the compile cache. Kebab-case,
	// e.g. "catalog-file".
	Name string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// ErrInvalidDocument indicates a document does not conform to its schema.
type ErrInvalidDocument struct {
	Schema string
	Err    error
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("%s: schema validation failed: %v", e.Schema, e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ValidateJSON parses raw JSON and validates it against s.
func ValidateJSON(s *Schema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidDocument{Schema: s.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return validate(s, parsed)
}

// ValidateValue validates an already decoded value (for example the result
// of a YAML decode) against s. The value is normalized to JSON types first.
func ValidateValue(s *Schema, v any) error {
	parsed, err := Normalize(v)
	if err != nil {
		return &ErrInvalidDocument{Schema: s.Name, Err: fmt.Errorf("normalize document: %w", err)}
	}
	return validate(s, parsed)
}

func validate(s *Schema, parsed any) error {
	compiled, err := getCompiledSchema(s)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.Name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidDocument{Schema: s.Name, Err: err}
	}
	return nil
}

// Normalize round-trips v through encoding/json so the validator only sees
// JSON value types.
func Normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(s *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not Go maps
	// holding ints and typed slices.
	defParsed, err := Normalize(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(s.Name, compiled)
	return compiled, nil
}
