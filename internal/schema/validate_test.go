package schema

import (
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"required": []any{"name", "age"},
		},
	}
}

func TestValidateJSON_Valid(t *testing.T) {
	if err := ValidateJSON(testSchema(), []byte(`{"name":"Alice","age":10,"grade":"A"}`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateJSON_MissingRequired(t *testing.T) {
	err := ValidateJSON(testSchema(), []byte(`{"name":"Charlie"}`))
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidDocument
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidDocument, got: %T", err)
	}
	if invErr.Schema != "test-object" {
		t.Errorf("got schema name %q", invErr.Schema)
	}
}

func TestValidateJSON_InvalidEnum(t *testing.T) {
	err := ValidateJSON(testSchema(), []byte(`{"name":"Eve","age":9,"grade":"F"}`))
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	err := ValidateJSON(testSchema(), []byte(`{not json}`))
	var invErr *ErrInvalidDocument
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidDocument, got: %T", err)
	}
}

func TestValidateValue_GoTypes(t *testing.T) {
	doc := map[string]any{"name": "Frank", "age": 11}
	if err := ValidateValue(testSchema(), doc); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	doc["age"] = -1
	if err := ValidateValue(testSchema(), doc); err == nil {
		t.Fatal("expected error for negative age")
	}
}

func TestGetCompiledSchema_Cached(t *testing.T) {
	s := testSchema()
	first, err := getCompiledSchema(s)
	if err != nil {
		t.Fatal(err)
	}
	second, err := getCompiledSchema(s)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected the compiled schema to be cached")
	}
}
