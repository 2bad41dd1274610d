package catalog

import "github.com/abhisek/careerfit/internal/schema"

// FileSchema is the JSON schema a catalog document must satisfy before it is
// decoded. Structural rules that need cross-references (unique IDs, option
// texts named by points) are left to New.
var FileSchema = &schema.Schema{
	Name: "catalog-file",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":       map[string]any{"type": "string", "minLength": 1},
						"section":  map[string]any{"type": "string", "enum": []any{"psychometric", "technical", "wiscar"}},
						"category": map[string]any{"type": "string"},
						"text":     map[string]any{"type": "string"},
						"type":     map[string]any{"type": "string", "enum": []any{"likert", "multiple-choice"}},
						"likert": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"min":      map[string]any{"type": "integer"},
								"max":      map[string]any{"type": "integer"},
								"minLabel": map[string]any{"type": "string"},
								"maxLabel": map[string]any{"type": "string"},
							},
							"required":             []any{"min", "max"},
							"additionalProperties": false,
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"oneOf": []any{
									map[string]any{"type": "string"},
									map[string]any{
										"type": "object",
										"properties": map[string]any{
											"text":   map[string]any{"type": "string"},
											"points": map[string]any{"type": "integer", "minimum": 0, "maximum": MaxChoicePoints},
										},
										"required":             []any{"text"},
										"additionalProperties": false,
									},
								},
							},
						},
					},
					"required":             []any{"id", "section", "category", "type"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
