package llm

import "github.com/docflowhq/docflow/internal/entity"

// BuildFieldSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map for one field extraction. We pass it to the provider as a structured
// output constraint and also use it locally to validate the response.
func BuildFieldSchema(field entity.FieldConfig) map[string]any {
	var valueProp map[string]any
	switch field.Type {
	case entity.TypeNumber:
		valueProp = map[string]any{"type": "number"}
	case entity.TypeInteger:
		valueProp = map[string]any{"type": "integer"}
	case entity.TypeBool:
		valueProp = map[string]any{"type": "boolean"}
	case entity.TypeDate:
		valueProp = map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
	default:
		valueProp = map[string]any{"type": "string", "minLength": 1}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"value":       valueProp,
			"confidence":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"source_page": map[string]any{"type": "integer", "minimum": 1},
		},
		"required": []string{"value", "confidence"},
	}
}
