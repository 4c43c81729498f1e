package llm

import (
	"strings"
	"testing"

	"github.com/docflowhq/docflow/internal/entity"
)

func TestDecodeFieldAnswerStrict(t *testing.T) {
	schema := BuildFieldSchema(entity.FieldConfig{Name: "invoice_no", Type: entity.TypeString})

	ans, err := DecodeFieldAnswer(schema, []byte(`{"value":"INV-1042","confidence":0.91,"source_page":2}`), nil)
	if err != nil {
		t.Fatalf("DecodeFieldAnswer: %v", err)
	}
	if ans.Value != "INV-1042" || ans.SourcePage != 2 {
		t.Errorf("answer = %+v", ans)
	}
	if ans.Confidence < 0.90 || ans.Confidence > 0.92 {
		t.Errorf("confidence = %v", ans.Confidence)
	}
}

func TestDecodeFieldAnswerCodeFence(t *testing.T) {
	schema := BuildFieldSchema(entity.FieldConfig{Name: "total", Type: entity.TypeNumber})

	raw := []byte("```json\n{\"value\": 120.5, \"confidence\": 0.8}\n```")
	ans, err := DecodeFieldAnswer(schema, raw, nil)
	if err != nil {
		t.Fatalf("DecodeFieldAnswer: %v", err)
	}
	if ans.Value != 120.5 {
		t.Errorf("value = %v, want 120.5", ans.Value)
	}
}

func TestDecodeFieldAnswerLenient(t *testing.T) {
	schema := BuildFieldSchema(entity.FieldConfig{Name: "invoice_no", Type: entity.TypeString})

	// String confidence and an extra key should be repaired, not rejected.
	raw := []byte(`{"value":"INV-7","confidence":"0.75","reasoning":"looks right"}`)
	ans, err := DecodeFieldAnswer(schema, raw, nil)
	if err != nil {
		t.Fatalf("DecodeFieldAnswer: %v", err)
	}
	if ans.Confidence < 0.74 || ans.Confidence > 0.76 {
		t.Errorf("confidence = %v, want 0.75", ans.Confidence)
	}
}

func TestDecodeFieldAnswerRejectsMissingValue(t *testing.T) {
	schema := BuildFieldSchema(entity.FieldConfig{Name: "invoice_no", Type: entity.TypeString})

	_, err := DecodeFieldAnswer(schema, []byte(`{"confidence":0.9}`), nil)
	if err == nil || !strings.Contains(err.Error(), "schema validation failed") {
		t.Fatalf("err = %v, want schema validation failure", err)
	}
}

func TestBuildFieldSchemaDatePattern(t *testing.T) {
	schema := BuildFieldSchema(entity.FieldConfig{Name: "issued", Type: entity.TypeDate})

	if err := ValidateJSONAgainstSchema(schema, []byte(`{"value":"2026-01-15","confidence":0.9}`)); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"value":"15/01/2026","confidence":0.9}`)); err == nil {
		t.Error("non-ISO date should fail the date schema")
	}
}
