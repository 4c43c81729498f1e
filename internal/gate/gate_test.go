package gate

import (
	"testing"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/extract"
)

func floatPtr(f float64) *float64 { return &f }

func TestGatePassesCleanDocument(t *testing.T) {
	rule := &entity.Rule{Fields: []entity.FieldConfig{
		{Name: "invoice_no", Type: entity.TypeString, Required: true, Threshold: 0.7,
			Validate: []entity.ValidationRule{{Kind: "format", Pattern: `^INV-\d+$`}}},
		{Name: "total", Type: entity.TypeNumber, Required: true, Threshold: 0.7,
			Validate: []entity.ValidationRule{{Kind: "range", Min: floatPtr(0)}}},
	}}
	extracted := map[string]extract.FieldResult{
		"invoice_no": {Raw: "INV-100", Confidence: 0.92, SourcePage: 1, Found: true},
		"total":      {Raw: "1,250.00", Confidence: 0.88, SourcePage: 2, Found: true},
	}

	res := New(nil).Run(rule, extracted)
	if !res.Passed() {
		t.Fatalf("gate failed: %+v", res.Reasons)
	}
	if res.Data["total"] != 1250.00 {
		t.Errorf("total = %v, want 1250.00", res.Data["total"])
	}
}

func TestGateCollectsAllReasons(t *testing.T) {
	rule := &entity.Rule{Fields: []entity.FieldConfig{
		{Name: "invoice_no", Type: entity.TypeString, Required: true, Threshold: 0.7},
		{Name: "total", Type: entity.TypeNumber, Required: true, Threshold: 0.7,
			Validate: []entity.ValidationRule{{Kind: "range", Min: floatPtr(0)}}},
		{Name: "issued", Type: entity.TypeDate, Required: true, Threshold: 0.7},
	}}
	extracted := map[string]extract.FieldResult{
		// invoice_no absent, total negative, issued low confidence
		"total":  {Raw: "-5.00", Confidence: 0.9, Found: true},
		"issued": {Raw: "2026-01-10", Confidence: 0.4, SourcePage: 1, Found: true},
	}

	res := New(nil).Run(rule, extracted)
	kinds := map[string]bool{}
	for _, r := range res.Reasons {
		kinds[r.Kind] = true
	}
	for _, want := range []string{constants.ReasonRequiredMissing, constants.ReasonRangeViolation, constants.ReasonConfidenceLow} {
		if !kinds[want] {
			t.Errorf("missing reason kind %q in %+v", want, res.Reasons)
		}
	}
	if len(res.Reasons) != 3 {
		t.Errorf("got %d reasons, want all 3 collected: %+v", len(res.Reasons), res.Reasons)
	}
}

func TestGateConfidenceBoundaryInclusive(t *testing.T) {
	rule := &entity.Rule{Fields: []entity.FieldConfig{
		{Name: "a", Type: entity.TypeString, Threshold: 0.8},
	}}

	at := New(nil).Run(rule, map[string]extract.FieldResult{
		"a": {Raw: "x", Confidence: 0.8, Found: true},
	})
	if !at.Passed() {
		t.Errorf("confidence exactly at threshold must pass, got %+v", at.Reasons)
	}

	below := New(nil).Run(rule, map[string]extract.FieldResult{
		"a": {Raw: "x", Confidence: 0.79, Found: true},
	})
	if below.Passed() {
		t.Error("confidence strictly below threshold must fail")
	}
}

func TestGateOptionalCoerceFailureIsSoft(t *testing.T) {
	rule := &entity.Rule{Fields: []entity.FieldConfig{
		{Name: "discount", Type: entity.TypeNumber, Required: false, Threshold: 0},
	}}
	res := New(nil).Run(rule, map[string]extract.FieldResult{
		"discount": {Raw: "n/a", Confidence: 0.9, Found: true},
	})
	if !res.Passed() {
		t.Fatalf("optional coercion failure must not fail the gate: %+v", res.Reasons)
	}
	if _, ok := res.Data["discount"]; ok {
		t.Error("uncoercible optional field should be omitted from data")
	}
}

func TestGateExprValidation(t *testing.T) {
	rule := &entity.Rule{Fields: []entity.FieldConfig{
		{Name: "subtotal", Type: entity.TypeNumber, Threshold: 0},
		{Name: "total", Type: entity.TypeNumber, Threshold: 0,
			Validate: []entity.ValidationRule{{Kind: "expr", Expr: "total >= subtotal"}}},
	}}

	good := New(nil).Run(rule, map[string]extract.FieldResult{
		"subtotal": {Raw: "90.00", Confidence: 1, Found: true},
		"total":    {Raw: "100.00", Confidence: 1, Found: true},
	})
	if !good.Passed() {
		t.Fatalf("expr should hold: %+v", good.Reasons)
	}

	bad := New(nil).Run(rule, map[string]extract.FieldResult{
		"subtotal": {Raw: "110.00", Confidence: 1, Found: true},
		"total":    {Raw: "100.00", Confidence: 1, Found: true},
	})
	if bad.Passed() {
		t.Error("expr violation must fail the gate")
	}
	if bad.Reasons[0].Kind != constants.ReasonRuleFailed {
		t.Errorf("kind = %q, want %q", bad.Reasons[0].Kind, constants.ReasonRuleFailed)
	}
}

func TestCleanDateFormat(t *testing.T) {
	out, err := Clean(" 15/01/2026 ", []entity.CleanOp{
		{Op: "trim"},
		{Op: "date_format", From: "02/01/2006", To: "2006-01-02"},
	})
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if out != "2026-01-15" {
		t.Errorf("out = %q, want 2026-01-15", out)
	}
}

func TestEvalExprPrecedence(t *testing.T) {
	fields := map[string]any{"a": 1.0, "b": 2.0, "c": "x"}

	ok, err := EvalExpr("a > 5 || b == 2 && c == 'x'", fields)
	if err != nil {
		t.Fatalf("EvalExpr: %v", err)
	}
	if !ok {
		t.Error("should be true: && binds tighter than ||")
	}

	ok, err = EvalExpr("a > 5 && b == 2 || c == 'y'", fields)
	if err != nil {
		t.Fatalf("EvalExpr: %v", err)
	}
	if ok {
		t.Error("should be false")
	}
}
