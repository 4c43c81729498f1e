package extract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docflowhq/docflow/internal/breaker"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/llm"
)

type fakeProvider struct {
	res llm.CompletionResult
	err error
	n   int
}

func (f *fakeProvider) Complete(context.Context, llm.CompletionRequest) (llm.CompletionResult, error) {
	f.n++
	return f.res, f.err
}

func TestRouterDispatchesByTag(t *testing.T) {
	router := NewRouter(nil, PatternStrategy{}, AnchorStrategy{})
	doc := docFromPages("Invoice No: INV-9")

	res, err := router.Field(context.Background(), doc, entity.FieldConfig{
		Name:     "invoice_no",
		Strategy: entity.StrategyPattern,
		Pattern:  `INV-\d+`,
	})
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	if res.Raw != "INV-9" {
		t.Errorf("raw = %q", res.Raw)
	}
}

func TestRouterDegradesWhenModelFails(t *testing.T) {
	b := breaker.New(5, time.Minute, nil)
	model := NewModelStrategy(&fakeProvider{err: errors.New("upstream 503")}, b, time.Second, nil)
	router := NewRouter(nil, model, PatternStrategy{})

	doc := docFromPages("Invoice No: INV-55")
	res, err := router.Field(context.Background(), doc, entity.FieldConfig{
		Name:      "invoice_no",
		Strategy:  entity.StrategyModel,
		Fallbacks: []string{entity.StrategyPattern},
		Pattern:   `INV-\d+`,
		Model:     &entity.ModelConfig{Prompt: "find the invoice number"},
	})
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	if res.Raw != "INV-55" {
		t.Errorf("raw = %q, want fallback pattern result", res.Raw)
	}
}

func TestRouterDegradesWhenBreakerOpen(t *testing.T) {
	b := breaker.New(1, time.Minute, nil)
	b.Failure() // trip it

	provider := &fakeProvider{}
	model := NewModelStrategy(provider, b, time.Second, nil)
	router := NewRouter(nil, model, AnchorStrategy{})

	doc := docFromPages("Total: 42.00")
	res, err := router.Field(context.Background(), doc, entity.FieldConfig{
		Name:      "total",
		Strategy:  entity.StrategyModel,
		Fallbacks: []string{entity.StrategyAnchor},
		Anchor:    &entity.AnchorConfig{Token: "Total:"},
		Model:     &entity.ModelConfig{Prompt: "find the total"},
	})
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	if res.Raw != "42.00" {
		t.Errorf("raw = %q, want anchor fallback result", res.Raw)
	}
	if provider.n != 0 {
		t.Errorf("provider called %d times with an open breaker, want 0", provider.n)
	}
}

func TestRouterModelSuccess(t *testing.T) {
	b := breaker.New(5, time.Minute, nil)
	provider := &fakeProvider{res: llm.CompletionResult{
		Raw:          []byte(`{"value":"INV-77","confidence":0.88,"source_page":1}`),
		PromptTokens: 100, CompletionTokens: 20,
	}}
	model := NewModelStrategy(provider, b, time.Second, nil)
	router := NewRouter(nil, model)

	doc := docFromPages("scanned text")
	res, err := router.Field(context.Background(), doc, entity.FieldConfig{
		Name:     "invoice_no",
		Type:     entity.TypeString,
		Strategy: entity.StrategyModel,
		Model:    &entity.ModelConfig{Prompt: "find the invoice number"},
	})
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	if res.Value != "INV-77" || res.SourcePage != 1 {
		t.Errorf("res = %+v", res)
	}
}

func TestRunCollectsAllFields(t *testing.T) {
	router := NewRouter(nil, PatternStrategy{})
	doc := docFromPages("Invoice No: INV-1 Total: 9.99")

	rule := &entity.Rule{Fields: []entity.FieldConfig{
		{Name: "invoice_no", Strategy: entity.StrategyPattern, Pattern: `INV-\d+`},
		{Name: "missing", Strategy: entity.StrategyPattern, Pattern: `NOPE-\d+`},
	}}
	out := router.Run(context.Background(), doc, rule)
	if !out["invoice_no"].Found {
		t.Error("invoice_no should be found")
	}
	if out["missing"].Found {
		t.Error("missing field should be reported absent, not an error")
	}
}
