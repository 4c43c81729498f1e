package extract

import (
	"context"
	"testing"

	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/recognition"
)

func docFromPages(texts ...string) *recognition.Document {
	results := make([]entity.PageResult, 0, len(texts))
	for i, txt := range texts {
		pr := entity.PageResult{PageNo: i + 1, Text: txt, TokenConfidences: []float32{0.9}}
		if txt == "" {
			pr.TokenConfidences = nil
			pr.FailureReason = "blank scan"
		}
		results = append(results, pr)
	}
	return recognition.Merge(results)
}

func TestPatternCaptureGroup(t *testing.T) {
	doc := docFromPages("Invoice No: INV-2041 issued today")
	field := entity.FieldConfig{Name: "invoice_no", Pattern: `Invoice No:\s*(INV-\d+)`}

	res, err := PatternStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !res.Found || res.Raw != "INV-2041" {
		t.Errorf("res = %+v, want raw INV-2041", res)
	}
	if res.SourcePage != 1 {
		t.Errorf("source page = %d, want 1", res.SourcePage)
	}
}

func TestPatternDoesNotGlueAcrossPages(t *testing.T) {
	// "ACME" ends page 1 and "CORP" starts page 2; the boundary token must
	// prevent the pattern from seeing them as adjacent.
	doc := docFromPages("vendor ACME", "CORP registered office")
	field := entity.FieldConfig{Name: "vendor", Pattern: `ACME\s?CORP`}

	res, err := PatternStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Found {
		t.Errorf("pattern matched across a page boundary: %+v", res)
	}
}

func TestPatternSourcePageOnLaterPage(t *testing.T) {
	doc := docFromPages("cover sheet", "Amount Due: 412.50")
	field := entity.FieldConfig{Name: "amount", Pattern: `Amount Due:\s*([\d.]+)`}

	res, err := PatternStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.SourcePage != 2 || res.Raw != "412.50" {
		t.Errorf("res = %+v, want 412.50 from page 2", res)
	}
}

func TestAnchorAfter(t *testing.T) {
	doc := docFromPages("Customer PO Number: PO-7781 Terms: NET30")
	field := entity.FieldConfig{Name: "po", Anchor: &entity.AnchorConfig{Token: "PO Number:", Direction: "after"}}

	res, err := AnchorStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !res.Found || res.Raw != "PO-7781" {
		t.Errorf("res = %+v, want PO-7781", res)
	}
}

func TestAnchorBelow(t *testing.T) {
	doc := docFromPages("Ship To:\nWayne Industries\n1007 Mountain Drive")
	field := entity.FieldConfig{Name: "ship_to", Anchor: &entity.AnchorConfig{Token: "Ship To:", Direction: "below"}}

	res, err := AnchorStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Raw != "Wayne Industries" {
		t.Errorf("raw = %q, want Wayne Industries", res.Raw)
	}
}

func TestAnchorPinnedPage(t *testing.T) {
	doc := docFromPages("Total: 10.00", "Total: 99.00")
	field := entity.FieldConfig{Name: "total", Anchor: &entity.AnchorConfig{Token: "Total:", Page: 2, Direction: "after"}}

	res, err := AnchorStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Raw != "99.00" || res.SourcePage != 2 {
		t.Errorf("res = %+v, want 99.00 from page 2", res)
	}
}

func TestAnchorAbsentIsNotAnError(t *testing.T) {
	doc := docFromPages("nothing to see")
	field := entity.FieldConfig{Name: "po", Anchor: &entity.AnchorConfig{Token: "PO Number:"}}

	res, err := AnchorStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Found {
		t.Errorf("res = %+v, want not found", res)
	}
}
