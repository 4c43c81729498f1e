package extract

import (
	"context"
	"testing"

	"github.com/docflowhq/docflow/internal/entity"
)

func TestTableSumSinglePage(t *testing.T) {
	doc := docFromPages("Invoice\n\nItem Qty Price\nWidget 2 10.00\nGadget 1 5.50\n\nThank you")
	field := entity.FieldConfig{Name: "line_total", Table: &entity.TableConfig{
		HeaderPattern: `Item\s+Qty\s+Price`,
		Column:        2,
		Aggregate:     "sum",
	}}

	res, err := TableStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	sum, ok := res.Value.(float64)
	if !ok || sum < 15.49 || sum > 15.51 {
		t.Errorf("sum = %v, want 15.50", res.Value)
	}
}

func TestTableContinuesAcrossPageBoundary(t *testing.T) {
	doc := docFromPages(
		"Item Qty Price\nWidget 2 10.00\nGadget 1 5.50",
		"Item Qty Price\nSprocket 3 1.00\n\nfooter",
	)
	field := entity.FieldConfig{Name: "items", Table: &entity.TableConfig{
		HeaderPattern: `Item\s+Qty\s+Price`,
		Column:        0,
		Aggregate:     "join",
	}}

	res, err := TableStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Raw != "Widget, Gadget, Sprocket" {
		t.Errorf("raw = %q, want rows from both pages", res.Raw)
	}
	if res.SourcePage != 1 {
		t.Errorf("source page = %d, want 1", res.SourcePage)
	}
}

func TestTableStopsWhenHeaderNotRestated(t *testing.T) {
	doc := docFromPages(
		"Item Qty Price\nWidget 2 10.00",
		"Terms and conditions apply",
	)
	field := entity.FieldConfig{Name: "items", Table: &entity.TableConfig{
		HeaderPattern: `Item\s+Qty\s+Price`,
		Column:        0,
		Aggregate:     "join",
	}}

	res, err := TableStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Raw != "Widget" {
		t.Errorf("raw = %q, want table to end at page 1", res.Raw)
	}
}

func TestTableCustomSeparator(t *testing.T) {
	doc := docFromPages("ref|amount\nA-1|10\nA-2|20\n")
	field := entity.FieldConfig{Name: "ref", Table: &entity.TableConfig{
		HeaderPattern: `ref\|amount`,
		Column:        0,
		Separator:     "|",
		Aggregate:     "last",
	}}

	res, err := TableStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Raw != "A-2" {
		t.Errorf("raw = %q, want A-2", res.Raw)
	}
}

func TestTableNoHeaderNotFound(t *testing.T) {
	doc := docFromPages("free-form text without a table")
	field := entity.FieldConfig{Name: "items", Table: &entity.TableConfig{
		HeaderPattern: `Item\s+Qty`,
		Column:        0,
	}}

	res, err := TableStrategy{}.Extract(context.Background(), doc, field)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Found {
		t.Errorf("res = %+v, want not found", res)
	}
}
