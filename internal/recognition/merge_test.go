package recognition

import (
	"strings"
	"testing"

	"github.com/docflowhq/docflow/internal/entity"
)

func TestMergeOrdersByPageNumber(t *testing.T) {
	// Completion order is scrambled on purpose.
	results := []entity.PageResult{
		{PageNo: 3, Text: "gamma"},
		{PageNo: 1, Text: "alpha"},
		{PageNo: 2, Text: "beta"},
	}
	doc := Merge(results)

	merged := doc.Merged()
	if !(strings.Index(merged, "alpha") < strings.Index(merged, "beta") &&
		strings.Index(merged, "beta") < strings.Index(merged, "gamma")) {
		t.Fatalf("merged text out of page order: %q", merged)
	}
	for _, n := range []int{1, 2, 3} {
		if !strings.Contains(merged, BoundaryToken(n)) {
			t.Errorf("boundary token for page %d missing from %q", n, merged)
		}
	}
}

func TestMergeKeepsFailedPageSlot(t *testing.T) {
	doc := Merge([]entity.PageResult{
		{PageNo: 1, Text: "first"},
		{PageNo: 2, FailureReason: "blank scan"},
		{PageNo: 3, Text: "third"},
	})

	if got := doc.PageText(2); got != "" {
		t.Errorf("failed page text = %q, want empty", got)
	}
	failed := doc.FailedPages()
	if len(failed) != 1 || failed[0].PageNo != 2 {
		t.Fatalf("FailedPages = %+v, want page 2 only", failed)
	}
	// The boundary token still marks where page 2 would have been, so a
	// pattern can never match across the 1/3 seam.
	if !strings.Contains(doc.Merged(), BoundaryToken(2)) {
		t.Error("boundary token for the failed page must remain in the merged text")
	}
}

func TestPageForOffset(t *testing.T) {
	doc := Merge([]entity.PageResult{
		{PageNo: 1, Text: "first page"},
		{PageNo: 2, Text: "second page"},
	})

	off := strings.Index(doc.Merged(), "second")
	if off < 0 {
		t.Fatal("second page text missing")
	}
	if got := doc.PageForOffset(off); got != 2 {
		t.Errorf("PageForOffset(%d) = %d, want 2", off, got)
	}
	if got := doc.PageForOffset(strings.Index(doc.Merged(), "first")); got != 1 {
		t.Errorf("offset of first page text mapped to page %d", got)
	}
	if got := doc.PageForOffset(len(doc.Merged()) + 10); got != 2 {
		t.Errorf("past-the-end offset = page %d, want last page", got)
	}
}

func TestPageConfidence(t *testing.T) {
	doc := Merge([]entity.PageResult{
		{PageNo: 1, Text: "x", TokenConfidences: []float32{0.8, 0.6}},
	})
	if got := doc.PageConfidence(1); got < 0.699 || got > 0.701 {
		t.Errorf("PageConfidence = %v, want 0.7", got)
	}
	if got := doc.PageConfidence(9); got != 0 {
		t.Errorf("absent page confidence = %v, want 0", got)
	}
}
