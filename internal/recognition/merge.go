package recognition

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docflowhq/docflow/internal/entity"
)

// BoundaryToken returns the explicit page-boundary marker inserted between
// page texts. A bare newline would let pattern matching glue the last token
// of one page to the first token of the next; the marker keeps "text ends at
// a page boundary" distinguishable from "text wraps mid-word".
func BoundaryToken(pageNo int) string {
	return fmt.Sprintf("\n=== PAGE %d ===\n", pageNo)
}

// Document is the merged, page-addressable recognition output a task's
// extraction phase operates on.
type Document struct {
	pages  []entity.PageResult // sorted by PageNo
	merged string
}

// Merge assembles page results into a Document, ordered strictly by page
// number regardless of the order results arrived in.
func Merge(results []entity.PageResult) *Document {
	pages := make([]entity.PageResult, len(results))
	copy(pages, results)
	sort.Slice(pages, func(i, j int) bool { return pages[i].PageNo < pages[j].PageNo })

	var b strings.Builder
	for _, p := range pages {
		b.WriteString(BoundaryToken(p.PageNo))
		b.WriteString(p.Text)
	}
	return &Document{pages: pages, merged: b.String()}
}

// Merged returns the full concatenated text with boundary tokens.
func (d *Document) Merged() string { return d.merged }

// Pages returns the ordered page results.
func (d *Document) Pages() []entity.PageResult { return d.pages }

// PageText returns the text of a 1-based page number, or "" when the page is
// absent or failed.
func (d *Document) PageText(pageNo int) string {
	for _, p := range d.pages {
		if p.PageNo == pageNo {
			return p.Text
		}
	}
	return ""
}

// PageConfidence averages token confidence for a page, 0 when absent.
func (d *Document) PageConfidence(pageNo int) float32 {
	for _, p := range d.pages {
		if p.PageNo == pageNo {
			return p.Confidence()
		}
	}
	return 0
}

// PageForOffset maps a byte offset in the merged text back to its source page.
func (d *Document) PageForOffset(off int) int {
	page := 0
	pos := 0
	for _, p := range d.pages {
		pos += len(BoundaryToken(p.PageNo))
		if off < pos+len(p.Text) {
			return p.PageNo
		}
		pos += len(p.Text)
		page = p.PageNo
	}
	return page
}

// FailedPages lists pages that produced no usable text.
func (d *Document) FailedPages() []entity.PageResult {
	var out []entity.PageResult
	for _, p := range d.pages {
		if p.Failed() {
			out = append(out, p)
		}
	}
	return out
}
