package recognition

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/docflowhq/docflow/constants"
)

// SplitDocument breaks an uploaded document into per-page byte slices,
// indexed by 1-based page number. Images are a single page; PDFs are split
// into single-page PDFs with pdfcpu.
func SplitDocument(data []byte, format string) (map[int][]byte, error) {
	if format == constants.IMAGE {
		return map[int][]byte{1: data}, nil
	}

	tmpDir, err := os.MkdirTemp("", "docflow-split-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	src := filepath.Join(tmpDir, "doc.pdf")
	if err := os.WriteFile(src, data, 0o600); err != nil {
		return nil, err
	}

	count, err := api.PageCountFile(src)
	if err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}
	if err := api.SplitFile(src, tmpDir, 1, nil); err != nil {
		return nil, fmt.Errorf("split pdf: %w", err)
	}

	pages := make(map[int][]byte, count)
	for p := 1; p <= count; p++ {
		// pdfcpu names split output <basename>_<page>.pdf
		b, err := os.ReadFile(filepath.Join(tmpDir, fmt.Sprintf("doc_%d.pdf", p)))
		if err != nil {
			return nil, fmt.Errorf("read page %d: %w", p, err)
		}
		pages[p] = b
	}
	return pages, nil
}

// PageCount reports how many pages a document has without splitting it.
func PageCount(data []byte, format string) (int, error) {
	if format == constants.IMAGE {
		return 1, nil
	}
	tmp, err := os.CreateTemp("", "docflow-count-*.pdf")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return 0, err
	}
	tmp.Close()
	return api.PageCountFile(tmp.Name())
}
