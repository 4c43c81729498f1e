package recognition

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docflowhq/docflow/constants"
)

// CLIEngine shells out to the tesseract binary. It is the fallback used
// when the linked engine is unavailable or misrecognizes a page; PDF
// pages are rasterized with pdftoppm first.
type CLIEngine struct {
	runner       Runner
	tesseractBin string
	pdftoppmBin  string
	dpi          int
}

type CLIOption func(*CLIEngine)

func WithRunner(r Runner) CLIOption {
	return func(e *CLIEngine) { e.runner = r }
}

func WithBinaries(tesseract, pdftoppm string) CLIOption {
	return func(e *CLIEngine) {
		if tesseract != "" {
			e.tesseractBin = tesseract
		}
		if pdftoppm != "" {
			e.pdftoppmBin = pdftoppm
		}
	}
}

func WithDPI(dpi int) CLIOption {
	return func(e *CLIEngine) {
		if dpi > 0 {
			e.dpi = dpi
		}
	}
}

func NewCLIEngine(opts ...CLIOption) *CLIEngine {
	e := &CLIEngine{
		runner:       execRunner{},
		tesseractBin: "tesseract",
		pdftoppmBin:  "pdftoppm",
		dpi:          300,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *CLIEngine) Name() string { return "tesseract-cli" }

func (e *CLIEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	dir, err := os.MkdirTemp("", "docflow-ocr-")
	if err != nil {
		return Result{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	imgPath, err := e.prepareImage(ctx, dir, in)
	if err != nil {
		return Result{}, err
	}

	args := []string{imgPath, "stdout"}
	if in.Language != "" {
		args = append(args, "-l", in.Language)
	}
	stdout, _, err := e.runner.Run(ctx, e.tesseractBin, args...)
	if err != nil {
		return Result{}, fmt.Errorf("tesseract page %d: %w", in.PageNo, err)
	}

	text := strings.TrimSpace(string(stdout))
	return Result{
		Text:             text,
		TokenConfidences: []float32{heuristicConfidence(text)},
	}, nil
}

// prepareImage writes the page to disk and rasterizes PDFs. Image
// formats are handed to tesseract as-is.
func (e *CLIEngine) prepareImage(ctx context.Context, dir string, in Input) (string, error) {
	if in.Format != constants.PDF {
		path := filepath.Join(dir, "page.img")
		if err := os.WriteFile(path, in.Data, 0o600); err != nil {
			return "", fmt.Errorf("write page %d: %w", in.PageNo, err)
		}
		return path, nil
	}

	pdfPath := filepath.Join(dir, "page.pdf")
	if err := os.WriteFile(pdfPath, in.Data, 0o600); err != nil {
		return "", fmt.Errorf("write page %d: %w", in.PageNo, err)
	}

	prefix := filepath.Join(dir, "page")
	_, _, err := e.runner.Run(ctx, e.pdftoppmBin,
		"-png", "-r", strconv.Itoa(e.dpi), "-singlefile", pdfPath, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm page %d: %w", in.PageNo, err)
	}
	return prefix + ".png", nil
}
