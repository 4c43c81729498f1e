package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/recognition"
)

// AnchorStrategy locates a marker token on a page and reads the value at a
// fixed offset from it: "after" walks forward over whitespace-separated
// tokens on the same line flow, "below" walks down whole lines.
type AnchorStrategy struct{}

func (AnchorStrategy) Tag() string { return entity.StrategyAnchor }

func (AnchorStrategy) Extract(_ context.Context, doc *recognition.Document, field entity.FieldConfig) (FieldResult, error) {
	cfg := field.Anchor
	if cfg == nil || cfg.Token == "" {
		return FieldResult{}, fmt.Errorf("field %q: anchor strategy without an anchor token", field.Name)
	}

	pages := doc.Pages()
	for _, p := range pages {
		if cfg.Page != 0 && p.PageNo != cfg.Page {
			continue
		}
		if p.Failed() {
			continue
		}
		raw, ok := locate(p.Text, cfg)
		if !ok {
			continue
		}
		return FieldResult{
			Raw:        raw,
			Confidence: doc.PageConfidence(p.PageNo),
			SourcePage: p.PageNo,
			Found:      true,
		}, nil
	}
	return FieldResult{}, nil
}

func locate(text string, cfg *entity.AnchorConfig) (string, bool) {
	switch cfg.Direction {
	case "below":
		return locateBelow(text, cfg)
	default:
		return locateAfter(text, cfg)
	}
}

// locateAfter skips Offset tokens past the anchor and joins the next
// MaxTokens (default 1) tokens.
func locateAfter(text string, cfg *entity.AnchorConfig) (string, bool) {
	idx := strings.Index(text, cfg.Token)
	if idx < 0 {
		return "", false
	}
	rest := strings.Fields(text[idx+len(cfg.Token):])
	if cfg.Offset >= len(rest) {
		return "", false
	}
	rest = rest[cfg.Offset:]

	n := cfg.MaxTokens
	if n <= 0 {
		n = 1
	}
	if n > len(rest) {
		n = len(rest)
	}
	out := strings.Join(rest[:n], " ")
	if out == "" {
		return "", false
	}
	return out, true
}

// locateBelow finds the line containing the anchor and returns the line
// Offset+1 lines further down, trimmed.
func locateBelow(text string, cfg *entity.AnchorConfig) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, cfg.Token) {
			continue
		}
		target := i + 1 + cfg.Offset
		if target >= len(lines) {
			return "", false
		}
		out := strings.TrimSpace(lines[target])
		if out == "" {
			return "", false
		}
		return out, true
	}
	return "", false
}
