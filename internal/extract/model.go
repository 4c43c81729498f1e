package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/docflowhq/docflow/internal/breaker"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/llm"
	"github.com/docflowhq/docflow/internal/recognition"
)

// ModelStrategy sends a context window plus the field's prompt to the model
// provider and parses the typed answer. Every call goes through the shared
// circuit breaker and carries a hard wall-clock timeout; callers handle
// breaker-open and timeout by degrading to the field's fallback strategies.
type ModelStrategy struct {
	provider llm.Provider
	breaker  *breaker.Breaker
	timeout  time.Duration
	logger   *slog.Logger
}

func NewModelStrategy(provider llm.Provider, b *breaker.Breaker, timeout time.Duration, logger *slog.Logger) *ModelStrategy {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ModelStrategy{provider: provider, breaker: b, timeout: timeout, logger: logger}
}

func (*ModelStrategy) Tag() string { return entity.StrategyModel }

func (s *ModelStrategy) Extract(ctx context.Context, doc *recognition.Document, field entity.FieldConfig) (FieldResult, error) {
	cfg := field.Model
	if cfg == nil || cfg.Prompt == "" {
		return FieldResult{}, fmt.Errorf("field %q: model strategy without a prompt", field.Name)
	}
	if err := s.breaker.Allow(); err != nil {
		return FieldResult{}, fmt.Errorf("field %q: %w", field.Name, err)
	}

	window := contextWindow(doc, cfg)
	schema := llm.BuildFieldSchema(field)

	res, err := s.provider.Complete(ctx, llm.CompletionRequest{
		System:  "You extract a single field from scanned document text. Return ONLY JSON that matches the JSON Schema provided. Page boundaries in the text are marked with '=== PAGE N ===' lines; report the page the value came from as source_page. Never output null; if the value is absent, set confidence to 0.",
		Prompt:  cfg.Prompt + "\n\nDocument text:\n" + window,
		Schema:  schema,
		Timeout: s.timeout,
	})
	if err != nil {
		s.breaker.Failure()
		return FieldResult{}, fmt.Errorf("field %q: %w", field.Name, err)
	}

	ans, err := llm.DecodeFieldAnswer(schema, res.Raw, s.logger)
	if err != nil {
		// A malformed answer is a provider-quality failure too.
		s.breaker.Failure()
		return FieldResult{}, fmt.Errorf("field %q: %w", field.Name, err)
	}
	s.breaker.Success()

	s.logger.Info("model extraction",
		"field", field.Name,
		"source_page", ans.SourcePage,
		"confidence", ans.Confidence,
		"prompt_tokens", res.PromptTokens,
		"completion_tokens", res.CompletionTokens,
	)

	return FieldResult{
		Value:      ans.Value,
		Raw:        fmt.Sprintf("%v", ans.Value),
		Confidence: ans.Confidence,
		SourcePage: ans.SourcePage,
		Found:      true,
	}, nil
}

// contextWindow selects how much of the document the model sees.
func contextWindow(doc *recognition.Document, cfg *entity.ModelConfig) string {
	switch cfg.Window {
	case "first_pages":
		n := cfg.Pages
		if n <= 0 {
			n = 1
		}
		var b strings.Builder
		for _, p := range doc.Pages() {
			if p.PageNo > n {
				break
			}
			b.WriteString(recognition.BoundaryToken(p.PageNo))
			b.WriteString(p.Text)
		}
		return b.String()
	case "region":
		merged := doc.Merged()
		idx := strings.Index(merged, cfg.Region)
		if idx < 0 {
			return merged
		}
		span := cfg.RegionSpan
		if span <= 0 {
			span = 500
		}
		end := idx + len(cfg.Region) + span
		if end > len(merged) {
			end = len(merged)
		}
		start := idx - span/4
		if start < 0 {
			start = 0
		}
		return merged[start:end]
	default: // "full"
		return doc.Merged()
	}
}
