package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/recognition"
)

// Router dispatches each configured field to exactly one strategy by its
// strategy tag. When the model strategy fails (breaker open, timeout,
// malformed answer) the router degrades to the field's configured non-model
// fallbacks instead of failing the task.
type Router struct {
	strategies map[string]Strategy
	logger     *slog.Logger
}

func NewRouter(logger *slog.Logger, strategies ...Strategy) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	m := make(map[string]Strategy, len(strategies))
	for _, s := range strategies {
		m[s.Tag()] = s
	}
	return &Router{strategies: m, logger: logger}
}

// Field runs one field's strategy chain: the primary strategy, then each
// fallback in order. A strategy error moves to the next candidate; a clean
// not-found result stops the chain (the document simply lacks the value).
func (r *Router) Field(ctx context.Context, doc *recognition.Document, field entity.FieldConfig) (FieldResult, error) {
	chain := append([]string{field.Strategy}, field.Fallbacks...)

	var lastErr error
	for i, tag := range chain {
		s, ok := r.strategies[tag]
		if !ok {
			lastErr = fmt.Errorf("field %q: unknown strategy %q", field.Name, tag)
			r.logger.Warn("unknown extraction strategy", "field", field.Name, "strategy", tag)
			continue
		}

		res, err := s.Extract(ctx, doc, field)
		if err != nil {
			lastErr = err
			if i+1 < len(chain) {
				r.logger.Warn("strategy failed, degrading",
					"field", field.Name, "strategy", tag, "next", chain[i+1], "error", err)
			} else {
				r.logger.Warn("strategy failed", "field", field.Name, "strategy", tag, "error", err)
			}
			continue
		}
		return res, nil
	}
	return FieldResult{}, lastErr
}

// Run extracts all of the rule's fields. Per-field errors do not abort the
// run; an errored field is reported absent and left to the quality gate.
func (r *Router) Run(ctx context.Context, doc *recognition.Document, rule *entity.Rule) map[string]FieldResult {
	out := make(map[string]FieldResult, len(rule.Fields))
	for _, field := range rule.Fields {
		res, err := r.Field(ctx, doc, field)
		if err != nil {
			r.logger.Warn("field extraction errored", "field", field.Name, "error", err)
			res = FieldResult{}
		}
		out[field.Name] = res
	}
	return out
}
