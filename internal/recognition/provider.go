package recognition

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/docflowhq/docflow/internal/entity"
)

// Provider runs an ordered engine preference list against a single page:
// primary first, then fallbacks on failure or empty output. Both failing
// yields a PageResult carrying the failure reason instead of an error, so a
// bad page never aborts the pages that succeeded.
type Provider struct {
	engines map[string]Engine
	logger  *slog.Logger
}

func NewProvider(logger *slog.Logger, engines ...Engine) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	m := make(map[string]Engine, len(engines))
	for _, e := range engines {
		m[e.Name()] = e
	}
	return &Provider{engines: m, logger: logger}
}

// RecognizePage applies the preference list to one page. preference entries
// naming unknown engines are skipped with a warning.
func (p *Provider) RecognizePage(ctx context.Context, in Input, preference []string) entity.PageResult {
	out := entity.PageResult{PageNo: in.PageNo}
	var failures []string

	for i, name := range preference {
		eng, ok := p.engines[name]
		if !ok {
			p.logger.Warn("unknown recognition engine in preference list", "engine", name)
			continue
		}
		if err := ctx.Err(); err != nil {
			failures = append(failures, err.Error())
			break
		}

		res, err := eng.Recognize(ctx, in)
		if err != nil {
			p.logger.Warn("engine failed", "engine", name, "page", in.PageNo, "error", err)
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		if strings.TrimSpace(res.Text) == "" {
			p.logger.Warn("engine returned empty text", "engine", name, "page", in.PageNo)
			failures = append(failures, fmt.Sprintf("%s: empty result", name))
			continue
		}

		out.Text = res.Text
		out.TokenConfidences = res.TokenConfidences
		out.Boxes = res.Boxes
		out.Engine = name
		out.Fallback = i > 0
		return out
	}

	out.FailureReason = strings.Join(failures, "; ")
	if out.FailureReason == "" {
		out.FailureReason = "no recognition engine available"
	}
	return out
}
