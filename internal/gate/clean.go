package gate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/docflowhq/docflow/internal/entity"
)

var spaceRun = regexp.MustCompile(`\s+`)

// Clean applies a field's normalization steps, in order, to the raw
// extracted text.
func Clean(raw string, ops []entity.CleanOp) (string, error) {
	out := raw
	for _, op := range ops {
		var err error
		out, err = applyOp(out, op)
		if err != nil {
			return raw, err
		}
	}
	return out, nil
}

func applyOp(s string, op entity.CleanOp) (string, error) {
	switch op.Op {
	case "trim":
		return strings.TrimSpace(s), nil
	case "upper":
		return strings.ToUpper(s), nil
	case "lower":
		return strings.ToLower(s), nil
	case "collapse_spaces":
		return spaceRun.ReplaceAllString(strings.TrimSpace(s), " "), nil
	case "replace":
		return strings.ReplaceAll(s, op.From, op.To), nil
	case "date_format":
		// From/To are Go reference layouts; reformat to the target layout.
		t, err := time.Parse(op.From, strings.TrimSpace(s))
		if err != nil {
			return s, fmt.Errorf("date_format: parse %q as %q: %w", s, op.From, err)
		}
		to := op.To
		if to == "" {
			to = "2006-01-02"
		}
		return t.Format(to), nil
	default:
		return s, fmt.Errorf("unknown clean op %q", op.Op)
	}
}
