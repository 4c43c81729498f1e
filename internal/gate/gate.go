package gate

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/extract"
)

// Result is the gate's verdict for one task. An empty Reasons slice means
// straight-through processing; anything else routes to pending_audit.
type Result struct {
	Data        map[string]any
	Confidences map[string]float32
	Reasons     []entity.AuditReason
}

func (r *Result) Passed() bool { return len(r.Reasons) == 0 }

// Gate runs clean, coerce, validate over extracted fields. Failure causes are
// collected, never short-circuited, so a reviewer sees the complete picture
// in one pass.
type Gate struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{logger: logger}
}

func (g *Gate) Run(rule *entity.Rule, extracted map[string]extract.FieldResult) Result {
	res := Result{
		Data:        make(map[string]any, len(rule.Fields)),
		Confidences: make(map[string]float32, len(rule.Fields)),
	}

	// Pass 1: clean and coerce every field so expression validations can see
	// the whole coerced map.
	for _, field := range rule.Fields {
		fr := extracted[field.Name]
		if !fr.Found {
			if field.Required {
				res.Reasons = append(res.Reasons, entity.AuditReason{
					Field:   field.Name,
					Kind:    constants.ReasonRequiredMissing,
					Message: "required field not extracted",
				})
			}
			continue
		}

		cleaned, err := Clean(fr.Raw, field.Clean)
		if err == nil {
			var cerr error
			var value any
			value, cerr = Coerce(fr.Value, cleaned, field.Type)
			if cerr == nil {
				res.Data[field.Name] = value
				res.Confidences[field.Name] = fr.Confidence
				continue
			}
			err = cerr
		}

		if field.Required {
			res.Reasons = append(res.Reasons, entity.AuditReason{
				Field:   field.Name,
				Kind:    constants.ReasonCoerceFailed,
				Message: err.Error(),
				Page:    fr.SourcePage,
			})
		} else {
			g.logger.Warn("optional field dropped by gate", "field", field.Name, "error", err)
		}
	}

	// Pass 2: validations and confidence thresholds over coerced values.
	for _, field := range rule.Fields {
		value, ok := res.Data[field.Name]
		if !ok {
			continue
		}
		fr := extracted[field.Name]

		for _, vr := range field.Validate {
			if reason := g.check(field, vr, value, res.Data); reason != nil {
				reason.Page = fr.SourcePage
				res.Reasons = append(res.Reasons, *reason)
			}
		}

		// At-threshold confidence passes; only strictly below fails.
		if fr.Confidence < field.Threshold {
			res.Reasons = append(res.Reasons, entity.AuditReason{
				Field:   field.Name,
				Kind:    constants.ReasonConfidenceLow,
				Message: fmt.Sprintf("confidence %.2f below threshold %.2f", fr.Confidence, field.Threshold),
				Page:    fr.SourcePage,
			})
		}
	}

	return res
}

func (g *Gate) check(field entity.FieldConfig, vr entity.ValidationRule, value any, all map[string]any) *entity.AuditReason {
	switch vr.Kind {
	case "format":
		re, err := regexp.Compile(vr.Pattern)
		if err != nil {
			return &entity.AuditReason{Field: field.Name, Kind: constants.ReasonRuleFailed,
				Message: fmt.Sprintf("bad format pattern %q: %v", vr.Pattern, err)}
		}
		if !re.MatchString(fmt.Sprintf("%v", value)) {
			return &entity.AuditReason{Field: field.Name, Kind: constants.ReasonFormatInvalid,
				Message: fmt.Sprintf("%v does not match %q", value, vr.Pattern)}
		}
	case "range":
		f, ok := asFloat(value)
		if !ok {
			return &entity.AuditReason{Field: field.Name, Kind: constants.ReasonRangeViolation,
				Message: fmt.Sprintf("range check on non-numeric value %v", value)}
		}
		if vr.Min != nil && f < *vr.Min {
			return &entity.AuditReason{Field: field.Name, Kind: constants.ReasonRangeViolation,
				Message: fmt.Sprintf("%v below minimum %v", f, *vr.Min)}
		}
		if vr.Max != nil && f > *vr.Max {
			return &entity.AuditReason{Field: field.Name, Kind: constants.ReasonRangeViolation,
				Message: fmt.Sprintf("%v above maximum %v", f, *vr.Max)}
		}
	case "expr":
		ok, err := EvalExpr(vr.Expr, all)
		if err != nil {
			return &entity.AuditReason{Field: field.Name, Kind: constants.ReasonRuleFailed,
				Message: fmt.Sprintf("expression %q: %v", vr.Expr, err)}
		}
		if !ok {
			return &entity.AuditReason{Field: field.Name, Kind: constants.ReasonRuleFailed,
				Message: fmt.Sprintf("expression %q not satisfied", vr.Expr)}
		}
	default:
		return &entity.AuditReason{Field: field.Name, Kind: constants.ReasonRuleFailed,
			Message: fmt.Sprintf("unknown validation kind %q", vr.Kind)}
	}
	return nil
}
