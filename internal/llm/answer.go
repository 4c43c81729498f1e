package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// FieldAnswer is the normalized shape we want from the model for one field.
type FieldAnswer struct {
	Value      any     `json:"value"`
	Confidence float32 `json:"confidence"`
	SourcePage int     `json:"source_page,omitempty"`
}

// DecodeFieldAnswer validates raw model output against the field schema,
// falling back to a lenient sanitize pass before giving up.
func DecodeFieldAnswer(schema map[string]any, raw []byte, logger *slog.Logger) (FieldAnswer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	content := StripCodeFence(raw)
	if err := ValidateJSONAgainstSchema(schema, content); err != nil {
		cleaned, dropped, sErr := SanitizeFieldResponse(content, logger)
		if sErr != nil {
			return FieldAnswer{}, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			return FieldAnswer{}, fmt.Errorf("schema validation failed: %w", vErr)
		}
		logger.Warn("llm.lenient_sanitize_applied", "dropped", dropped)
		content = cleaned
	}

	var out FieldAnswer
	if err := json.Unmarshal(content, &out); err != nil {
		return FieldAnswer{}, fmt.Errorf("unmarshal answer: %w", err)
	}
	return out, nil
}
