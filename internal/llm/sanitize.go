package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// StripCodeFence removes a markdown ```json ... ``` wrapper some models emit
// around an otherwise valid response.
func StripCodeFence(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return []byte(s)
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}

// SanitizeFieldResponse normalizes a field-extraction response so a mildly
// sloppy model answer can still validate:
//   - strips code fences
//   - drops unknown keys and null values
//   - coerces a string "confidence" or "source_page" to its numeric type
func SanitizeFieldResponse(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(StripCodeFence(raw), &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var dropped []string

	allowed := map[string]struct{}{"value": {}, "confidence": {}, "source_page": {}}
	for k, v := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
			continue
		}
		if v == nil {
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		}
	}

	if v, ok := m["confidence"].(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			m["confidence"] = f
			dropped = append(dropped, "confidence(coerced)")
		} else {
			delete(m, "confidence")
			dropped = append(dropped, "confidence(unparseable)")
		}
	}
	if v, ok := m["source_page"].(string); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			m["source_page"] = n
			dropped = append(dropped, "source_page(coerced)")
		} else {
			delete(m, "source_page")
			dropped = append(dropped, "source_page(unparseable)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
