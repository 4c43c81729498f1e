package gate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/docflowhq/docflow/internal/entity"
)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Coerce converts a cleaned string into the field's typed value. A value that
// arrived already typed (model strategies return typed JSON) is passed
// through when it matches.
func Coerce(value any, raw string, typ string) (any, error) {
	switch typ {
	case entity.TypeNumber:
		if f, ok := value.(float64); ok {
			return f, nil
		}
		f, err := strconv.ParseFloat(normalizeNumber(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("coerce %q to number: %w", raw, err)
		}
		return f, nil
	case entity.TypeInteger:
		switch v := value.(type) {
		case float64:
			if v == float64(int64(v)) {
				return int64(v), nil
			}
			return nil, fmt.Errorf("coerce %v to integer: fractional", v)
		case int64:
			return v, nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coerce %q to integer: %w", raw, err)
		}
		return n, nil
	case entity.TypeBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(raw)))
		if err != nil {
			return nil, fmt.Errorf("coerce %q to bool: %w", raw, err)
		}
		return b, nil
	case entity.TypeDate:
		s := strings.TrimSpace(raw)
		if v, ok := value.(string); ok && v != "" {
			s = v
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01-02"), nil
			}
		}
		return nil, fmt.Errorf("coerce %q to date: no known layout", s)
	default: // string
		if v, ok := value.(string); ok && v != "" {
			return v, nil
		}
		return raw, nil
	}
}

func normalizeNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "€")
	s = strings.TrimPrefix(s, "£")
	return s
}
