package gate

import (
	"fmt"
	"strconv"
	"strings"
)

// EvalExpr evaluates a small boolean expression over the coerced field map.
// Grammar: comparisons (`a op b` with ==, !=, <, <=, >, >=) joined by && and
// ||, where && binds tighter. Operands are field names, numeric literals, or
// single-quoted strings. There is no parenthesization; rules needing more
// belong in code, not config.
func EvalExpr(expr string, fields map[string]any) (bool, error) {
	for _, disjunct := range strings.Split(expr, "||") {
		ok := true
		for _, conjunct := range strings.Split(disjunct, "&&") {
			v, err := evalComparison(strings.TrimSpace(conjunct), fields)
			if err != nil {
				return false, err
			}
			if !v {
				ok = false
				break
			}
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

var comparisonOps = []string{"<=", ">=", "==", "!=", "<", ">"}

func evalComparison(s string, fields map[string]any) (bool, error) {
	for _, op := range comparisonOps {
		idx := strings.Index(s, op)
		if idx < 0 {
			continue
		}
		left, err := operand(strings.TrimSpace(s[:idx]), fields)
		if err != nil {
			return false, err
		}
		right, err := operand(strings.TrimSpace(s[idx+len(op):]), fields)
		if err != nil {
			return false, err
		}
		return compare(left, right, op)
	}
	return false, fmt.Errorf("no comparison operator in %q", s)
}

func operand(tok string, fields map[string]any) (any, error) {
	if tok == "" {
		return nil, fmt.Errorf("empty operand")
	}
	if strings.HasPrefix(tok, "'") && strings.HasSuffix(tok, "'") && len(tok) >= 2 {
		return tok[1 : len(tok)-1], nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f, nil
	}
	if v, ok := fields[tok]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("unknown field %q", tok)
}

func compare(left, right any, op string) (bool, error) {
	lf, lNum := asFloat(left)
	rf, rNum := asFloat(right)
	if lNum && rNum {
		switch op {
		case "==":
			return lf == rf, nil
		case "!=":
			return lf != rf, nil
		case "<":
			return lf < rf, nil
		case "<=":
			return lf <= rf, nil
		case ">":
			return lf > rf, nil
		case ">=":
			return lf >= rf, nil
		}
	}

	ls := fmt.Sprintf("%v", left)
	rs := fmt.Sprintf("%v", right)
	switch op {
	case "==":
		return ls == rs, nil
	case "!=":
		return ls != rs, nil
	case "<", "<=", ">", ">=":
		return false, fmt.Errorf("ordering comparison %q needs numeric operands", op)
	}
	return false, fmt.Errorf("unknown operator %q", op)
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case float32:
		return float64(t), true
	}
	return 0, false
}
