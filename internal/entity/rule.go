package entity

import "time"

// Extraction strategy tags. A field is configured with exactly one primary
// strategy; Fallbacks lists non-model strategies to degrade to when the model
// provider is unavailable.
const (
	StrategyPattern = "pattern"
	StrategyAnchor  = "anchor"
	StrategyTable   = "table"
	StrategyModel   = "model"
)

// Field value types understood by the quality gate's coercion step.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeDate    = "date"
	TypeBool    = "bool"
)

// Page range policies for recognition.
const (
	PagesAll    = "all"
	PagesSingle = "single"
	PagesList   = "list"
)

// AnchorConfig locates a value relative to a known marker token.
type AnchorConfig struct {
	Token     string `json:"token"`
	Page      int    `json:"page"`      // 1-based; 0 = search all pages
	Direction string `json:"direction"` // "after" or "below"
	Offset    int    `json:"offset"`    // tokens (after) or lines (below) to skip
	MaxTokens int    `json:"max_tokens,omitempty"`
}

// TableConfig extracts a column from a repeating row structure. Rows may
// continue across a page boundary; continuation is detected by re-matching the
// header schema.
type TableConfig struct {
	HeaderPattern string `json:"header_pattern"`
	Column        int    `json:"column"` // 0-based
	Separator     string `json:"separator,omitempty"`
	Aggregate     string `json:"aggregate,omitempty"` // "first", "last", "sum", "join"
}

// ModelConfig drives model-assisted extraction.
type ModelConfig struct {
	Prompt     string `json:"prompt"`
	Window     string `json:"window"`           // "full", "first_pages", "region"
	Pages      int    `json:"pages,omitempty"`  // for first_pages
	Region     string `json:"region,omitempty"` // anchor token bounding a region window
	RegionSpan int    `json:"region_span,omitempty"`
}

// CleanOp is one normalization step applied before coercion.
type CleanOp struct {
	Op   string `json:"op"` // "trim", "upper", "lower", "collapse_spaces", "replace", "date_format"
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// ValidationRule is one post-coercion check.
type ValidationRule struct {
	Kind    string   `json:"kind"` // "format", "range", "expr"
	Pattern string   `json:"pattern,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Expr    string   `json:"expr,omitempty"`
}

// FieldConfig is the per-field extraction and validation configuration.
type FieldConfig struct {
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	Required  bool             `json:"required"`
	Strategy  string           `json:"strategy"`
	Fallbacks []string         `json:"fallbacks,omitempty"`
	Pattern   string           `json:"pattern,omitempty"`
	Anchor    *AnchorConfig    `json:"anchor,omitempty"`
	Table     *TableConfig     `json:"table,omitempty"`
	Model     *ModelConfig     `json:"model,omitempty"`
	Threshold float32          `json:"threshold"` // confidence at or above passes
	Clean     []CleanOp        `json:"clean,omitempty"`
	Validate  []ValidationRule `json:"validate,omitempty"`
}

// Rule is an immutable, versioned extraction configuration. A task pins the
// exact version it was ingested against.
type Rule struct {
	ID          string        `json:"id"`
	Version     string        `json:"version"`
	Name        string        `json:"name"`
	PagePolicy  string        `json:"page_policy"`
	Pages       []int         `json:"pages,omitempty"` // for PagesList / PagesSingle
	Engines     []string      `json:"engines"`         // ordered preference: primary first
	Language    string        `json:"language,omitempty"`
	Fields      []FieldConfig `json:"fields"`
	Active      bool          `json:"active"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TargetPages resolves the page policy against the document's page count,
// returning 1-based page numbers in order.
func (r *Rule) TargetPages(pageCount int) []int {
	switch r.PagePolicy {
	case PagesSingle:
		if len(r.Pages) == 1 && r.Pages[0] >= 1 && r.Pages[0] <= pageCount {
			return []int{r.Pages[0]}
		}
		return []int{1}
	case PagesList:
		var out []int
		for _, p := range r.Pages {
			if p >= 1 && p <= pageCount {
				out = append(out, p)
			}
		}
		return out
	default:
		out := make([]int, 0, pageCount)
		for p := 1; p <= pageCount; p++ {
			out = append(out, p)
		}
		return out
	}
}

// Field returns the config for a named field, or nil.
func (r *Rule) Field(name string) *FieldConfig {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i]
		}
	}
	return nil
}
