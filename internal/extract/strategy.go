package extract

import (
	"context"

	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/recognition"
)

// FieldResult is the outcome of one strategy for one field. Absence
// (Found=false) is not an error; whether it matters is the quality gate's
// call, based on the field's Required flag.
type FieldResult struct {
	Value      any
	Raw        string // pre-coercion text as extracted
	Confidence float32
	SourcePage int
	Found      bool
}

// Strategy extracts one configured field from a merged document. Strategies
// are pure with respect to the document; any provider state (model client,
// breaker) lives inside the strategy value.
type Strategy interface {
	Tag() string
	Extract(ctx context.Context, doc *recognition.Document, field entity.FieldConfig) (FieldResult, error)
}
