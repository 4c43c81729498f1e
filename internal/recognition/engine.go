package recognition

import (
	"context"

	"github.com/docflowhq/docflow/internal/entity"
)

// Input is one page handed to an OCR engine. Data is either a single-page PDF
// or an encoded image, per Format.
type Input struct {
	Data     []byte
	Format   string // constants.PDF or constants.IMAGE
	PageNo   int
	Language string
}

// Result is the raw engine output for one page.
type Result struct {
	Text             string
	TokenConfidences []float32
	Boxes            []entity.Box
}

// Engine is the narrow recognition-provider contract: given bytes, return
// text with per-token confidence, or fail.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}
