package extract

import (
	"context"
	"fmt"
	"regexp"

	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/recognition"
)

// PatternStrategy matches a regular expression against the merged text. The
// merge's page-boundary tokens guarantee a pattern can never glue the tail of
// one page to the head of the next. The first capture group wins when the
// pattern has one, otherwise the whole match.
type PatternStrategy struct{}

func (PatternStrategy) Tag() string { return entity.StrategyPattern }

func (PatternStrategy) Extract(_ context.Context, doc *recognition.Document, field entity.FieldConfig) (FieldResult, error) {
	if field.Pattern == "" {
		return FieldResult{}, fmt.Errorf("field %q: pattern strategy without a pattern", field.Name)
	}
	re, err := regexp.Compile(field.Pattern)
	if err != nil {
		return FieldResult{}, fmt.Errorf("field %q: compile pattern: %w", field.Name, err)
	}

	merged := doc.Merged()
	loc := re.FindStringSubmatchIndex(merged)
	if loc == nil {
		return FieldResult{}, nil
	}

	start, end := loc[0], loc[1]
	if len(loc) >= 4 && loc[2] >= 0 {
		start, end = loc[2], loc[3]
	}

	page := doc.PageForOffset(start)
	return FieldResult{
		Raw:        merged[start:end],
		Confidence: doc.PageConfidence(page),
		SourcePage: page,
		Found:      true,
	}, nil
}
