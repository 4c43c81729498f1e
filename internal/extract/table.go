package extract

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/recognition"
)

// TableStrategy extracts one column from a repeating row structure. A table
// starts at the first line matching the header pattern and runs until a blank
// line or the end of the page; a table that resumes on the next page is
// detected by re-matching the header there, so rows may continue across a
// page boundary.
type TableStrategy struct{}

func (TableStrategy) Tag() string { return entity.StrategyTable }

func (TableStrategy) Extract(_ context.Context, doc *recognition.Document, field entity.FieldConfig) (FieldResult, error) {
	cfg := field.Table
	if cfg == nil || cfg.HeaderPattern == "" {
		return FieldResult{}, fmt.Errorf("field %q: table strategy without a header pattern", field.Name)
	}
	header, err := regexp.Compile(cfg.HeaderPattern)
	if err != nil {
		return FieldResult{}, fmt.Errorf("field %q: compile header pattern: %w", field.Name, err)
	}

	var (
		cells     []string
		firstPage int
		confSum   float32
		confPages int
		started   bool
	)

	for _, p := range doc.Pages() {
		if p.Failed() {
			// A failed page ends the table; rows beyond it cannot be
			// attributed reliably.
			if started {
				break
			}
			continue
		}

		lines := strings.Split(p.Text, "\n")
		i := 0
		if !started {
			i = indexMatching(lines, header)
			if i < 0 {
				continue
			}
			started = true
			firstPage = p.PageNo
			i++ // skip the header line itself
		} else {
			// Continuation page must restate the header.
			i = indexMatching(lines, header)
			if i < 0 {
				break
			}
			i++
		}

		confSum += doc.PageConfidence(p.PageNo)
		confPages++

		done := false
		for ; i < len(lines); i++ {
			row := strings.TrimSpace(lines[i])
			if row == "" {
				done = true
				break
			}
			cell, ok := columnCell(row, cfg)
			if ok {
				cells = append(cells, cell)
			}
		}
		if done {
			break
		}
	}

	if len(cells) == 0 {
		return FieldResult{}, nil
	}

	var conf float32
	if confPages > 0 {
		conf = confSum / float32(confPages)
	}
	res := FieldResult{Confidence: conf, SourcePage: firstPage, Found: true}

	switch cfg.Aggregate {
	case "last":
		res.Raw = cells[len(cells)-1]
	case "sum":
		var sum float64
		for _, c := range cells {
			f, err := strconv.ParseFloat(normalizeNumeric(c), 64)
			if err != nil {
				return FieldResult{}, fmt.Errorf("field %q: sum over non-numeric cell %q", field.Name, c)
			}
			sum += f
		}
		res.Value = sum
		res.Raw = strconv.FormatFloat(sum, 'f', -1, 64)
	case "join":
		res.Raw = strings.Join(cells, ", ")
	default: // "first"
		res.Raw = cells[0]
	}
	return res, nil
}

func indexMatching(lines []string, re *regexp.Regexp) int {
	for i, line := range lines {
		if re.MatchString(line) {
			return i
		}
	}
	return -1
}

func columnCell(row string, cfg *entity.TableConfig) (string, bool) {
	var cols []string
	if cfg.Separator != "" {
		cols = strings.Split(row, cfg.Separator)
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
	} else {
		cols = strings.Fields(row)
	}
	if cfg.Column < 0 || cfg.Column >= len(cols) {
		return "", false
	}
	return cols[cfg.Column], true
}

func normalizeNumeric(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	return s
}
