package recognition

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	datePattern   = regexp.MustCompile(`\b(\d{4}[-/.]\d{1,2}[-/.]\d{1,2}|\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})\b`)
	amountPattern = regexp.MustCompile(`\b\d{1,3}(,\d{3})*(\.\d{2})\b`)
	numberPattern = regexp.MustCompile(`\b\d+[-/]?\d*\b`)
)

// heuristicConfidence scores text from engines that report no per-token
// confidence. Structured tokens that extraction depends on (dates,
// amounts, reference numbers) raise the score; garbled output with a
// low printable ratio lowers it.
func heuristicConfidence(text string) float32 {
	if text == "" {
		return 0
	}

	score := float32(0.35)

	if datePattern.MatchString(text) {
		score += 0.15
	}
	if amountPattern.MatchString(text) {
		score += 0.15
	}
	if numberPattern.MatchString(text) {
		score += 0.05
	}

	words := strings.Fields(text)
	if len(words) >= 10 {
		score += 0.10
	}

	var printable, total int
	for _, r := range text {
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			printable++
		}
	}
	if total > 0 {
		ratio := float32(printable) / float32(total)
		if ratio > 0.95 {
			score += 0.10
		} else if ratio < 0.80 {
			score -= 0.20
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 0.95 {
		score = 0.95
	}
	return score
}
