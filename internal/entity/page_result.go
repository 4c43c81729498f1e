package entity

import (
	"time"

	"github.com/google/uuid"
)

// Box is a word-level bounding box with its recognition confidence.
type Box struct {
	Word       string  `json:"word"`
	X0         int     `json:"x0"`
	Y0         int     `json:"y0"`
	X1         int     `json:"x1"`
	Y1         int     `json:"y1"`
	Confidence float32 `json:"confidence"`
}

// PageResult is the immutable outcome of recognizing one page. A failed page
// has empty Text and a non-empty FailureReason; it never aborts the task.
type PageResult struct {
	ID               uuid.UUID `json:"id"`
	TaskID           string    `json:"task_id"`
	PageNo           int       `json:"page_no"`
	Text             string    `json:"text"`
	TokenConfidences []float32 `json:"token_confidences,omitempty"`
	Boxes            []Box     `json:"boxes,omitempty"`
	Engine           string    `json:"engine"`
	Fallback         bool      `json:"fallback"`
	FailureReason    string    `json:"failure_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Failed reports whether recognition produced no usable text for this page.
func (p *PageResult) Failed() bool {
	return p.FailureReason != ""
}

// Confidence averages the token confidences, or 0 for a failed/empty page.
func (p *PageResult) Confidence() float32 {
	if len(p.TokenConfidences) == 0 {
		return 0
	}
	var sum float32
	for _, c := range p.TokenConfidences {
		sum += c
	}
	return sum / float32(len(p.TokenConfidences))
}
