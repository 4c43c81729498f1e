package entity

import (
	"time"

	"github.com/docflowhq/docflow/constants"
)

// AuditReason is one structured cause for routing a task to human review (or
// for a terminal delivery failure). Page is 0 when the reason is not tied to a
// specific page.
type AuditReason struct {
	Field   string `json:"field,omitempty"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Page    int    `json:"page,omitempty"`
}

// AttemptCounters tracks distinct retry counters per phase. Resubmission of a
// rejected task bumps Recognition; re-invoking delivery bumps Delivery.
type AttemptCounters struct {
	Recognition int `json:"recognition"`
	Delivery    int `json:"delivery"`
}

// Task represents the central pipeline aggregate for data transfer between layers.
type Task struct {
	ID               string               `json:"id"`
	Fingerprint      string               `json:"fingerprint"`
	Status           constants.TaskStatus `json:"status"`
	RuleID           string               `json:"rule_id"`
	RuleVersion      string               `json:"rule_version"`
	PageCount        int                  `json:"page_count"`
	Format           string               `json:"format"`
	BlobKey          string               `json:"blob_key"`
	Instant          bool                 `json:"instant"`
	ExtractedData    map[string]any       `json:"extracted_data,omitempty"`
	ConfidenceScores map[string]float32   `json:"confidence_scores,omitempty"`
	AuditReasons     []AuditReason        `json:"audit_reasons,omitempty"`
	Attempts         AttemptCounters      `json:"attempt_counters"`
	CreatedAt        time.Time            `json:"created_at"`
	CompletedAt      *time.Time           `json:"completed_at,omitempty"`
}
