package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// QueueMessage is one durable unit of work. Messages become claimable when
// VisibleAt has passed; a claim pushes VisibleAt forward by the lease duration,
// so a crashed worker's message reappears automatically (at-least-once).
type QueueMessage struct {
	ID        uuid.UUID       `json:"id"`
	Queue     string          `json:"queue"`
	Payload   json.RawMessage `json:"payload"`
	VisibleAt time.Time       `json:"visible_at"`
	Attempts  int             `json:"attempts"`
	CreatedAt time.Time       `json:"created_at"`
}

// FingerprintRecord maps a content+rule identity to a previously completed
// result for instant dedup hits.
type FingerprintRecord struct {
	Fingerprint      string             `json:"fingerprint"`
	SourceTaskID     string             `json:"source_task_id"`
	ExtractedData    map[string]any     `json:"extracted_data"`
	ConfidenceScores map[string]float32 `json:"confidence_scores"`
	PageCount        int                `json:"page_count"`
	RecordedAt       time.Time          `json:"recorded_at"`
}
