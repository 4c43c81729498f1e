package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
)

// PushAttempt is one delivery try for a (task, receiver) pair. Append-only;
// never mutated after creation.
type PushAttempt struct {
	ID         uuid.UUID         `json:"id"`
	TaskID     string            `json:"task_id"`
	ReceiverID uuid.UUID         `json:"receiver_id"`
	Cycle      int               `json:"cycle"`   // delivery invocation ordinal, bumped by operator retry
	Attempt    int               `json:"attempt"` // retry ordinal within a cycle, 0 = first try
	HTTPStatus int               `json:"http_status"`
	Outcome    constants.Outcome `json:"outcome"`
	DurationMS int64             `json:"duration_ms"`
	Error      string            `json:"error,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}
