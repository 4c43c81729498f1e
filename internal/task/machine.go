package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
)

// transitions is the authoritative lifecycle graph. Anything not listed here
// is a conflict, including transitions out of terminal states; operator
// actions (resubmit, retry delivery) are modeled as their own edges.
var transitions = map[constants.TaskStatus][]constants.TaskStatus{
	constants.TaskQueued:       {constants.TaskProcessing},
	constants.TaskProcessing:   {constants.TaskPendingAudit, constants.TaskCompleted},
	constants.TaskPendingAudit: {constants.TaskCompleted, constants.TaskRejected},
	constants.TaskCompleted:    {constants.TaskPushing},
	constants.TaskPushing:      {constants.TaskPushSuccess, constants.TaskPushFailed},
	// Operator-actionable terminals.
	constants.TaskRejected:   {constants.TaskProcessing},
	constants.TaskPushFailed: {constants.TaskPushing},
}

// CanTransition reports whether from -> to is an edge of the lifecycle graph.
func CanTransition(from, to constants.TaskStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status has no pipeline-driven successor.
// Rejected and push_failed are operator-actionable terminals: leaving them
// requires an explicit API action, never a pipeline worker.
func IsTerminal(s constants.TaskStatus) bool {
	switch s {
	case constants.TaskPushSuccess, constants.TaskPushFailed, constants.TaskRejected:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known status value.
func ValidStatus(s constants.TaskStatus) bool {
	switch s {
	case constants.TaskQueued, constants.TaskProcessing, constants.TaskPendingAudit,
		constants.TaskCompleted, constants.TaskRejected, constants.TaskPushing,
		constants.TaskPushSuccess, constants.TaskPushFailed:
		return true
	}
	return false
}

// NewID mints a sortable, date-prefixed opaque task identity.
func NewID(now time.Time) string {
	return fmt.Sprintf("T%s-%s", now.UTC().Format("20060102-150405"), uuid.New().String()[:8])
}
