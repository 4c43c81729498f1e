package task

import (
	"strings"
	"testing"
	"time"

	"github.com/docflowhq/docflow/constants"
)

func TestCanTransition_Graph(t *testing.T) {
	allowed := [][2]constants.TaskStatus{
		{constants.TaskQueued, constants.TaskProcessing},
		{constants.TaskProcessing, constants.TaskPendingAudit},
		{constants.TaskProcessing, constants.TaskCompleted},
		{constants.TaskPendingAudit, constants.TaskCompleted},
		{constants.TaskPendingAudit, constants.TaskRejected},
		{constants.TaskCompleted, constants.TaskPushing},
		{constants.TaskPushing, constants.TaskPushSuccess},
		{constants.TaskPushing, constants.TaskPushFailed},
		{constants.TaskRejected, constants.TaskProcessing},
		{constants.TaskPushFailed, constants.TaskPushing},
	}
	for _, tr := range allowed {
		if !CanTransition(tr[0], tr[1]) {
			t.Errorf("expected %s -> %s to be allowed", tr[0], tr[1])
		}
	}

	denied := [][2]constants.TaskStatus{
		{constants.TaskQueued, constants.TaskCompleted},     // skipping processing
		{constants.TaskQueued, constants.TaskPendingAudit},
		{constants.TaskProcessing, constants.TaskPushing},   // skipping completed
		{constants.TaskPushSuccess, constants.TaskPushing},  // reverting a terminal
		{constants.TaskPushSuccess, constants.TaskQueued},
		{constants.TaskCompleted, constants.TaskProcessing}, // going backwards
		{constants.TaskRejected, constants.TaskCompleted},
	}
	for _, tr := range denied {
		if CanTransition(tr[0], tr[1]) {
			t.Errorf("expected %s -> %s to be denied", tr[0], tr[1])
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []constants.TaskStatus{constants.TaskPushSuccess, constants.TaskPushFailed, constants.TaskRejected} {
		if !IsTerminal(s) {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []constants.TaskStatus{constants.TaskQueued, constants.TaskProcessing, constants.TaskPendingAudit, constants.TaskCompleted, constants.TaskPushing} {
		if IsTerminal(s) {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestNewID_SortableAndUnique(t *testing.T) {
	earlier := NewID(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	later := NewID(time.Date(2026, 1, 2, 3, 4, 6, 0, time.UTC))
	if !strings.HasPrefix(earlier, "T20260102-030405-") {
		t.Fatalf("unexpected id format: %s", earlier)
	}
	if earlier >= later {
		t.Errorf("ids should sort by creation time: %s >= %s", earlier, later)
	}
	if NewID(time.Now()) == NewID(time.Now()) {
		t.Error("ids must be unique for identical timestamps")
	}
}
