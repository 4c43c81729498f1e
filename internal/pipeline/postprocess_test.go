package pipeline

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
)

type fakePrints struct {
	mu   sync.Mutex
	recs map[string]*entity.FingerprintRecord
}

func (f *fakePrints) Lookup(_ context.Context, fp string) (*entity.FingerprintRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recs[fp]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r, nil
}

func (f *fakePrints) Record(_ context.Context, rec *entity.FingerprintRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.recs[rec.Fingerprint]; ok {
		return nil // first write wins
	}
	f.recs[rec.Fingerprint] = rec
	return nil
}

func postprocessMsg(taskID string) *entity.QueueMessage {
	return &entity.QueueMessage{
		ID:      uuid.New(),
		Queue:   constants.QueuePostProcess,
		Payload: []byte(fmt.Sprintf(`{"task_id":%q}`, taskID)),
	}
}

func TestPostProcessRecordsFingerprint(t *testing.T) {
	task := queuedTask("T1")
	task.Status = constants.TaskCompleted
	task.ExtractedData = map[string]any{"invoice_no": "INV-2041"}
	task.ConfidenceScores = map[string]float32{"invoice_no": 0.93}
	task.PageCount = 2
	tasks := newFakeTasks(task)
	prints := &fakePrints{recs: map[string]*entity.FingerprintRecord{}}
	pp := NewPostProcessor(tasks, prints, nil)

	if err := pp.Handle(context.Background(), postprocessMsg("T1")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	rec, ok := prints.recs["fp-T1"]
	if !ok {
		t.Fatal("fingerprint not recorded")
	}
	if rec.SourceTaskID != "T1" || rec.ExtractedData["invoice_no"] != "INV-2041" || rec.PageCount != 2 {
		t.Errorf("record = %+v", rec)
	}
}

func TestPostProcessSkipsUnsettledAndInstantTasks(t *testing.T) {
	audited := queuedTask("T1")
	audited.Status = constants.TaskPendingAudit
	instant := queuedTask("T2")
	instant.Status = constants.TaskCompleted
	instant.Instant = true
	tasks := newFakeTasks(audited, instant)
	prints := &fakePrints{recs: map[string]*entity.FingerprintRecord{}}
	pp := NewPostProcessor(tasks, prints, nil)

	for _, id := range []string{"T1", "T2", "GONE"} {
		if err := pp.Handle(context.Background(), postprocessMsg(id)); err != nil {
			t.Fatalf("Handle(%s): %v", id, err)
		}
	}
	if len(prints.recs) != 0 {
		t.Errorf("recorded %d fingerprints, want 0", len(prints.recs))
	}
}
