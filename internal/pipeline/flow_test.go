package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/delivery"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

type fakeReceivers struct {
	byID   map[uuid.UUID]*entity.Receiver
	byRule map[string][]*entity.Receiver
}

func (f *fakeReceivers) GetByID(_ context.Context, id uuid.UUID) (*entity.Receiver, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r, nil
}

func (f *fakeReceivers) ActiveForRule(_ context.Context, ruleID string) ([]*entity.Receiver, error) {
	return f.byRule[ruleID], nil
}

type fakeAttempts struct {
	mu   sync.Mutex
	rows []*entity.PushAttempt
}

func (f *fakeAttempts) Append(_ context.Context, a *entity.PushAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeAttempts) ListByTask(_ context.Context, taskID string) ([]*entity.PushAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.PushAttempt
	for _, a := range f.rows {
		if a.TaskID == taskID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeQueue) take() []enqueued {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.msgs
	f.msgs = nil
	return out
}

// drain dispatches queued messages the way the worker pools would, until the
// queues are empty.
func drain(t *testing.T, q *fakeQueue, dlv *delivery.Service, post *PostProcessor) {
	t.Helper()
	for {
		msgs := q.take()
		if len(msgs) == 0 {
			return
		}
		for _, m := range msgs {
			switch p := m.payload.(type) {
			case delivery.Message:
				if err := dlv.Handle(context.Background(), p); err != nil {
					t.Fatalf("delivery Handle: %v", err)
				}
			case PostProcessMessage:
				b, err := json.Marshal(p)
				if err != nil {
					t.Fatalf("marshal postprocess message: %v", err)
				}
				qm := &entity.QueueMessage{ID: uuid.New(), Queue: constants.QueuePostProcess, Payload: b}
				if err := post.Handle(context.Background(), qm); err != nil {
					t.Fatalf("postprocess Handle: %v", err)
				}
			default:
				t.Fatalf("unexpected queue payload %T", p)
			}
		}
	}
}

// Exercises the full life of one scanned invoice: recognition flags a shaky
// field, a reviewer confirms it, delivery pushes to the receiver and the
// fingerprint index learns the settled result.
func TestInvoiceFlowAuditApproveDeliver(t *testing.T) {
	ctx := context.Background()

	var pushed int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pushed++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tasks := newFakeTasks(queuedTask("T9"))
	eng := &pageEngine{
		name: "fake",
		texts: map[int]string{
			1: "Invoice No: INV-7713",
			2: "summary\nTotal: $240.00",
		},
		confs: map[int]float32{1: 0.55},
	}
	rec, _, q := recognizerForTest(t, tasks, eng, 2)

	recvID := uuid.New()
	erp := &entity.Receiver{ID: recvID, Name: "erp", Endpoint: srv.URL, Active: true, SigningSecret: "s"}
	receivers := &fakeReceivers{
		byID:   map[uuid.UUID]*entity.Receiver{recvID: erp},
		byRule: map[string][]*entity.Receiver{"R_INV": {erp}},
	}
	attempts := &fakeAttempts{}
	dlv := delivery.NewService(tasks, receivers, attempts, q, delivery.NewSender(nil), nil, nil)
	prints := &fakePrints{recs: map[string]*entity.FingerprintRecord{}}
	post := NewPostProcessor(tasks, prints, nil)

	if err := rec.Handle(ctx, recognitionMsg(t, "T9")); err != nil {
		t.Fatalf("recognition Handle: %v", err)
	}
	got, _ := tasks.GetByID(ctx, "T9")
	if got.Status != constants.TaskPendingAudit {
		t.Fatalf("after recognition: status = %s, want pending_audit", got.Status)
	}
	if len(q.take()) != 0 {
		t.Fatal("audited task must not reach the delivery queue")
	}

	// Reviewer confirms the low-confidence field.
	data := got.ExtractedData
	scores := got.ConfidenceScores
	scores["invoice_no"] = 1.0
	now := time.Now()
	err := tasks.Transition(ctx, "T9", constants.TaskPendingAudit, constants.TaskCompleted, &repository.TransitionUpdate{
		ExtractedData:    data,
		ConfidenceScores: scores,
		AuditReasons:     []entity.AuditReason{},
		CompletedAt:      &now,
	})
	if err != nil {
		t.Fatalf("approve transition: %v", err)
	}
	if err := dlv.EnqueueKickoff(ctx, "T9"); err != nil {
		t.Fatalf("EnqueueKickoff: %v", err)
	}
	if err := q.Enqueue(ctx, constants.QueuePostProcess, PostProcessMessage{TaskID: "T9"}, 0); err != nil {
		t.Fatalf("enqueue postprocess: %v", err)
	}

	drain(t, q, dlv, post)

	final, _ := tasks.GetByID(ctx, "T9")
	if final.Status != constants.TaskPushSuccess {
		t.Fatalf("final status = %s, want push_success", final.Status)
	}
	if pushed != 1 {
		t.Fatalf("receiver called %d times, want 1", pushed)
	}
	rec9, err := prints.Lookup(ctx, "fp-T9")
	if err != nil {
		t.Fatalf("fingerprint not recorded: %v", err)
	}
	if rec9.SourceTaskID != "T9" {
		t.Fatalf("fingerprint points at %s, want T9", rec9.SourceTaskID)
	}
	if rec9.ExtractedData["invoice_no"] != "INV-7713" {
		t.Fatalf("fingerprint data = %v", rec9.ExtractedData)
	}
}
