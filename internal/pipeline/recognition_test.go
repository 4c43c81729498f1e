package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/extract"
	"github.com/docflowhq/docflow/internal/gate"
	"github.com/docflowhq/docflow/internal/recognition"
	"github.com/docflowhq/docflow/internal/repository"
)

type fakeTasks struct {
	mu   sync.Mutex
	byID map[string]*entity.Task
}

func newFakeTasks(tasks ...*entity.Task) *fakeTasks {
	f := &fakeTasks{byID: make(map[string]*entity.Task)}
	for _, t := range tasks {
		f.byID[t.ID] = t
	}
	return f
}

func (f *fakeTasks) Create(_ context.Context, t *entity.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTasks) GetByID(_ context.Context, id string) (*entity.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTasks) List(_ context.Context, _ repository.TaskFilter) ([]*entity.Task, error) {
	return nil, nil
}

func (f *fakeTasks) Transition(_ context.Context, id string, from, to constants.TaskStatus, upd *repository.TransitionUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byID[id]
	if !ok || t.Status != from {
		return common.ErrConflict
	}
	t.Status = to
	if upd != nil {
		if upd.ExtractedData != nil {
			t.ExtractedData = upd.ExtractedData
		}
		if upd.ConfidenceScores != nil {
			t.ConfidenceScores = upd.ConfidenceScores
		}
		if upd.AuditReasons != nil {
			t.AuditReasons = upd.AuditReasons
		}
		if upd.PageCount != nil {
			t.PageCount = *upd.PageCount
		}
		if upd.CompletedAt != nil {
			t.CompletedAt = upd.CompletedAt
		}
		if upd.IncrementRecognition {
			t.Attempts.Recognition++
		}
		if upd.IncrementDelivery {
			t.Attempts.Delivery++
		}
	}
	return nil
}

func (f *fakeTasks) DeleteQueued(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byID[id]
	if !ok || t.Status != constants.TaskQueued {
		return common.ErrConflict
	}
	delete(f.byID, id)
	return nil
}

type fakeRules struct{ byKey map[string]*entity.Rule }

func (f *fakeRules) Get(_ context.Context, ruleID, version string) (*entity.Rule, error) {
	r, ok := f.byKey[ruleID+"@"+version]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r, nil
}

func (f *fakeRules) ActiveVersion(_ context.Context, ruleID string) (*entity.Rule, error) {
	for _, r := range f.byKey {
		if r.ID == ruleID && r.Active {
			return r, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakePages struct {
	mu   sync.Mutex
	rows []entity.PageResult
}

func (f *fakePages) Append(_ context.Context, p *entity.PageResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, *p)
	return nil
}

func (f *fakePages) ListByTask(_ context.Context, taskID string) ([]*entity.PageResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.PageResult
	for i := range f.rows {
		if f.rows[i].TaskID == taskID {
			out = append(out, &f.rows[i])
		}
	}
	return out, nil
}

type enqueued struct {
	queue   string
	payload any
	delay   time.Duration
}

type fakeQueue struct {
	mu   sync.Mutex
	msgs []enqueued
}

func (f *fakeQueue) Enqueue(_ context.Context, queue string, payload any, delay time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, enqueued{queue: queue, payload: payload, delay: delay})
	return nil
}

func (f *fakeQueue) Claim(_ context.Context, _ string, _ time.Duration) (*entity.QueueMessage, error) {
	return nil, repository.ErrEmpty
}

func (f *fakeQueue) Ack(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeQueue) Release(_ context.Context, _ uuid.UUID, _ time.Duration) error { return nil }

func (f *fakeQueue) queues() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.msgs))
	for _, m := range f.msgs {
		out = append(out, m.queue)
	}
	return out
}

type fakeBlob struct{ data map[string][]byte }

func (f *fakeBlob) Put(_ context.Context, key string, data []byte, _ string) error {
	f.data[key] = data
	return nil
}

func (f *fakeBlob) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := f.data[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return b, nil
}

func (f *fakeBlob) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://blob.test/" + key, nil
}

func (f *fakeBlob) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

type pageEngine struct {
	name  string
	texts map[int]string // page -> text; missing page fails
	confs map[int]float32
	calls int
}

func (e *pageEngine) Name() string { return e.name }

func (e *pageEngine) Recognize(_ context.Context, in recognition.Input) (recognition.Result, error) {
	e.calls++
	text, ok := e.texts[in.PageNo]
	if !ok {
		return recognition.Result{}, errors.New("blank scan")
	}
	conf := e.confs[in.PageNo]
	if conf == 0 {
		conf = 0.9
	}
	return recognition.Result{Text: text, TokenConfidences: []float32{conf}}, nil
}

func invoiceRule() *entity.Rule {
	return &entity.Rule{
		ID:         "R_INV",
		Version:    "2.1",
		Name:       "invoices",
		PagePolicy: entity.PagesAll,
		Engines:    []string{"fake"},
		Active:     true,
		Fields: []entity.FieldConfig{
			{
				Name:      "invoice_no",
				Type:      "string",
				Required:  true,
				Strategy:  "pattern",
				Pattern:   `Invoice No[:.]?\s*([A-Z0-9-]+)`,
				Threshold: 0.8,
			},
			{
				Name:      "total",
				Type:      "number",
				Required:  true,
				Strategy:  "pattern",
				Pattern:   `Total[:.]?\s*\$?([0-9.,]+)`,
				Threshold: 0.5,
			},
		},
	}
}

func queuedTask(id string) *entity.Task {
	return &entity.Task{
		ID:          id,
		Fingerprint: "fp-" + id,
		Status:      constants.TaskQueued,
		RuleID:      "R_INV",
		RuleVersion: "2.1",
		Format:      constants.PDF,
		BlobKey:     "tasks/" + id + "/source.pdf",
		CreatedAt:   time.Now(),
	}
}

func splitInto(n int) func([]byte, string) (map[int][]byte, error) {
	return func(_ []byte, _ string) (map[int][]byte, error) {
		pages := make(map[int][]byte, n)
		for i := 1; i <= n; i++ {
			pages[i] = []byte(fmt.Sprintf("page-%d", i))
		}
		return pages, nil
	}
}

func recognizerForTest(t *testing.T, tasks *fakeTasks, eng recognition.Engine, pages int) (*Recognizer, *fakePages, *fakeQueue) {
	t.Helper()
	rules := &fakeRules{byKey: map[string]*entity.Rule{"R_INV@2.1": invoiceRule()}}
	pr := &fakePages{}
	q := &fakeQueue{}
	store := &fakeBlob{data: map[string][]byte{}}
	for id := range tasks.byID {
		store.data[tasks.byID[id].BlobKey] = []byte("%PDF-fake")
	}
	orch := recognition.NewOrchestrator(recognition.NewProvider(nil, eng), nil)
	router := extract.NewRouter(nil, extract.PatternStrategy{}, extract.AnchorStrategy{}, extract.TableStrategy{})
	rec := NewRecognizer(tasks, rules, pr, q, store, orch, router, gate.New(nil), nil)
	rec.split = splitInto(pages)
	return rec, pr, q
}

func recognitionMsg(t *testing.T, taskID string) *entity.QueueMessage {
	t.Helper()
	return &entity.QueueMessage{
		ID:      uuid.New(),
		Queue:   constants.QueueRecognition,
		Payload: []byte(fmt.Sprintf(`{"task_id":%q}`, taskID)),
	}
}

func TestCleanDocumentCompletesStraightThrough(t *testing.T) {
	tasks := newFakeTasks(queuedTask("T1"))
	eng := &pageEngine{name: "fake", texts: map[int]string{
		1: "Invoice No: INV-2041\nsome header",
		2: "line items\nTotal: $118.00",
	}}
	rec, pr, q := recognizerForTest(t, tasks, eng, 2)

	if err := rec.Handle(context.Background(), recognitionMsg(t, "T1")); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	got, _ := tasks.GetByID(context.Background(), "T1")
	if got.Status != constants.TaskCompleted {
		t.Fatalf("status = %s, want completed (reasons: %+v)", got.Status, got.AuditReasons)
	}
	if got.ExtractedData["invoice_no"] != "INV-2041" {
		t.Errorf("invoice_no = %v", got.ExtractedData["invoice_no"])
	}
	if got.ExtractedData["total"] != 118.0 {
		t.Errorf("total = %v, want 118.0", got.ExtractedData["total"])
	}
	if got.PageCount != 2 || got.CompletedAt == nil || got.Attempts.Recognition != 1 {
		t.Errorf("task bookkeeping wrong: %+v", got)
	}

	rows, _ := pr.ListByTask(context.Background(), "T1")
	if len(rows) != 2 {
		t.Errorf("persisted %d page results, want 2", len(rows))
	}
	queues := q.queues()
	if len(queues) != 2 || queues[0] != constants.QueueDelivery || queues[1] != constants.QueuePostProcess {
		t.Errorf("enqueued %v, want [delivery postprocess]", queues)
	}
}

func TestLowConfidenceFieldRoutesToAudit(t *testing.T) {
	tasks := newFakeTasks(queuedTask("T1"))
	eng := &pageEngine{
		name: "fake",
		texts: map[int]string{
			1: "Invoice No: INV-2041",
			2: "Total: $118.00",
		},
		confs: map[int]float32{1: 0.62}, // invoice_no threshold is 0.8
	}
	rec, _, q := recognizerForTest(t, tasks, eng, 2)

	if err := rec.Handle(context.Background(), recognitionMsg(t, "T1")); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	got, _ := tasks.GetByID(context.Background(), "T1")
	if got.Status != constants.TaskPendingAudit {
		t.Fatalf("status = %s, want pending_audit", got.Status)
	}
	found := false
	for _, r := range got.AuditReasons {
		if r.Field == "invoice_no" && r.Kind == constants.ReasonConfidenceLow {
			found = true
		}
	}
	if !found {
		t.Errorf("want a confidence_low reason for invoice_no, got %+v", got.AuditReasons)
	}
	// The low-confidence value is still kept for the reviewer to confirm.
	if got.ExtractedData["invoice_no"] != "INV-2041" {
		t.Errorf("extracted data should be retained for review, got %v", got.ExtractedData)
	}
	if len(q.queues()) != 0 {
		t.Errorf("audit-bound task must not enqueue delivery, got %v", q.queues())
	}
}

func TestFailedPageRecordsReasonWithoutAbortingOthers(t *testing.T) {
	tasks := newFakeTasks(queuedTask("T1"))
	eng := &pageEngine{name: "fake", texts: map[int]string{
		1: "Invoice No: INV-2041\nTotal: $118.00",
		3: "terms and conditions",
	}} // page 2 unreadable
	rec, pr, _ := recognizerForTest(t, tasks, eng, 3)

	if err := rec.Handle(context.Background(), recognitionMsg(t, "T1")); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	rows, _ := pr.ListByTask(context.Background(), "T1")
	if len(rows) != 3 {
		t.Fatalf("persisted %d page results, want 3", len(rows))
	}
	var texts [4]string
	for _, r := range rows {
		texts[r.PageNo] = r.Text
	}
	if texts[1] == "" || texts[3] == "" {
		t.Errorf("pages 1 and 3 must keep their text, got %q %q", texts[1], texts[3])
	}

	got, _ := tasks.GetByID(context.Background(), "T1")
	if got.Status != constants.TaskPendingAudit {
		t.Fatalf("status = %s, want pending_audit", got.Status)
	}
	found := false
	for _, r := range got.AuditReasons {
		if r.Kind == constants.ReasonPageFailed && r.Page == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("want a page_failed reason for page 2, got %+v", got.AuditReasons)
	}
}

func TestDuplicateMessageForSettledTaskIsDiscarded(t *testing.T) {
	task := queuedTask("T1")
	task.Status = constants.TaskCompleted
	tasks := newFakeTasks(task)
	eng := &pageEngine{name: "fake", texts: map[int]string{1: "anything"}}
	rec, _, q := recognizerForTest(t, tasks, eng, 1)

	if err := rec.Handle(context.Background(), recognitionMsg(t, "T1")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if eng.calls != 0 {
		t.Errorf("engine ran %d times for a settled task", eng.calls)
	}
	if len(q.queues()) != 0 {
		t.Errorf("settled task enqueued %v", q.queues())
	}
}

func TestMessageForVanishedTaskIsDiscarded(t *testing.T) {
	tasks := newFakeTasks()
	eng := &pageEngine{name: "fake", texts: map[int]string{}}
	rec, _, _ := recognizerForTest(t, tasks, eng, 1)

	if err := rec.Handle(context.Background(), recognitionMsg(t, "GONE")); err != nil {
		t.Fatalf("Handle should swallow a message for a deleted task, got %v", err)
	}
}
