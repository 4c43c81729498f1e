package delivery

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
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

type fakeTasks struct {
	mu sync.Mutex
	m  map[string]*entity.Task
}

func newFakeTasks(tasks ...*entity.Task) *fakeTasks {
	f := &fakeTasks{m: map[string]*entity.Task{}}
	for _, t := range tasks {
		f.m[t.ID] = t
	}
	return f
}

func (f *fakeTasks) Create(_ context.Context, t *entity.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.m[t.ID] = t
	return nil
}

func (f *fakeTasks) GetByID(_ context.Context, id string) (*entity.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.m[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTasks) List(context.Context, repository.TaskFilter) ([]*entity.Task, error) {
	return nil, nil
}

func (f *fakeTasks) Transition(_ context.Context, id string, from, to constants.TaskStatus, upd *repository.TransitionUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.m[id]
	if !ok || t.Status != from {
		return common.ErrConflict
	}
	t.Status = to
	if upd != nil {
		if upd.AuditReasons != nil {
			t.AuditReasons = upd.AuditReasons
		}
		if upd.ExtractedData != nil {
			t.ExtractedData = upd.ExtractedData
		}
		if upd.CompletedAt != nil {
			t.CompletedAt = upd.CompletedAt
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
	t, ok := f.m[id]
	if !ok || t.Status != constants.TaskQueued {
		return common.ErrConflict
	}
	delete(f.m, id)
	return nil
}

func (f *fakeTasks) status(id string) constants.TaskStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.m[id].Status
}

type fakeReceivers struct {
	byID   map[uuid.UUID]*entity.Receiver
	byRule map[string][]*entity.Receiver
}

func newFakeReceivers(ruleID string, recvs ...*entity.Receiver) *fakeReceivers {
	f := &fakeReceivers{byID: map[uuid.UUID]*entity.Receiver{}, byRule: map[string][]*entity.Receiver{}}
	for _, r := range recvs {
		f.byID[r.ID] = r
		if r.Active {
			f.byRule[ruleID] = append(f.byRule[ruleID], r)
		}
	}
	return f
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

type enqueued struct {
	queue   string
	payload []byte
	delay   time.Duration
}

type fakeQueue struct {
	mu   sync.Mutex
	msgs []enqueued
}

func (f *fakeQueue) Enqueue(_ context.Context, queue string, payload any, delay time.Duration) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, enqueued{queue: queue, payload: b, delay: delay})
	return nil
}

func (f *fakeQueue) Claim(context.Context, string, time.Duration) (*entity.QueueMessage, error) {
	return nil, repository.ErrEmpty
}

func (f *fakeQueue) Ack(context.Context, uuid.UUID) error { return nil }

func (f *fakeQueue) Release(context.Context, uuid.UUID, time.Duration) error { return nil }

func (f *fakeQueue) take() []enqueued {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.msgs
	f.msgs = nil
	return out
}

func pushableTask(id string) *entity.Task {
	return &entity.Task{
		ID:          id,
		Status:      constants.TaskPushing,
		RuleID:      "R_INV",
		RuleVersion: "1.0",
		ExtractedData: map[string]any{
			"invoice_no": "INV-1",
		},
		CreatedAt: time.Now(),
	}
}

func newService(tasks *fakeTasks, receivers *fakeReceivers, attempts *fakeAttempts, queue *fakeQueue) *Service {
	return NewService(tasks, receivers, attempts, queue, NewSender(nil), nil, nil)
}

func TestServerErrorFollowsRetrySchedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	recvID := uuid.New()
	tasks := newFakeTasks(pushableTask("T1"))
	receivers := newFakeReceivers("R_INV", &entity.Receiver{
		ID: recvID, Name: "erp", Endpoint: srv.URL, Active: true, SigningSecret: "s",
	})
	attempts := &fakeAttempts{}
	queue := &fakeQueue{}
	svc := newService(tasks, receivers, attempts, queue)

	wantDelays := []time.Duration{10 * time.Second, 30 * time.Second, 90 * time.Second}
	for attempt := 0; attempt < 3; attempt++ {
		if err := svc.Handle(context.Background(), Message{TaskID: "T1", ReceiverID: recvID.String(), Attempt: attempt}); err != nil {
			t.Fatalf("Handle attempt %d: %v", attempt, err)
		}
		msgs := queue.take()
		if len(msgs) != 1 {
			t.Fatalf("attempt %d: got %d requeues, want 1", attempt, len(msgs))
		}
		if msgs[0].delay != wantDelays[attempt] {
			t.Errorf("attempt %d: delay = %v, want %v", attempt, msgs[0].delay, wantDelays[attempt])
		}
	}

	// 4th attempt (3rd retry) fails too: dead-letter, no further requeue.
	if err := svc.Handle(context.Background(), Message{TaskID: "T1", ReceiverID: recvID.String(), Attempt: 3}); err != nil {
		t.Fatalf("Handle final attempt: %v", err)
	}
	if msgs := queue.take(); len(msgs) != 0 {
		t.Errorf("exhausted delivery still requeued: %+v", msgs)
	}
	history, _ := attempts.ListByTask(context.Background(), "T1")
	if st := receiverState(history, recvID, 0); st != constants.OutcomeDeadLetter {
		t.Errorf("receiver state = %q, want dead_letter", st)
	}
	if got := tasks.status("T1"); got != constants.TaskPushFailed {
		t.Errorf("task status = %q, want push_failed", got)
	}
}

func TestClientErrorDeadLettersImmediately(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	recvID := uuid.New()
	tasks := newFakeTasks(pushableTask("T2"))
	receivers := newFakeReceivers("R_INV", &entity.Receiver{
		ID: recvID, Name: "erp", Endpoint: srv.URL, Active: true, SigningSecret: "s",
	})
	attempts := &fakeAttempts{}
	queue := &fakeQueue{}
	svc := newService(tasks, receivers, attempts, queue)

	if err := svc.Handle(context.Background(), Message{TaskID: "T2", ReceiverID: recvID.String()}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if msgs := queue.take(); len(msgs) != 0 {
		t.Errorf("client error must not retry, got requeues: %+v", msgs)
	}
	if got := tasks.status("T2"); got != constants.TaskPushFailed {
		t.Errorf("task status = %q, want push_failed", got)
	}
}

func TestDuplicateMessageForSettledTaskIsNoOp(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	defer srv.Close()

	recvID := uuid.New()
	task := pushableTask("T3")
	task.Status = constants.TaskPushSuccess
	tasks := newFakeTasks(task)
	receivers := newFakeReceivers("R_INV", &entity.Receiver{
		ID: recvID, Name: "erp", Endpoint: srv.URL, Active: true, SigningSecret: "s",
	})
	svc := newService(tasks, receivers, &fakeAttempts{}, &fakeQueue{})

	if err := svc.Handle(context.Background(), Message{TaskID: "T3", ReceiverID: recvID.String()}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if calls != 0 {
		t.Errorf("settled task was re-delivered %d times", calls)
	}
	if got := tasks.status("T3"); got != constants.TaskPushSuccess {
		t.Errorf("status changed to %q", got)
	}
}

func TestAllReceiversSucceedSettlesPushSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, b := uuid.New(), uuid.New()
	tasks := newFakeTasks(pushableTask("T4"))
	receivers := newFakeReceivers("R_INV",
		&entity.Receiver{ID: a, Name: "erp", Endpoint: srv.URL, Active: true, SigningSecret: "s"},
		&entity.Receiver{ID: b, Name: "archive", Endpoint: srv.URL, Active: true, SigningSecret: "s"},
	)
	attempts := &fakeAttempts{}
	svc := newService(tasks, receivers, attempts, &fakeQueue{})

	if err := svc.Handle(context.Background(), Message{TaskID: "T4", ReceiverID: a.String()}); err != nil {
		t.Fatalf("Handle a: %v", err)
	}
	if got := tasks.status("T4"); got != constants.TaskPushing {
		t.Fatalf("status = %q before second receiver settles, want pushing", got)
	}
	if err := svc.Handle(context.Background(), Message{TaskID: "T4", ReceiverID: b.String()}); err != nil {
		t.Fatalf("Handle b: %v", err)
	}
	if got := tasks.status("T4"); got != constants.TaskPushSuccess {
		t.Errorf("status = %q, want push_success", got)
	}
}

func TestMixedOutcomeIsPushFailed(t *testing.T) {
	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer okSrv.Close()
	badSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer badSrv.Close()

	good, bad := uuid.New(), uuid.New()
	tasks := newFakeTasks(pushableTask("T5"))
	receivers := newFakeReceivers("R_INV",
		&entity.Receiver{ID: good, Name: "erp", Endpoint: okSrv.URL, Active: true, SigningSecret: "s"},
		&entity.Receiver{ID: bad, Name: "legacy", Endpoint: badSrv.URL, Active: true, SigningSecret: "s"},
	)
	attempts := &fakeAttempts{}
	svc := newService(tasks, receivers, attempts, &fakeQueue{})

	if err := svc.Handle(context.Background(), Message{TaskID: "T5", ReceiverID: good.String()}); err != nil {
		t.Fatalf("Handle good: %v", err)
	}
	if err := svc.Handle(context.Background(), Message{TaskID: "T5", ReceiverID: bad.String()}); err != nil {
		t.Fatalf("Handle bad: %v", err)
	}

	if got := tasks.status("T5"); got != constants.TaskPushFailed {
		t.Errorf("status = %q, want push_failed surfacing the mixed result", got)
	}
	task, _ := tasks.GetByID(context.Background(), "T5")
	found := false
	for _, r := range task.AuditReasons {
		if r.Kind == constants.ReasonDeliveryFailed {
			found = true
		}
	}
	if !found {
		t.Errorf("push_failed task missing delivery_failed reason: %+v", task.AuditReasons)
	}
	// The successful receiver's attempt log is untouched by the failure.
	history, _ := attempts.ListByTask(context.Background(), "T5")
	if st := receiverState(history, good, 0); st != constants.OutcomeSuccess {
		t.Errorf("good receiver state = %q, want success", st)
	}
}

func TestKickoffFansOutPerReceiver(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	task := pushableTask("T6")
	task.Status = constants.TaskCompleted
	tasks := newFakeTasks(task)
	receivers := newFakeReceivers("R_INV",
		&entity.Receiver{ID: a, Name: "erp", Active: true},
		&entity.Receiver{ID: b, Name: "archive", Active: true},
	)
	queue := &fakeQueue{}
	svc := newService(tasks, receivers, &fakeAttempts{}, queue)

	if err := svc.Handle(context.Background(), Message{TaskID: "T6"}); err != nil {
		t.Fatalf("Handle kickoff: %v", err)
	}
	if got := tasks.status("T6"); got != constants.TaskPushing {
		t.Errorf("status = %q, want pushing", got)
	}
	msgs := queue.take()
	if len(msgs) != 2 {
		t.Fatalf("got %d fan-out messages, want 2", len(msgs))
	}
	for _, m := range msgs {
		var dm Message
		if err := json.Unmarshal(m.payload, &dm); err != nil {
			t.Fatalf("payload: %v", err)
		}
		if dm.ReceiverID == "" || dm.Attempt != 0 {
			t.Errorf("fan-out message = %+v", dm)
		}
	}
}

func TestRetryDeliveryRedrivesOnlyFailedReceivers(t *testing.T) {
	var goodCalls int
	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		goodCalls++
		w.WriteHeader(http.StatusOK)
	}))
	defer okSrv.Close()
	flaky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK) // healthy again by the time the retry runs
	}))
	defer flaky.Close()

	good, bad := uuid.New(), uuid.New()
	tasks := newFakeTasks(pushableTask("T8"))
	receivers := newFakeReceivers("R_INV",
		&entity.Receiver{ID: good, Name: "erp", Endpoint: okSrv.URL, Active: true, SigningSecret: "s"},
		&entity.Receiver{ID: bad, Name: "legacy", Endpoint: flaky.URL, Active: true, SigningSecret: "s"},
	)
	attempts := &fakeAttempts{}
	queue := &fakeQueue{}
	svc := newService(tasks, receivers, attempts, queue)

	// Cycle 0: good succeeds, bad is already dead-lettered (seeded directly).
	if err := svc.Handle(context.Background(), Message{TaskID: "T8", ReceiverID: good.String()}); err != nil {
		t.Fatalf("Handle good: %v", err)
	}
	_ = attempts.Append(context.Background(), &entity.PushAttempt{
		ID: uuid.New(), TaskID: "T8", ReceiverID: bad, Cycle: 0,
		Outcome: constants.OutcomeDeadLetter, CreatedAt: time.Now(),
	})
	if err := svc.Handle(context.Background(), Message{TaskID: "T8", ReceiverID: bad.String()}); err != nil {
		t.Fatalf("Handle bad: %v", err)
	}
	if got := tasks.status("T8"); got != constants.TaskPushFailed {
		t.Fatalf("status = %q, want push_failed before retry", got)
	}
	queue.take()

	if err := svc.RetryDelivery(context.Background(), "T8"); err != nil {
		t.Fatalf("RetryDelivery: %v", err)
	}
	if got := tasks.status("T8"); got != constants.TaskPushing {
		t.Fatalf("status = %q, want pushing after retry", got)
	}

	// Drain the queue by hand: kickoff, then the single fan-out attempt.
	for _, m := range queue.take() {
		var dm Message
		if err := json.Unmarshal(m.payload, &dm); err != nil {
			t.Fatalf("payload: %v", err)
		}
		if err := svc.Handle(context.Background(), dm); err != nil {
			t.Fatalf("Handle %+v: %v", dm, err)
		}
	}
	msgs := queue.take()
	if len(msgs) != 1 {
		t.Fatalf("retry fan-out = %d messages, want only the failed receiver", len(msgs))
	}
	var dm Message
	if err := json.Unmarshal(msgs[0].payload, &dm); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if dm.ReceiverID != bad.String() || dm.Cycle != 1 {
		t.Fatalf("fan-out message = %+v, want cycle 1 for the failed receiver", dm)
	}
	if err := svc.Handle(context.Background(), dm); err != nil {
		t.Fatalf("Handle retry attempt: %v", err)
	}

	if got := tasks.status("T8"); got != constants.TaskPushSuccess {
		t.Errorf("status = %q, want push_success after retry drains", got)
	}
	if goodCalls != 1 {
		t.Errorf("already-successful receiver was re-delivered %d extra times", goodCalls-1)
	}
}

func TestKickoffWithoutReceiversSettlesImmediately(t *testing.T) {
	task := pushableTask("T7")
	task.Status = constants.TaskCompleted
	tasks := newFakeTasks(task)
	svc := newService(tasks, newFakeReceivers("R_INV"), &fakeAttempts{}, &fakeQueue{})

	if err := svc.Handle(context.Background(), Message{TaskID: "T7"}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := tasks.status("T7"); got != constants.TaskPushSuccess {
		t.Errorf("status = %q, want push_success", got)
	}
}
