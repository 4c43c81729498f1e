package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/fingerprint"
	"github.com/docflowhq/docflow/internal/repository"
)

type fakeTasks struct {
	mu sync.Mutex
	m  map[string]*entity.Task
}

func (f *fakeTasks) Create(_ context.Context, t *entity.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.m == nil {
		f.m = map[string]*entity.Task{}
	}
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
	return t, nil
}

func (f *fakeTasks) List(context.Context, repository.TaskFilter) ([]*entity.Task, error) {
	return nil, nil
}

func (f *fakeTasks) Transition(context.Context, string, constants.TaskStatus, constants.TaskStatus, *repository.TransitionUpdate) error {
	return nil
}

func (f *fakeTasks) DeleteQueued(context.Context, string) error { return nil }

type fakeRules struct {
	rules map[string]*entity.Rule // key "id@version"
}

func (f *fakeRules) Get(_ context.Context, id, version string) (*entity.Rule, error) {
	r, ok := f.rules[id+"@"+version]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r, nil
}

func (f *fakeRules) ActiveVersion(_ context.Context, id string) (*entity.Rule, error) {
	for _, r := range f.rules {
		if r.ID == id && r.Active {
			return r, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakePrints struct {
	mu sync.Mutex
	m  map[string]*entity.FingerprintRecord
}

func (f *fakePrints) Lookup(_ context.Context, fp string) (*entity.FingerprintRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.m[fp]
	if !ok {
		return nil, common.ErrNotFound
	}
	return rec, nil
}

func (f *fakePrints) Record(_ context.Context, rec *entity.FingerprintRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.m == nil {
		f.m = map[string]*entity.FingerprintRecord{}
	}
	if _, exists := f.m[rec.Fingerprint]; !exists {
		f.m[rec.Fingerprint] = rec
	}
	return nil
}

type enqueued struct {
	queue   string
	payload []byte
}

type fakeQueue struct {
	mu   sync.Mutex
	msgs []enqueued
}

func (f *fakeQueue) Enqueue(_ context.Context, queue string, payload any, _ time.Duration) error {
	b, _ := json.Marshal(payload)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, enqueued{queue: queue, payload: b})
	return nil
}

func (f *fakeQueue) Claim(context.Context, string, time.Duration) (*entity.QueueMessage, error) {
	return nil, repository.ErrEmpty
}

func (f *fakeQueue) Ack(context.Context, uuid.UUID) error { return nil }

func (f *fakeQueue) Release(context.Context, uuid.UUID, time.Duration) error { return nil }

type fakeBlob struct {
	mu sync.Mutex
	m  map[string][]byte
}

func (f *fakeBlob) Put(_ context.Context, key string, data []byte, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.m == nil {
		f.m = map[string][]byte{}
	}
	f.m[key] = data
	return nil
}

func (f *fakeBlob) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.m[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return b, nil
}

func (f *fakeBlob) PresignGet(context.Context, string, time.Duration) (string, error) {
	return "https://blob/url", nil
}

func (f *fakeBlob) Delete(context.Context, string) error { return nil }

func testRules() *fakeRules {
	return &fakeRules{rules: map[string]*entity.Rule{
		"R_INV@1.0": {ID: "R_INV", Version: "1.0", Active: true},
		"R_INV@2.0": {ID: "R_INV", Version: "2.0"},
	}}
}

func newTestService() (*Service, *fakeTasks, *fakePrints, *fakeQueue) {
	tasks := &fakeTasks{}
	prints := &fakePrints{}
	queue := &fakeQueue{}
	svc := NewService(tasks, testRules(), prints, queue, &fakeBlob{}, nil)
	return svc, tasks, prints, queue
}

func TestIngestEnqueuesRecognition(t *testing.T) {
	svc, tasks, _, queue := newTestService()

	res, err := svc.Ingest(context.Background(), Request{
		FileName: "invoice.pdf", Data: []byte("pdf"), RuleID: "R_INV", RuleVersion: "1.0",
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.Instant || res.Status != constants.TaskQueued {
		t.Errorf("res = %+v, want queued non-instant", res)
	}
	task, err := tasks.GetByID(context.Background(), res.TaskID)
	if err != nil {
		t.Fatalf("task not persisted: %v", err)
	}
	if task.RuleVersion != "1.0" || task.Format != constants.PDF {
		t.Errorf("task = %+v", task)
	}
	if len(queue.msgs) != 1 || queue.msgs[0].queue != constants.QueueRecognition {
		t.Fatalf("queue messages = %+v, want one recognition message", queue.msgs)
	}
}

func TestIngestDedupHitIsInstant(t *testing.T) {
	svc, tasks, prints, queue := newTestService()
	file := []byte("same bytes")

	first, err := svc.Ingest(context.Background(), Request{
		FileName: "invoice.pdf", Data: file, RuleID: "R_INV", RuleVersion: "1.0",
	})
	if err != nil {
		t.Fatalf("first Ingest: %v", err)
	}
	if first.Instant {
		t.Fatal("first upload must not be instant")
	}

	// Simulate post-processing recording the completed result.
	_ = prints.Record(context.Background(), &entity.FingerprintRecord{
		Fingerprint:      fingerprint.Compute(file, "R_INV", "1.0"),
		SourceTaskID:     first.TaskID,
		ExtractedData:    map[string]any{"invoice_no": "INV-1"},
		ConfidenceScores: map[string]float32{"invoice_no": 0.95},
		PageCount:        3,
	})
	queue.msgs = nil

	second, err := svc.Ingest(context.Background(), Request{
		FileName: "invoice.pdf", Data: file, RuleID: "R_INV", RuleVersion: "1.0",
	})
	if err != nil {
		t.Fatalf("second Ingest: %v", err)
	}
	if !second.Instant || second.Status != constants.TaskCompleted {
		t.Fatalf("second = %+v, want instant completed", second)
	}
	task, _ := tasks.GetByID(context.Background(), second.TaskID)
	if task.ExtractedData["invoice_no"] != "INV-1" || task.PageCount != 3 {
		t.Errorf("cloned task = %+v, want prior extracted data", task)
	}
	if len(queue.msgs) != 1 || queue.msgs[0].queue != constants.QueueDelivery {
		t.Errorf("instant hit should go straight to delivery, got %+v", queue.msgs)
	}
}

func TestIngestNoDedupAcrossRuleVersions(t *testing.T) {
	svc, _, prints, _ := newTestService()
	file := []byte("same bytes")

	_ = prints.Record(context.Background(), &entity.FingerprintRecord{
		Fingerprint:   fingerprint.Compute(file, "R_INV", "1.0"),
		ExtractedData: map[string]any{"invoice_no": "INV-1"},
	})

	res, err := svc.Ingest(context.Background(), Request{
		FileName: "invoice.pdf", Data: file, RuleID: "R_INV", RuleVersion: "2.0",
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.Instant {
		t.Error("a different rule version must never produce a dedup hit")
	}
}

func TestIngestRejectsBadInput(t *testing.T) {
	svc, _, _, queue := newTestService()

	cases := []Request{
		{FileName: "invoice.pdf", Data: nil, RuleID: "R_INV"},
		{FileName: "notes.docx", Data: []byte("x"), RuleID: "R_INV"},
		{FileName: "invoice.pdf", Data: []byte("x"), RuleID: "R_MISSING"},
		{FileName: "invoice.pdf", Data: make([]byte, constants.MaxUploadBytes+1), RuleID: "R_INV"},
	}
	for i, req := range cases {
		if _, err := svc.Ingest(context.Background(), req); err == nil {
			t.Errorf("case %d: expected rejection", i)
		} else if !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("case %d: err = %v, want ErrInvalidInput", i, err)
		}
	}
	if len(queue.msgs) != 0 {
		t.Errorf("rejected input must never be enqueued: %+v", queue.msgs)
	}
}
