package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

type fakeTasks struct{ rows []*entity.Task }

func (f *fakeTasks) Create(context.Context, *entity.Task) error { return nil }

func (f *fakeTasks) GetByID(context.Context, string) (*entity.Task, error) { return nil, nil }

func (f *fakeTasks) List(_ context.Context, filter repository.TaskFilter) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range f.rows {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTasks) Transition(context.Context, string, constants.TaskStatus, constants.TaskStatus, *repository.TransitionUpdate) error {
	return nil
}

func (f *fakeTasks) DeleteQueued(context.Context, string) error { return nil }

type fakeAttempts struct{ rows []*entity.PushAttempt }

func (f *fakeAttempts) Append(context.Context, *entity.PushAttempt) error { return nil }

func (f *fakeAttempts) ListByTask(_ context.Context, taskID string) ([]*entity.PushAttempt, error) {
	var out []*entity.PushAttempt
	for _, a := range f.rows {
		if a.TaskID == taskID {
			out = append(out, a)
		}
	}
	return out, nil
}

func sampleTasks() *fakeTasks {
	done := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &fakeTasks{rows: []*entity.Task{
		{
			ID:            "T1",
			Status:        constants.TaskPushSuccess,
			RuleID:        "R_INV",
			RuleVersion:   "2.1",
			PageCount:     3,
			ExtractedData: map[string]any{"invoice_no": "INV-1"},
			CreatedAt:     done.Add(-time.Hour),
			CompletedAt:   &done,
		},
		{
			ID:          "T2",
			Status:      constants.TaskPendingAudit,
			RuleID:      "R_INV",
			RuleVersion: "2.1",
			AuditReasons: []entity.AuditReason{
				{Field: "total", Kind: constants.ReasonConfidenceLow, Message: "0.41 below 0.80"},
			},
			CreatedAt: done,
		},
	}}
}

func TestExportTasksCSV(t *testing.T) {
	svc := NewService(sampleTasks(), &fakeAttempts{}, nil)

	out, err := svc.ExportTasksCSV(context.Background(), repository.TaskFilter{})
	if err != nil {
		t.Fatalf("ExportTasksCSV: %v", err)
	}
	recs, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(recs) != 3 { // header + 2 tasks
		t.Fatalf("got %d rows, want 3", len(recs))
	}
	if recs[1][0] != "T1" || recs[1][1] != "push_success" {
		t.Errorf("row 1 = %v", recs[1])
	}
	if recs[2][7] == "" {
		t.Errorf("audited task should carry its reasons, row = %v", recs[2])
	}
}

func TestExportTasksCSVHonorsStatusFilter(t *testing.T) {
	svc := NewService(sampleTasks(), &fakeAttempts{}, nil)

	out, err := svc.ExportTasksCSV(context.Background(), repository.TaskFilter{Status: constants.TaskPendingAudit})
	if err != nil {
		t.Fatalf("ExportTasksCSV: %v", err)
	}
	recs, _ := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if len(recs) != 2 || recs[1][0] != "T2" {
		t.Errorf("filtered rows = %v", recs)
	}
}

func TestExportTasksXLSX(t *testing.T) {
	svc := NewService(sampleTasks(), &fakeAttempts{}, nil)

	out, err := svc.ExportTasksXLSX(context.Background(), repository.TaskFilter{})
	if err != nil {
		t.Fatalf("ExportTasksXLSX: %v", err)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()
	rows, err := wb.GetRows("Tasks")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d sheet rows, want 3", len(rows))
	}
	if rows[0][0] != "Task ID" || rows[1][0] != "T1" {
		t.Errorf("sheet rows = %v", rows[:2])
	}
}

func TestExportAttemptsCSV(t *testing.T) {
	recv := uuid.New()
	attempts := &fakeAttempts{rows: []*entity.PushAttempt{
		{ID: uuid.New(), TaskID: "T1", ReceiverID: recv, Attempt: 0, HTTPStatus: 500,
			Outcome: constants.OutcomeServerError, CreatedAt: time.Now()},
		{ID: uuid.New(), TaskID: "T1", ReceiverID: recv, Attempt: 1, HTTPStatus: 200,
			Outcome: constants.OutcomeSuccess, CreatedAt: time.Now()},
	}}
	svc := NewService(sampleTasks(), attempts, nil)

	out, err := svc.ExportAttemptsCSV(context.Background(), "T1")
	if err != nil {
		t.Fatalf("ExportAttemptsCSV: %v", err)
	}
	recs, _ := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if len(recs) != 3 {
		t.Fatalf("got %d rows, want 3", len(recs))
	}
	if recs[1][3] != "server_error" || recs[2][3] != "success" {
		t.Errorf("outcome columns = %v %v", recs[1], recs[2])
	}
}
