package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/gen/ent"
	enttask "github.com/docflowhq/docflow/gen/ent/task"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
)

// TransitionUpdate carries the optional field writes applied atomically with a
// status transition.
type TransitionUpdate struct {
	ExtractedData        map[string]any
	ConfidenceScores     map[string]float32
	AuditReasons         []entity.AuditReason
	PageCount            *int
	CompletedAt          *time.Time
	IncrementRecognition bool
	IncrementDelivery    bool
}

// TaskFilter narrows List results.
type TaskFilter struct {
	Status constants.TaskStatus
	RuleID string
	Limit  int
}

type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	List(ctx context.Context, f TaskFilter) ([]*entity.Task, error)
	// Transition performs the single conditional update guarding all status
	// changes: WHERE id = ? AND status = from. A zero-row match returns
	// common.ErrConflict and writes nothing.
	Transition(ctx context.Context, id string, from, to constants.TaskStatus, upd *TransitionUpdate) error
	// DeleteQueued removes a task only while it is still queued (cancellation
	// before any worker claims it). Returns common.ErrConflict otherwise.
	DeleteQueued(ctx context.Context, id string) error
}

type taskRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTaskRepository(entc *ent.Client, log *slog.Logger) TaskRepository {
	return &taskRepo{ent: entc, log: log}
}

func (r *taskRepo) Create(ctx context.Context, t *entity.Task) error {
	data, _ := json.Marshal(t.ExtractedData)
	scores, _ := json.Marshal(t.ConfidenceScores)
	reasons, _ := json.Marshal(t.AuditReasons)

	_, err := r.ent.Task.
		Create().
		SetID(t.ID).
		SetFingerprint(t.Fingerprint).
		SetStatus(string(t.Status)).
		SetRuleID(t.RuleID).
		SetRuleVersion(t.RuleVersion).
		SetPageCount(t.PageCount).
		SetFormat(t.Format).
		SetBlobKey(t.BlobKey).
		SetInstant(t.Instant).
		SetExtractedData(data).
		SetConfidenceScores(scores).
		SetAuditReasons(reasons).
		SetRecognitionAttempts(t.Attempts.Recognition).
		SetDeliveryAttempts(t.Attempts.Delivery).
		SetCreatedAt(t.CreatedAt).
		SetNillableCompletedAt(t.CompletedAt).
		Save(ctx)
	if err != nil {
		r.log.Error("task create failed", "task_id", t.ID, "err", err)
		return err
	}
	r.log.Info("task created", "task_id", t.ID, "status", t.Status, "rule_id", t.RuleID, "instant", t.Instant)
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	row, err := r.ent.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return taskFromRow(row), nil
}

func (r *taskRepo) List(ctx context.Context, f TaskFilter) ([]*entity.Task, error) {
	q := r.ent.Task.Query()
	if f.Status != "" {
		q = q.Where(enttask.StatusEQ(string(f.Status)))
	}
	if f.RuleID != "" {
		q = q.Where(enttask.RuleIDEQ(f.RuleID))
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := q.Order(ent.Desc(enttask.FieldCreatedAt)).Limit(limit).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, taskFromRow(row))
	}
	return out, nil
}

func (r *taskRepo) Transition(ctx context.Context, id string, from, to constants.TaskStatus, upd *TransitionUpdate) error {
	u := r.ent.Task.
		Update().
		Where(enttask.IDEQ(id), enttask.StatusEQ(string(from))).
		SetStatus(string(to))

	if upd != nil {
		if upd.ExtractedData != nil {
			b, _ := json.Marshal(upd.ExtractedData)
			u = u.SetExtractedData(b)
		}
		if upd.ConfidenceScores != nil {
			b, _ := json.Marshal(upd.ConfidenceScores)
			u = u.SetConfidenceScores(b)
		}
		if upd.AuditReasons != nil {
			b, _ := json.Marshal(upd.AuditReasons)
			u = u.SetAuditReasons(b)
		}
		if upd.PageCount != nil {
			u = u.SetPageCount(*upd.PageCount)
		}
		if upd.CompletedAt != nil {
			u = u.SetCompletedAt(*upd.CompletedAt)
		}
		if upd.IncrementRecognition {
			u = u.AddRecognitionAttempts(1)
		}
		if upd.IncrementDelivery {
			u = u.AddDeliveryAttempts(1)
		}
	}

	n, err := u.Save(ctx)
	if err != nil {
		r.log.Error("task transition failed", "task_id", id, "from", from, "to", to, "err", err)
		return err
	}
	if n == 0 {
		r.log.Warn("task transition conflict", "task_id", id, "expected", from, "to", to)
		return common.ErrConflict
	}
	r.log.Info("task transitioned", "task_id", id, "from", from, "to", to)
	return nil
}

func (r *taskRepo) DeleteQueued(ctx context.Context, id string) error {
	n, err := r.ent.Task.
		Delete().
		Where(enttask.IDEQ(id), enttask.StatusEQ(string(constants.TaskQueued))).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrConflict
	}
	r.log.Info("queued task cancelled", "task_id", id)
	return nil
}

func taskFromRow(row *ent.Task) *entity.Task {
	t := &entity.Task{
		ID:          row.ID,
		Fingerprint: row.Fingerprint,
		Status:      constants.TaskStatus(row.Status),
		RuleID:      row.RuleID,
		RuleVersion: row.RuleVersion,
		PageCount:   row.PageCount,
		Format:      row.Format,
		BlobKey:     row.BlobKey,
		Instant:     row.Instant,
		Attempts: entity.AttemptCounters{
			Recognition: row.RecognitionAttempts,
			Delivery:    row.DeliveryAttempts,
		},
		CreatedAt:   row.CreatedAt,
		CompletedAt: row.CompletedAt,
	}
	if len(row.ExtractedData) > 0 {
		_ = json.Unmarshal(row.ExtractedData, &t.ExtractedData)
	}
	if len(row.ConfidenceScores) > 0 {
		_ = json.Unmarshal(row.ConfidenceScores, &t.ConfidenceScores)
	}
	if len(row.AuditReasons) > 0 {
		_ = json.Unmarshal(row.AuditReasons, &t.AuditReasons)
	}
	return t
}
