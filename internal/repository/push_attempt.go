package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/gen/ent"
	entpush "github.com/docflowhq/docflow/gen/ent/pushattempt"
	"github.com/docflowhq/docflow/internal/entity"
)

// PushAttemptRepository is the append-only delivery log. Receiver-level
// delivery state (succeeded, dead-lettered, still pending) is derived from
// this log rather than stored mutable state.
type PushAttemptRepository interface {
	Append(ctx context.Context, a *entity.PushAttempt) error
	ListByTask(ctx context.Context, taskID string) ([]*entity.PushAttempt, error)
}

type pushAttemptRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewPushAttemptRepository(entc *ent.Client, log *slog.Logger) PushAttemptRepository {
	return &pushAttemptRepo{ent: entc, log: log}
}

func (r *pushAttemptRepo) Append(ctx context.Context, a *entity.PushAttempt) error {
	_, err := r.ent.PushAttempt.
		Create().
		SetTaskID(a.TaskID).
		SetReceiverID(a.ReceiverID).
		SetCycle(a.Cycle).
		SetAttempt(a.Attempt).
		SetHTTPStatus(a.HTTPStatus).
		SetOutcome(string(a.Outcome)).
		SetDurationMs(a.DurationMS).
		SetError(a.Error).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.log.Error("push attempt append failed", "task_id", a.TaskID, "receiver_id", a.ReceiverID, "err", err)
		return err
	}
	r.log.Info("push attempt recorded",
		"task_id", a.TaskID,
		"receiver_id", a.ReceiverID,
		"attempt", a.Attempt,
		"outcome", a.Outcome,
		"http_status", a.HTTPStatus,
		"duration_ms", a.DurationMS,
	)
	return nil
}

func (r *pushAttemptRepo) ListByTask(ctx context.Context, taskID string) ([]*entity.PushAttempt, error) {
	rows, err := r.ent.PushAttempt.
		Query().
		Where(entpush.TaskIDEQ(taskID)).
		Order(ent.Asc(entpush.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.PushAttempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.PushAttempt{
			ID:         row.ID,
			TaskID:     row.TaskID,
			ReceiverID: row.ReceiverID,
			Cycle:      row.Cycle,
			Attempt:    row.Attempt,
			HTTPStatus: row.HTTPStatus,
			Outcome:    constants.Outcome(row.Outcome),
			DurationMS: row.DurationMs,
			Error:      row.Error,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out, nil
}
