package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/gen/ent"
	entmsg "github.com/docflowhq/docflow/gen/ent/queuemessage"
	"github.com/docflowhq/docflow/internal/entity"
)

// ErrEmpty is returned by Claim when no message is currently visible.
var ErrEmpty = errors.New("queue empty")

// QueueRepository is the durable work queue. Semantics are at-least-once:
// a claim makes the message invisible for the lease duration, and an
// unacknowledged message reappears when the lease expires. Delayed retries
// are plain enqueues with a future visibility time; no worker ever sleeps
// through a backoff.
type QueueRepository interface {
	Enqueue(ctx context.Context, queue string, payload any, delay time.Duration) error
	Claim(ctx context.Context, queue string, lease time.Duration) (*entity.QueueMessage, error)
	Ack(ctx context.Context, id uuid.UUID) error
	// Release makes a claimed message visible again after delay (redelivery
	// after a handler error).
	Release(ctx context.Context, id uuid.UUID, delay time.Duration) error
}

type queueRepo struct {
	ent *ent.Client
	log *slog.Logger
	now func() time.Time
}

func NewQueueRepository(entc *ent.Client, log *slog.Logger) QueueRepository {
	return &queueRepo{ent: entc, log: log, now: time.Now}
}

func (r *queueRepo) Enqueue(ctx context.Context, queue string, payload any, delay time.Duration) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	now := r.now().UTC()
	_, err = r.ent.QueueMessage.
		Create().
		SetQueue(queue).
		SetPayload(body).
		SetVisibleAt(now.Add(delay)).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		r.log.Error("enqueue failed", "queue", queue, "err", err)
		return err
	}
	r.log.Debug("message enqueued", "queue", queue, "delay", delay.String())
	return nil
}

func (r *queueRepo) Claim(ctx context.Context, queue string, lease time.Duration) (*entity.QueueMessage, error) {
	now := r.now().UTC()

	// Pick the oldest visible candidate, then claim it with a conditional
	// update on visible_at. A lost race (another worker claimed first) just
	// means trying the next candidate.
	for i := 0; i < 3; i++ {
		row, err := r.ent.QueueMessage.
			Query().
			Where(entmsg.QueueEQ(queue), entmsg.VisibleAtLTE(now)).
			Order(ent.Asc(entmsg.FieldVisibleAt)).
			Offset(i).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrEmpty
			}
			return nil, err
		}

		n, err := r.ent.QueueMessage.
			Update().
			Where(entmsg.IDEQ(row.ID), entmsg.VisibleAtEQ(row.VisibleAt)).
			SetVisibleAt(now.Add(lease)).
			AddAttempts(1).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			continue // raced; try next candidate
		}
		return &entity.QueueMessage{
			ID:        row.ID,
			Queue:     row.Queue,
			Payload:   row.Payload,
			VisibleAt: now.Add(lease),
			Attempts:  row.Attempts + 1,
			CreatedAt: row.CreatedAt,
		}, nil
	}
	return nil, ErrEmpty
}

func (r *queueRepo) Ack(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.QueueMessage.Delete().Where(entmsg.IDEQ(id)).Exec(ctx)
	return err
}

func (r *queueRepo) Release(ctx context.Context, id uuid.UUID, delay time.Duration) error {
	_, err := r.ent.QueueMessage.
		Update().
		Where(entmsg.IDEQ(id)).
		SetVisibleAt(r.now().UTC().Add(delay)).
		Save(ctx)
	return err
}
