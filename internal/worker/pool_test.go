package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

// memQueue is a minimal in-memory queue with claim leasing.
type memQueue struct {
	mu   sync.Mutex
	msgs map[uuid.UUID]*entity.QueueMessage
	acks int
}

func newMemQueue() *memQueue {
	return &memQueue{msgs: map[uuid.UUID]*entity.QueueMessage{}}
}

func (q *memQueue) Enqueue(_ context.Context, queue string, payload any, delay time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	id := uuid.New()
	q.msgs[id] = &entity.QueueMessage{
		ID:        id,
		Queue:     queue,
		Payload:   []byte(`{}`),
		VisibleAt: time.Now().Add(delay),
	}
	return nil
}

func (q *memQueue) Claim(_ context.Context, queue string, lease time.Duration) (*entity.QueueMessage, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := time.Now()
	for _, m := range q.msgs {
		if m.Queue == queue && !m.VisibleAt.After(now) {
			m.VisibleAt = now.Add(lease)
			m.Attempts++
			cp := *m
			return &cp, nil
		}
	}
	return nil, repository.ErrEmpty
}

func (q *memQueue) Ack(_ context.Context, id uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.msgs, id)
	q.acks++
	return nil
}

func (q *memQueue) Release(_ context.Context, id uuid.UUID, delay time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if m, ok := q.msgs[id]; ok {
		m.VisibleAt = time.Now().Add(delay)
	}
	return nil
}

func (q *memQueue) remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.msgs)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestPoolProcessesAndAcks(t *testing.T) {
	q := newMemQueue()
	for i := 0; i < 5; i++ {
		_ = q.Enqueue(context.Background(), "work", nil, 0)
	}

	var mu sync.Mutex
	handled := 0
	pool := NewPool(q, "work", func(context.Context, *entity.QueueMessage) error {
		mu.Lock()
		handled++
		mu.Unlock()
		return nil
	}, nil, WithWorkers(3), WithPollInterval(5*time.Millisecond))

	pool.Start()
	defer pool.Shutdown(context.Background())

	waitFor(t, func() bool { return q.remaining() == 0 })
	mu.Lock()
	defer mu.Unlock()
	if handled != 5 {
		t.Errorf("handled %d messages, want 5", handled)
	}
}

func TestPoolReleasesOnHandlerError(t *testing.T) {
	q := newMemQueue()
	_ = q.Enqueue(context.Background(), "work", nil, 0)

	var mu sync.Mutex
	attempts := 0
	pool := NewPool(q, "work", func(_ context.Context, msg *entity.QueueMessage) error {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		if n < 3 {
			return errors.New("transient")
		}
		return nil
	}, nil, WithWorkers(1), WithPollInterval(5*time.Millisecond), WithRetryDelay(0))

	pool.Start()
	defer pool.Shutdown(context.Background())

	waitFor(t, func() bool { return q.remaining() == 0 })
	mu.Lock()
	defer mu.Unlock()
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3 (redelivered twice)", attempts)
	}
}

func TestPoolShutdownStopsWorkers(t *testing.T) {
	q := newMemQueue()
	pool := NewPool(q, "work", func(context.Context, *entity.QueueMessage) error {
		return nil
	}, nil, WithWorkers(2), WithPollInterval(5*time.Millisecond))

	pool.Start()

	done := make(chan struct{})
	go func() {
		pool.Shutdown(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not complete")
	}

	// A message enqueued after shutdown must stay unclaimed.
	_ = q.Enqueue(context.Background(), "work", nil, 0)
	time.Sleep(50 * time.Millisecond)
	if q.remaining() != 1 {
		t.Error("workers kept running after shutdown")
	}
}
