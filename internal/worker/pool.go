package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

// Handler processes one claimed message. Returning nil acknowledges it;
// returning an error releases it for redelivery.
type Handler func(ctx context.Context, msg *entity.QueueMessage) error

// Pool polls one durable queue with a fixed number of workers. Pools in
// separate processes share the same queue safely; claiming is a conditional
// update, so horizontal scaling is just running more of these.
type Pool struct {
	queue      repository.QueueRepository
	name       string
	handler    Handler
	logger     *slog.Logger
	workers    int
	poll       time.Duration
	lease      time.Duration
	timeout    time.Duration
	retryDelay time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

type Option func(*Pool)

func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.poll = d
		}
	}
}

func WithLease(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.lease = d
		}
	}
}

func WithHandleTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(p *Pool) {
		if d >= 0 {
			p.retryDelay = d
		}
	}
}

func NewPool(queue repository.QueueRepository, name string, handler Handler, logger *slog.Logger, opts ...Option) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		queue:      queue,
		name:       name,
		handler:    handler,
		logger:     logger,
		workers:    4,
		poll:       time.Second,
		lease:      2 * time.Minute,
		timeout:    3 * time.Minute,
		retryDelay: 5 * time.Second,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Start launches the workers. It returns immediately; Shutdown stops them.
func (p *Pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil || p.closed {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func(workerID int) {
			defer p.wg.Done()
			p.logger.Info("worker started", "queue", p.name, "worker_id", workerID)
			p.run(ctx, workerID)
			p.logger.Info("worker stopped", "queue", p.name, "worker_id", workerID)
		}(i + 1)
	}
}

func (p *Pool) run(ctx context.Context, workerID int) {
	for {
		if ctx.Err() != nil {
			return
		}

		msg, err := p.queue.Claim(ctx, p.name, p.lease)
		if err != nil {
			if !errors.Is(err, repository.ErrEmpty) && ctx.Err() == nil {
				p.logger.Error("claim failed", "queue", p.name, "worker_id", workerID, "error", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.poll):
			}
			continue
		}

		hctx, cancel := context.WithTimeout(ctx, p.timeout)
		err = p.handler(hctx, msg)
		cancel()

		if err != nil {
			p.logger.Error("handler failed, releasing for redelivery",
				"queue", p.name, "worker_id", workerID, "msg_id", msg.ID.String(),
				"attempts", msg.Attempts, "error", err)
			if rerr := p.queue.Release(context.Background(), msg.ID, p.retryDelay); rerr != nil {
				// The lease expiry redelivers it anyway.
				p.logger.Warn("release failed", "msg_id", msg.ID.String(), "error", rerr)
			}
			continue
		}
		if aerr := p.queue.Ack(context.Background(), msg.ID); aerr != nil {
			p.logger.Error("ack failed", "msg_id", msg.ID.String(), "error", aerr)
		}
	}
}

// Shutdown stops polling and waits for in-flight handlers, bounded by ctx.
func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	cancel := p.cancel
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() { defer close(done); p.wg.Wait() }()

	select {
	case <-ctx.Done():
		p.logger.Warn("shutdown interrupted by context", "queue", p.name)
	case <-done:
		p.logger.Info("pool drained, shutdown complete", "queue", p.name)
	}
}
