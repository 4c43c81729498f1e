package delivery

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/internal/entity"
)

// Sender performs one signed delivery attempt and classifies its outcome. It
// never retries on its own; scheduling lives with the queue.
type Sender struct {
	client  *http.Client
	timeout time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

type SenderOption func(*Sender)

func WithHTTPClient(c *http.Client) SenderOption {
	return func(s *Sender) { s.client = c }
}

func WithSendTimeout(d time.Duration) SenderOption {
	return func(s *Sender) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func NewSender(logger *slog.Logger, opts ...SenderOption) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Sender{
		client:  &http.Client{},
		timeout: 15 * time.Second,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send renders, signs and posts one attempt for a (task, receiver) pair. The
// returned PushAttempt is not yet persisted.
func (s *Sender) Send(ctx context.Context, task *entity.Task, r *entity.Receiver, fileURL string, attempt int) entity.PushAttempt {
	body := []byte(Render(r.BodyTemplate, BuildVars(task, fileURL)))
	ts := s.now()

	rec := entity.PushAttempt{
		ID:         uuid.New(),
		TaskID:     task.ID,
		ReceiverID: r.ID,
		Attempt:    attempt,
		CreatedAt:  ts,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		rec.Outcome = Classify(0, err)
		rec.Error = err.Error()
		return rec
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSignature, Sign(body, r.SigningSecret, ts))
	req.Header.Set(HeaderTimestamp, ts.UTC().Format(time.RFC3339))
	if err := ApplyAuth(req, r, ts); err != nil {
		rec.Outcome = Classify(0, err)
		rec.Error = err.Error()
		return rec
	}

	start := s.now()
	resp, err := s.client.Do(req)
	rec.DurationMS = s.now().Sub(start).Milliseconds()
	if err != nil {
		rec.Outcome = Classify(0, err)
		rec.Error = err.Error()
	} else {
		resp.Body.Close()
		rec.HTTPStatus = resp.StatusCode
		rec.Outcome = Classify(resp.StatusCode, nil)
	}

	s.logger.Info("delivery attempt",
		"task_id", task.ID,
		"receiver_id", r.ID.String(),
		"attempt", attempt,
		"status", rec.HTTPStatus,
		"outcome", string(rec.Outcome),
		"duration_ms", rec.DurationMS,
	)
	return rec
}
