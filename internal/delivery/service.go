package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

// Message is the delivery queue payload. An empty ReceiverID is the kickoff
// message fanning a completed task out to its active receivers; a set
// ReceiverID is one attempt for that receiver, with Attempt as retry ordinal.
type Message struct {
	TaskID     string `json:"task_id"`
	ReceiverID string `json:"receiver_id,omitempty"`
	Cycle      int    `json:"cycle"`
	Attempt    int    `json:"attempt"`
}

// Presigner mints a time-limited download URL for the task's source file.
type Presigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Service owns the per-receiver delivery lifecycle. Each receiver is fully
// independent: one receiver dead-lettering never blocks or rolls back
// another's success.
type Service struct {
	tasks       repository.TaskRepository
	receivers   repository.ReceiverRepository
	attempts    repository.PushAttemptRepository
	queue       repository.QueueRepository
	sender      *Sender
	blob        Presigner
	urlTTL      time.Duration
	maxAttempts int
	logger      *slog.Logger
}

func NewService(
	tasks repository.TaskRepository,
	receivers repository.ReceiverRepository,
	attempts repository.PushAttemptRepository,
	queue repository.QueueRepository,
	sender *Sender,
	blob Presigner,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		tasks:       tasks,
		receivers:   receivers,
		attempts:    attempts,
		queue:       queue,
		sender:      sender,
		blob:        blob,
		urlTTL:      15 * time.Minute,
		maxAttempts: MaxAttempts,
		logger:      logger,
	}
}

// EnqueueKickoff schedules delivery for a task that just reached completed.
func (s *Service) EnqueueKickoff(ctx context.Context, taskID string) error {
	return s.queue.Enqueue(ctx, constants.QueueDelivery, Message{TaskID: taskID}, 0)
}

// RetryDelivery re-invokes delivery for a push_failed task. The cycle bump
// makes prior dead letters non-binding, so only receivers without a success
// are re-driven. Returns common.ErrConflict if the task is not push_failed.
func (s *Service) RetryDelivery(ctx context.Context, taskID string) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	// Stale delivery_failed reasons would mislead once the retry settles.
	reasons := make([]entity.AuditReason, 0, len(task.AuditReasons))
	for _, r := range task.AuditReasons {
		if r.Kind != constants.ReasonDeliveryFailed {
			reasons = append(reasons, r)
		}
	}
	err = s.tasks.Transition(ctx, taskID, constants.TaskPushFailed, constants.TaskPushing,
		&repository.TransitionUpdate{IncrementDelivery: true, AuditReasons: reasons})
	if err != nil {
		return err
	}
	s.logger.Info("delivery retry requested", "task_id", taskID, "cycle", task.Attempts.Delivery+1)
	return s.EnqueueKickoff(ctx, taskID)
}

// Handle processes one delivery queue message. Returning nil means the
// message can be acknowledged; any error releases it for redelivery.
func (s *Service) Handle(ctx context.Context, msg Message) error {
	if msg.ReceiverID == "" {
		return s.kickoff(ctx, msg.TaskID)
	}
	return s.attempt(ctx, msg)
}

// kickoff moves completed -> pushing and fans out one message per active
// receiver. A kickoff redelivered after a crash finds the task already in
// pushing and resumes the fan-out; any other state is a conflict to discard.
func (s *Service) kickoff(ctx context.Context, taskID string) error {
	if err := s.tasks.Transition(ctx, taskID, constants.TaskCompleted, constants.TaskPushing, nil); err != nil {
		if !errors.Is(err, common.ErrConflict) {
			return err
		}
		task, gerr := s.tasks.GetByID(ctx, taskID)
		if gerr != nil {
			return gerr
		}
		if task.Status != constants.TaskPushing {
			s.logger.Warn("delivery kickoff discarded", "task_id", taskID, "status", string(task.Status))
			return nil
		}
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	active, err := s.receivers.ActiveForRule(ctx, task.RuleID)
	if err != nil {
		return err
	}
	if len(active) == 0 {
		s.logger.Info("no active receivers, delivery trivially complete", "task_id", taskID)
		return s.finalize(ctx, task, nil)
	}

	history, err := s.attempts.ListByTask(ctx, taskID)
	if err != nil {
		return err
	}
	cycle := task.Attempts.Delivery
	fanned := 0
	for _, r := range active {
		// A receiver that already succeeded in an earlier cycle keeps its
		// result; an operator retry only re-drives the failed ones.
		if receiverState(history, r.ID, cycle) == constants.OutcomeSuccess {
			continue
		}
		m := Message{TaskID: taskID, ReceiverID: r.ID.String(), Cycle: cycle}
		if err := s.queue.Enqueue(ctx, constants.QueueDelivery, m, 0); err != nil {
			return fmt.Errorf("enqueue receiver %s: %w", r.ID, err)
		}
		fanned++
	}
	if fanned == 0 {
		return s.finalize(ctx, task, nil)
	}
	return nil
}

func (s *Service) attempt(ctx context.Context, msg Message) error {
	task, err := s.tasks.GetByID(ctx, msg.TaskID)
	if err != nil {
		return err
	}
	switch task.Status {
	case constants.TaskPushing:
	case constants.TaskPushSuccess, constants.TaskPushFailed:
		// Redelivered message for a finished task: idempotent no-op.
		s.logger.Info("delivery message for settled task discarded",
			"task_id", msg.TaskID, "status", string(task.Status))
		return nil
	default:
		s.logger.Warn("delivery message in unexpected state discarded",
			"task_id", msg.TaskID, "status", string(task.Status))
		return nil
	}

	receiverID, err := uuid.Parse(msg.ReceiverID)
	if err != nil {
		s.logger.Error("malformed receiver id in delivery message", "task_id", msg.TaskID, "receiver_id", msg.ReceiverID)
		return nil
	}
	if msg.Cycle != task.Attempts.Delivery {
		// Leftover from before an operator retry bumped the cycle.
		s.logger.Info("stale delivery cycle discarded",
			"task_id", msg.TaskID, "msg_cycle", msg.Cycle, "cycle", task.Attempts.Delivery)
		return nil
	}

	receiver, err := s.receivers.GetByID(ctx, receiverID)
	if err != nil {
		return err
	}

	history, err := s.attempts.ListByTask(ctx, msg.TaskID)
	if err != nil {
		return err
	}
	if settled(history, receiverID, msg.Cycle) {
		s.logger.Info("receiver already settled, duplicate attempt discarded",
			"task_id", msg.TaskID, "receiver_id", msg.ReceiverID)
		return s.finalize(ctx, task, nil)
	}

	var fileURL string
	if s.blob != nil && task.BlobKey != "" {
		fileURL, err = s.blob.PresignGet(ctx, task.BlobKey, s.urlTTL)
		if err != nil {
			s.logger.Warn("presign failed, delivering without file url", "task_id", msg.TaskID, "error", err)
		}
	}

	rec := s.sender.Send(ctx, task, receiver, fileURL, msg.Attempt)
	rec.Cycle = msg.Cycle
	if err := s.attempts.Append(ctx, &rec); err != nil {
		return err
	}

	if rec.Outcome == constants.OutcomeSuccess {
		return s.finalize(ctx, task, nil)
	}

	if Retryable(rec.Outcome) && msg.Attempt+1 < s.maxAttempts {
		next := Message{TaskID: msg.TaskID, ReceiverID: msg.ReceiverID, Cycle: msg.Cycle, Attempt: msg.Attempt + 1}
		return s.queue.Enqueue(ctx, constants.QueueDelivery, next, Delay(msg.Attempt))
	}

	// Terminal outcome or retries exhausted: dead-letter this receiver. The
	// marker row keeps the last failure reason queryable per receiver.
	dead := entity.PushAttempt{
		ID:         uuid.New(),
		TaskID:     msg.TaskID,
		ReceiverID: receiverID,
		Cycle:      msg.Cycle,
		Attempt:    msg.Attempt,
		HTTPStatus: rec.HTTPStatus,
		Outcome:    constants.OutcomeDeadLetter,
		Error:      lastError(rec),
		CreatedAt:  time.Now(),
	}
	if err := s.attempts.Append(ctx, &dead); err != nil {
		return err
	}
	s.logger.Error("receiver dead-lettered",
		"task_id", msg.TaskID,
		"receiver_id", msg.ReceiverID,
		"attempts", msg.Attempt+1,
		"last_outcome", string(rec.Outcome),
	)
	return s.finalize(ctx, task, &dead)
}

// finalize settles the task once every active receiver has either succeeded
// or dead-lettered. A mixed result is surfaced as push_failed with per
// receiver reasons, never summarized as success.
func (s *Service) finalize(ctx context.Context, task *entity.Task, lastDead *entity.PushAttempt) error {
	active, err := s.receivers.ActiveForRule(ctx, task.RuleID)
	if err != nil {
		return err
	}
	history, err := s.attempts.ListByTask(ctx, task.ID)
	if err != nil {
		return err
	}

	var failed []*entity.Receiver
	for _, r := range active {
		switch receiverState(history, r.ID, task.Attempts.Delivery) {
		case constants.OutcomeSuccess:
		case constants.OutcomeDeadLetter:
			failed = append(failed, r)
		default:
			return nil // still in flight, a later message finalizes
		}
	}

	if len(failed) == 0 {
		err := s.tasks.Transition(ctx, task.ID, constants.TaskPushing, constants.TaskPushSuccess, nil)
		if errors.Is(err, common.ErrConflict) {
			return nil // a concurrent worker finalized first
		}
		return err
	}

	reasons := task.AuditReasons
	for _, r := range failed {
		msg := fmt.Sprintf("receiver %s dead-lettered", r.Name)
		if lastDead != nil && lastDead.ReceiverID == r.ID && lastDead.Error != "" {
			msg = fmt.Sprintf("receiver %s dead-lettered: %s", r.Name, lastDead.Error)
		}
		reasons = append(reasons, entity.AuditReason{
			Kind:    constants.ReasonDeliveryFailed,
			Message: msg,
		})
	}
	err = s.tasks.Transition(ctx, task.ID, constants.TaskPushing, constants.TaskPushFailed,
		&repository.TransitionUpdate{AuditReasons: reasons})
	if errors.Is(err, common.ErrConflict) {
		return nil
	}
	return err
}

func settled(history []*entity.PushAttempt, receiverID uuid.UUID, cycle int) bool {
	st := receiverState(history, receiverID, cycle)
	return st == constants.OutcomeSuccess || st == constants.OutcomeDeadLetter
}

// receiverState reduces the append-only attempt log to one receiver's state.
// Success is absorbing across all delivery cycles; a dead letter only binds
// within its own cycle, so an operator retry gets a fresh run at the
// receivers that failed.
func receiverState(history []*entity.PushAttempt, receiverID uuid.UUID, cycle int) constants.Outcome {
	var last constants.Outcome
	for _, a := range history {
		if a.ReceiverID != receiverID {
			continue
		}
		if a.Outcome == constants.OutcomeSuccess {
			return constants.OutcomeSuccess
		}
		if a.Cycle != cycle {
			continue
		}
		if a.Outcome == constants.OutcomeDeadLetter {
			return constants.OutcomeDeadLetter
		}
		last = a.Outcome
	}
	return last
}

func lastError(rec entity.PushAttempt) string {
	if rec.Error != "" {
		return rec.Error
	}
	return fmt.Sprintf("http status %d", rec.HTTPStatus)
}
