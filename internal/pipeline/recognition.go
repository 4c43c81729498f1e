package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/blob"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/delivery"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/extract"
	"github.com/docflowhq/docflow/internal/gate"
	"github.com/docflowhq/docflow/internal/recognition"
	"github.com/docflowhq/docflow/internal/repository"
)

// Recognizer is the recognition-queue processor: it drives one task from
// queued through recognition, extraction and the quality gate to either
// completed or pending_audit.
type Recognizer struct {
	tasks  repository.TaskRepository
	rules  repository.RuleRepository
	pages  repository.PageResultRepository
	queue  repository.QueueRepository
	store  blob.Store
	orch   *recognition.Orchestrator
	router *extract.Router
	gate   *gate.Gate
	split  func(data []byte, format string) (map[int][]byte, error)
	now    func() time.Time
	logger *slog.Logger
}

func NewRecognizer(
	tasks repository.TaskRepository,
	rules repository.RuleRepository,
	pages repository.PageResultRepository,
	queue repository.QueueRepository,
	store blob.Store,
	orch *recognition.Orchestrator,
	router *extract.Router,
	g *gate.Gate,
	logger *slog.Logger,
) *Recognizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recognizer{
		tasks:  tasks,
		rules:  rules,
		pages:  pages,
		queue:  queue,
		store:  store,
		orch:   orch,
		router: router,
		gate:   g,
		split:  recognition.SplitDocument,
		now:    time.Now,
		logger: logger,
	}
}

// Handle processes one recognition message. The queued -> processing claim is
// the idempotency guard under at-least-once delivery: a duplicate message for
// a task already past processing conflicts and is discarded.
func (p *Recognizer) Handle(ctx context.Context, msg *entity.QueueMessage) error {
	var m RecognitionMessage
	if err := json.Unmarshal(msg.Payload, &m); err != nil {
		p.logger.Error("malformed recognition message discarded", "msg_id", msg.ID.String(), "error", err)
		return nil
	}

	err := p.tasks.Transition(ctx, m.TaskID, constants.TaskQueued, constants.TaskProcessing,
		&repository.TransitionUpdate{IncrementRecognition: true})
	if err != nil {
		if !errors.Is(err, common.ErrConflict) {
			return err
		}
		task, gerr := p.tasks.GetByID(ctx, m.TaskID)
		if gerr != nil {
			if errors.Is(gerr, common.ErrNotFound) {
				// Cancelled while queued; the row is gone.
				return nil
			}
			return gerr
		}
		// A task already in processing is a redelivery (worker crash or an
		// operator resubmit); anything else has moved on.
		if task.Status != constants.TaskProcessing {
			p.logger.Warn("recognition message discarded",
				"task_id", m.TaskID, "status", string(task.Status))
			return nil
		}
	}

	return p.process(ctx, m.TaskID)
}

func (p *Recognizer) process(ctx context.Context, taskID string) error {
	task, err := p.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	rule, err := p.rules.Get(ctx, task.RuleID, task.RuleVersion)
	if err != nil {
		return err
	}
	data, err := p.store.Get(ctx, task.BlobKey)
	if err != nil {
		return fmt.Errorf("fetch source file: %w", err)
	}

	pages, err := p.split(data, task.Format)
	if err != nil {
		// Not transient: the file itself is unreadable.
		return p.audit(ctx, taskID, 0, nil, nil, []entity.AuditReason{{
			Kind:    constants.ReasonPageFailed,
			Message: fmt.Sprintf("document could not be split into pages: %v", err),
		}})
	}

	pageCount := len(pages)
	targets := rule.TargetPages(pageCount)
	results, runErr := p.orch.Run(ctx, taskID, pages, targets, task.Format, rule.Language, rule.Engines)
	for i := range results {
		results[i].CreatedAt = p.now()
		if err := p.pages.Append(ctx, &results[i]); err != nil {
			return err
		}
	}
	if runErr != nil && !errors.Is(runErr, recognition.ErrTimeout) {
		return runErr
	}

	// Cooperative cancellation check between phases: stop cleanly if the
	// task was cancelled or advanced while recognition ran.
	cur, err := p.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}
	if cur.Status != constants.TaskProcessing {
		p.logger.Warn("task state changed mid-flight, aborting without writes",
			"task_id", taskID, "status", string(cur.Status))
		return nil
	}

	doc := recognition.Merge(results)

	var reasons []entity.AuditReason
	for _, pr := range doc.FailedPages() {
		reasons = append(reasons, entity.AuditReason{
			Kind:    constants.ReasonPageFailed,
			Message: pr.FailureReason,
			Page:    pr.PageNo,
		})
	}
	if errors.Is(runErr, recognition.ErrTimeout) {
		reasons = append(reasons, entity.AuditReason{
			Kind:    constants.ReasonTimeout,
			Message: fmt.Sprintf("recognition exceeded the task deadline with %d/%d pages done", len(results), len(targets)),
		})
	}

	fields := p.router.Run(ctx, doc, rule)
	verdict := p.gate.Run(rule, fields)
	reasons = append(reasons, verdict.Reasons...)

	if len(reasons) > 0 {
		return p.audit(ctx, taskID, pageCount, verdict.Data, verdict.Confidences, reasons)
	}
	return p.complete(ctx, taskID, pageCount, verdict.Data, verdict.Confidences)
}

func (p *Recognizer) complete(ctx context.Context, taskID string, pageCount int, data map[string]any, scores map[string]float32) error {
	now := p.now()
	err := p.tasks.Transition(ctx, taskID, constants.TaskProcessing, constants.TaskCompleted,
		&repository.TransitionUpdate{
			ExtractedData:    data,
			ConfidenceScores: scores,
			PageCount:        &pageCount,
			CompletedAt:      &now,
		})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil
		}
		return err
	}
	p.logger.Info("task completed straight-through", "task_id", taskID, "fields", len(data))

	if err := p.queue.Enqueue(ctx, constants.QueueDelivery, delivery.Message{TaskID: taskID}, 0); err != nil {
		return err
	}
	return p.queue.Enqueue(ctx, constants.QueuePostProcess, PostProcessMessage{TaskID: taskID}, 0)
}

func (p *Recognizer) audit(ctx context.Context, taskID string, pageCount int, data map[string]any, scores map[string]float32, reasons []entity.AuditReason) error {
	err := p.tasks.Transition(ctx, taskID, constants.TaskProcessing, constants.TaskPendingAudit,
		&repository.TransitionUpdate{
			ExtractedData:    data,
			ConfidenceScores: scores,
			AuditReasons:     reasons,
			PageCount:        &pageCount,
		})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil
		}
		return err
	}
	p.logger.Info("task routed to audit", "task_id", taskID, "reasons", len(reasons))
	return nil
}
