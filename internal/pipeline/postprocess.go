package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

// PostProcessor runs after a task first completes. Today its only job is to
// publish the task's result into the fingerprint index so identical future
// uploads resolve instantly.
type PostProcessor struct {
	tasks  repository.TaskRepository
	prints repository.FingerprintRepository
	now    func() time.Time
	logger *slog.Logger
}

func NewPostProcessor(tasks repository.TaskRepository, prints repository.FingerprintRepository, logger *slog.Logger) *PostProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostProcessor{tasks: tasks, prints: prints, now: time.Now, logger: logger}
}

func (p *PostProcessor) Handle(ctx context.Context, msg *entity.QueueMessage) error {
	var m PostProcessMessage
	if err := json.Unmarshal(msg.Payload, &m); err != nil {
		p.logger.Error("malformed postprocess message discarded", "msg_id", msg.ID.String(), "error", err)
		return nil
	}

	task, err := p.tasks.GetByID(ctx, m.TaskID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}
	// Only tasks that actually reached completion feed the index. A stale
	// redelivery for a task that was since rejected must not poison it.
	switch task.Status {
	case constants.TaskCompleted, constants.TaskPushing, constants.TaskPushSuccess, constants.TaskPushFailed:
	default:
		p.logger.Warn("postprocess skipped for unsettled task",
			"task_id", m.TaskID, "status", string(task.Status))
		return nil
	}
	// Instant tasks cloned their result from an existing record; recording
	// them again would only point the fingerprint at a copy.
	if task.Instant {
		return nil
	}

	err = p.prints.Record(ctx, &entity.FingerprintRecord{
		Fingerprint:      task.Fingerprint,
		SourceTaskID:     task.ID,
		ExtractedData:    task.ExtractedData,
		ConfidenceScores: task.ConfidenceScores,
		PageCount:        task.PageCount,
		RecordedAt:       p.now(),
	})
	if err != nil {
		return err
	}
	p.logger.Info("fingerprint recorded", "task_id", task.ID, "fingerprint", task.Fingerprint)
	return nil
}
