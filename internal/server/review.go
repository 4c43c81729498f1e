package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docflowhq/docflow/constants"
	v1 "github.com/docflowhq/docflow/gen/proto/docflow/v1"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/delivery"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/gate"
	"github.com/docflowhq/docflow/internal/pipeline"
	"github.com/docflowhq/docflow/internal/repository"
)

type ReviewService struct {
	v1.UnimplementedReviewServiceServer
	tasks    repository.TaskRepository
	rules    repository.RuleRepository
	queue    repository.QueueRepository
	delivery *delivery.Service
	now      func() time.Time
	logger   *slog.Logger
}

func NewReviewService(
	tasks repository.TaskRepository,
	rules repository.RuleRepository,
	queue repository.QueueRepository,
	dlv *delivery.Service,
	logger *slog.Logger,
) *ReviewService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewService{
		tasks:    tasks,
		rules:    rules,
		queue:    queue,
		delivery: dlv,
		now:      time.Now,
		logger:   logger,
	}
}

// ApproveTask implements v1.ReviewServiceServer. Corrections are raw strings
// coerced through each field's configured type; a corrected field gets full
// confidence since a human vouched for it.
func (s *ReviewService) ApproveTask(ctx context.Context, req *v1.ApproveTaskRequest) (*v1.ApproveTaskResponse, error) {
	id := strings.TrimSpace(req.GetTaskId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id is required")
	}
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Status != constants.TaskPendingAudit {
		return nil, status.Errorf(codes.FailedPrecondition, "task is %s, not pending_audit", task.Status)
	}
	rule, err := s.rules.Get(ctx, task.RuleID, task.RuleVersion)
	if err != nil {
		s.logger.Error("rule lookup failed", "task_id", id, "rule_id", task.RuleID, "error", err)
		return nil, status.Error(codes.Internal, "approve failed")
	}

	data := make(map[string]any, len(task.ExtractedData)+len(req.GetCorrections()))
	for k, v := range task.ExtractedData {
		data[k] = v
	}
	scores := make(map[string]float32, len(task.ConfidenceScores))
	for k, v := range task.ConfidenceScores {
		scores[k] = v
	}
	for name, raw := range req.GetCorrections() {
		field := rule.Field(name)
		if field == nil {
			return nil, status.Errorf(codes.InvalidArgument, "rule has no field %q", name)
		}
		coerced, err := gate.Coerce(nil, raw, field.Type)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "field %q: %v", name, err)
		}
		data[name] = coerced
		scores[name] = 1.0
	}
	for _, f := range rule.Fields {
		if f.Required && data[f.Name] == nil {
			return nil, status.Errorf(codes.FailedPrecondition, "required field %q still has no value", f.Name)
		}
	}

	now := s.now()
	err = s.tasks.Transition(ctx, id, constants.TaskPendingAudit, constants.TaskCompleted,
		&repository.TransitionUpdate{
			ExtractedData:    data,
			ConfidenceScores: scores,
			AuditReasons:     []entity.AuditReason{},
			CompletedAt:      &now,
		})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, status.Error(codes.FailedPrecondition, "task is no longer pending_audit")
		}
		s.logger.Error("approve transition failed", "task_id", id, "error", err)
		return nil, status.Error(codes.Internal, "approve failed")
	}
	s.logger.Info("task approved", "task_id", id, "corrections", len(req.GetCorrections()))

	if err := s.delivery.EnqueueKickoff(ctx, id); err != nil {
		s.logger.Error("delivery kickoff enqueue failed", "task_id", id, "error", err)
		return nil, status.Error(codes.Internal, "approve failed")
	}
	if err := s.queue.Enqueue(ctx, constants.QueuePostProcess, pipeline.PostProcessMessage{TaskID: id}, 0); err != nil {
		s.logger.Error("postprocess enqueue failed", "task_id", id, "error", err)
		return nil, status.Error(codes.Internal, "approve failed")
	}

	task, err = s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return &v1.ApproveTaskResponse{Task: protoTask(task)}, nil
}

// RejectTask implements v1.ReviewServiceServer.
func (s *ReviewService) RejectTask(ctx context.Context, req *v1.RejectTaskRequest) (*v1.RejectTaskResponse, error) {
	id := strings.TrimSpace(req.GetTaskId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id is required")
	}
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	reasons := append(task.AuditReasons, entity.AuditReason{
		Kind:    constants.ReasonRejected,
		Message: strings.TrimSpace(req.GetReason()),
	})
	err = s.tasks.Transition(ctx, id, constants.TaskPendingAudit, constants.TaskRejected,
		&repository.TransitionUpdate{AuditReasons: reasons})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, status.Errorf(codes.FailedPrecondition, "task is %s, not pending_audit", task.Status)
		}
		s.logger.Error("reject transition failed", "task_id", id, "error", err)
		return nil, status.Error(codes.Internal, "reject failed")
	}
	s.logger.Info("task rejected", "task_id", id)

	task, err = s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return &v1.RejectTaskResponse{Task: protoTask(task)}, nil
}

// ResubmitTask implements v1.ReviewServiceServer: full reprocessing of a
// rejected task under its pinned rule version.
func (s *ReviewService) ResubmitTask(ctx context.Context, req *v1.ResubmitTaskRequest) (*v1.ResubmitTaskResponse, error) {
	id := strings.TrimSpace(req.GetTaskId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id is required")
	}
	err := s.tasks.Transition(ctx, id, constants.TaskRejected, constants.TaskProcessing,
		&repository.TransitionUpdate{
			IncrementRecognition: true,
			AuditReasons:         []entity.AuditReason{},
		})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, status.Error(codes.FailedPrecondition, "only a rejected task can be resubmitted")
		}
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		s.logger.Error("resubmit transition failed", "task_id", id, "error", err)
		return nil, status.Error(codes.Internal, "resubmit failed")
	}
	if err := s.queue.Enqueue(ctx, constants.QueueRecognition, pipeline.RecognitionMessage{TaskID: id}, 0); err != nil {
		s.logger.Error("recognition enqueue failed", "task_id", id, "error", err)
		return nil, status.Error(codes.Internal, "resubmit failed")
	}
	s.logger.Info("task resubmitted", "task_id", id)

	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return &v1.ResubmitTaskResponse{Task: protoTask(task)}, nil
}

// RetryDelivery implements v1.ReviewServiceServer: delivery-only re-invoke
// for a push_failed task, driving only the receivers without a success.
func (s *ReviewService) RetryDelivery(ctx context.Context, req *v1.RetryDeliveryRequest) (*v1.RetryDeliveryResponse, error) {
	id := strings.TrimSpace(req.GetTaskId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id is required")
	}
	if err := s.delivery.RetryDelivery(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		if errors.Is(err, common.ErrConflict) {
			return nil, status.Error(codes.FailedPrecondition, "only a push_failed task can retry delivery")
		}
		s.logger.Error("retry delivery failed", "task_id", id, "error", err)
		return nil, status.Error(codes.Internal, "retry delivery failed")
	}

	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return &v1.RetryDeliveryResponse{Task: protoTask(task)}, nil
}

func (s *ReviewService) getTask(ctx context.Context, id string) (*entity.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		s.logger.Error("task lookup failed", "task_id", id, "error", err)
		return nil, status.Error(codes.Internal, "task lookup failed")
	}
	return task, nil
}
