package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docflowhq/docflow/constants"
	v1 "github.com/docflowhq/docflow/gen/proto/docflow/v1"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
	"github.com/docflowhq/docflow/internal/task"
)

type TaskService struct {
	v1.UnimplementedTaskServiceServer
	tasks  repository.TaskRepository
	pages  repository.PageResultRepository
	logger *slog.Logger
}

func NewTaskService(tasks repository.TaskRepository, pages repository.PageResultRepository, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskService{tasks: tasks, pages: pages, logger: logger}
}

// GetTask implements v1.TaskServiceServer.
func (s *TaskService) GetTask(ctx context.Context, req *v1.GetTaskRequest) (*v1.GetTaskResponse, error) {
	id := strings.TrimSpace(req.GetTaskId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id is required")
	}
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		s.logger.Error("get task failed", "task_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get task failed")
	}

	rows, err := s.pages.ListByTask(ctx, id)
	if err != nil {
		s.logger.Error("list page results failed", "task_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get task failed")
	}
	pages := make([]*v1.PageSummary, 0, len(rows))
	for _, p := range rows {
		pages = append(pages, &v1.PageSummary{
			PageNo:        int32(p.PageNo),
			Engine:        p.Engine,
			Fallback:      p.Fallback,
			Confidence:    p.Confidence(),
			FailureReason: p.FailureReason,
		})
	}
	return &v1.GetTaskResponse{Task: protoTask(task), Pages: pages}, nil
}

// ListTasks implements v1.TaskServiceServer.
func (s *TaskService) ListTasks(ctx context.Context, req *v1.ListTasksRequest) (*v1.ListTasksResponse, error) {
	f := repository.TaskFilter{
		RuleID: strings.TrimSpace(req.GetRuleId()),
		Limit:  int(req.GetLimit()),
	}
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		if !task.ValidStatus(constants.TaskStatus(st)) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
		}
		f.Status = constants.TaskStatus(st)
	}

	tasks, err := s.tasks.List(ctx, f)
	if err != nil {
		s.logger.Error("list tasks failed", "error", err)
		return nil, status.Error(codes.Internal, "list tasks failed")
	}
	out := make([]*v1.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, protoTask(t))
	}
	return &v1.ListTasksResponse{Tasks: out}, nil
}

// CancelTask implements v1.TaskServiceServer. Only a still-queued task can be
// cancelled outright; in-flight tasks abort cooperatively on their next state
// check instead.
func (s *TaskService) CancelTask(ctx context.Context, req *v1.CancelTaskRequest) (*v1.CancelTaskResponse, error) {
	id := strings.TrimSpace(req.GetTaskId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id is required")
	}
	if err := s.tasks.DeleteQueued(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		if errors.Is(err, common.ErrConflict) {
			return nil, status.Error(codes.FailedPrecondition, "task is no longer queued")
		}
		s.logger.Error("cancel task failed", "task_id", id, "error", err)
		return nil, status.Error(codes.Internal, "cancel task failed")
	}
	s.logger.Info("task cancelled", "task_id", id)
	return &v1.CancelTaskResponse{}, nil
}

func protoTask(t *entity.Task) *v1.Task {
	data, _ := json.Marshal(t.ExtractedData)
	scores, _ := json.Marshal(t.ConfidenceScores)
	reasons := make([]*v1.AuditReason, 0, len(t.AuditReasons))
	for _, r := range t.AuditReasons {
		reasons = append(reasons, &v1.AuditReason{
			Field:   r.Field,
			Kind:    r.Kind,
			Message: r.Message,
			Page:    int32(r.Page),
		})
	}
	out := &v1.Task{
		Id:                  t.ID,
		Status:              string(t.Status),
		RuleId:              t.RuleID,
		RuleVersion:         t.RuleVersion,
		PageCount:           int32(t.PageCount),
		Instant:             t.Instant,
		ExtractedData:       string(data),
		ConfidenceScores:    string(scores),
		AuditReasons:        reasons,
		RecognitionAttempts: int32(t.Attempts.Recognition),
		DeliveryAttempts:    int32(t.Attempts.Delivery),
		CreatedAt:           t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if t.CompletedAt != nil {
		out.CompletedAt = t.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return out
}
