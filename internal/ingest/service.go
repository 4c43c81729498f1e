package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/blob"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/delivery"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/fingerprint"
	"github.com/docflowhq/docflow/internal/pipeline"
	"github.com/docflowhq/docflow/internal/repository"
	"github.com/docflowhq/docflow/internal/task"
)

// Request is one synchronous upload. RuleVersion empty means "the rule's
// current active version", which is then pinned onto the task.
type Request struct {
	FileName    string
	Data        []byte
	RuleID      string
	RuleVersion string
}

// Result is returned immediately; processing continues asynchronously unless
// Instant is set.
type Result struct {
	TaskID  string
	Status  constants.TaskStatus
	Instant bool
}

// Service is the synchronous ingestion boundary: validate, fingerprint,
// dedup, persist, enqueue. Input errors are rejected here and never reach a
// queue.
type Service struct {
	tasks  repository.TaskRepository
	rules  repository.RuleRepository
	prints repository.FingerprintRepository
	queue  repository.QueueRepository
	store  blob.Store
	now    func() time.Time
	logger *slog.Logger
}

func NewService(
	tasks repository.TaskRepository,
	rules repository.RuleRepository,
	prints repository.FingerprintRepository,
	queue repository.QueueRepository,
	store blob.Store,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		tasks:  tasks,
		rules:  rules,
		prints: prints,
		queue:  queue,
		store:  store,
		now:    time.Now,
		logger: logger,
	}
}

func (s *Service) Ingest(ctx context.Context, req Request) (*Result, error) {
	format, err := validate(req)
	if err != nil {
		return nil, err
	}

	rule, err := s.resolveRule(ctx, req)
	if err != nil {
		return nil, err
	}

	fp := fingerprint.Compute(req.Data, rule.ID, rule.Version)

	hit, err := s.prints.Lookup(ctx, fp)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if hit != nil {
		return s.instant(ctx, req, rule, fp, hit, format)
	}

	now := s.now()
	id := task.NewID(now)
	blobKey := fmt.Sprintf("tasks/%s/source%s", id, filepath.Ext(req.FileName))
	if err := s.store.Put(ctx, blobKey, req.Data, contentType(format)); err != nil {
		return nil, fmt.Errorf("store source file: %w", err)
	}

	t := &entity.Task{
		ID:          id,
		Fingerprint: fp,
		Status:      constants.TaskQueued,
		RuleID:      rule.ID,
		RuleVersion: rule.Version,
		Format:      format,
		BlobKey:     blobKey,
		CreatedAt:   now,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	if err := s.queue.Enqueue(ctx, constants.QueueRecognition, pipeline.RecognitionMessage{TaskID: id}, 0); err != nil {
		return nil, fmt.Errorf("enqueue recognition: %w", err)
	}

	s.logger.Info("task ingested",
		"task_id", id, "rule_id", rule.ID, "rule_version", rule.Version,
		"format", format, "bytes", len(req.Data))
	return &Result{TaskID: id, Status: constants.TaskQueued}, nil
}

// instant clones a prior completed result for a byte-identical file under the
// same rule version, skipping recognition and extraction entirely.
func (s *Service) instant(ctx context.Context, req Request, rule *entity.Rule, fp string, hit *entity.FingerprintRecord, format string) (*Result, error) {
	now := s.now()
	id := task.NewID(now)

	// The file is stored anyway so delivery can mint a download URL.
	blobKey := fmt.Sprintf("tasks/%s/source%s", id, filepath.Ext(req.FileName))
	if err := s.store.Put(ctx, blobKey, req.Data, contentType(format)); err != nil {
		return nil, fmt.Errorf("store source file: %w", err)
	}

	t := &entity.Task{
		ID:               id,
		Fingerprint:      fp,
		Status:           constants.TaskCompleted,
		RuleID:           rule.ID,
		RuleVersion:      rule.Version,
		PageCount:        hit.PageCount,
		Format:           format,
		BlobKey:          blobKey,
		Instant:          true,
		ExtractedData:    hit.ExtractedData,
		ConfidenceScores: hit.ConfidenceScores,
		CreatedAt:        now,
		CompletedAt:      &now,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	if err := s.queue.Enqueue(ctx, constants.QueueDelivery, delivery.Message{TaskID: id}, 0); err != nil {
		return nil, fmt.Errorf("enqueue delivery: %w", err)
	}

	s.logger.Info("instant dedup hit",
		"task_id", id, "source_task_id", hit.SourceTaskID, "fingerprint", fp[:12])
	return &Result{TaskID: id, Status: constants.TaskCompleted, Instant: true}, nil
}

func (s *Service) resolveRule(ctx context.Context, req Request) (*entity.Rule, error) {
	var (
		rule *entity.Rule
		err  error
	)
	if req.RuleVersion != "" {
		rule, err = s.rules.Get(ctx, req.RuleID, req.RuleVersion)
	} else {
		rule, err = s.rules.ActiveVersion(ctx, req.RuleID)
	}
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewAppError("UNKNOWN_RULE",
				fmt.Sprintf("rule %s (version %q) not found", req.RuleID, req.RuleVersion), common.ErrInvalidInput)
		}
		return nil, err
	}
	return rule, nil
}

func validate(req Request) (string, error) {
	if len(req.Data) == 0 {
		return "", common.NewAppError("EMPTY_FILE", "uploaded file is empty", common.ErrInvalidInput)
	}
	if len(req.Data) > constants.MaxUploadBytes {
		return "", common.NewAppError("FILE_TOO_LARGE",
			fmt.Sprintf("file is %d bytes, limit is %d", len(req.Data), constants.MaxUploadBytes), common.ErrInvalidInput)
	}
	if req.RuleID == "" {
		return "", common.NewAppError("MISSING_RULE", "rule id is required", common.ErrInvalidInput)
	}
	format := constants.MapExtToFormat(filepath.Ext(req.FileName))
	if format == "" {
		return "", common.NewAppError("UNSUPPORTED_FORMAT",
			fmt.Sprintf("unsupported file extension %q", filepath.Ext(req.FileName)), common.ErrInvalidInput)
	}
	return format, nil
}

func contentType(format string) string {
	if format == constants.PDF {
		return "application/pdf"
	}
	return "application/octet-stream"
}
