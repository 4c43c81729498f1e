package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/docflowhq/docflow/gen/proto/docflow/v1"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/ingest"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor *ingest.Service
	logger   *slog.Logger
}

func NewIngestionService(ing *ingest.Service, logger *slog.Logger) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{ingestor: ing, logger: logger}
}

// IngestDocument implements v1.IngestionServiceServer.
func (s *IngestionService) IngestDocument(ctx context.Context, req *v1.IngestDocumentRequest) (*v1.IngestDocumentResponse, error) {
	fileName := strings.TrimSpace(req.GetFileName())
	if fileName == "" {
		return nil, status.Error(codes.InvalidArgument, "file_name is required")
	}
	ruleID := strings.TrimSpace(req.GetRuleId())
	if ruleID == "" {
		return nil, status.Error(codes.InvalidArgument, "rule_id is required")
	}

	r, err := s.ingestor.Ingest(ctx, ingest.Request{
		FileName:    fileName,
		Data:        req.GetContent(),
		RuleID:      ruleID,
		RuleVersion: strings.TrimSpace(req.GetRuleVersion()),
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error("ingest failed", "rule_id", ruleID, "file_name", fileName, "error", err)
		return nil, status.Error(codes.Internal, "ingest failed")
	}

	return &v1.IngestDocumentResponse{
		TaskId:  r.TaskID,
		Status:  string(r.Status),
		Instant: r.Instant,
	}, nil
}
