package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow/gen/ent"
	entpage "github.com/docflowhq/docflow/gen/ent/pageresult"
	"github.com/docflowhq/docflow/internal/entity"
)

// PageResultRepository persists per-page recognition outcomes. Append-only.
type PageResultRepository interface {
	Append(ctx context.Context, p *entity.PageResult) error
	ListByTask(ctx context.Context, taskID string) ([]*entity.PageResult, error)
}

type pageResultRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewPageResultRepository(entc *ent.Client, log *slog.Logger) PageResultRepository {
	return &pageResultRepo{ent: entc, log: log}
}

func (r *pageResultRepo) Append(ctx context.Context, p *entity.PageResult) error {
	confs, _ := json.Marshal(p.TokenConfidences)
	boxes, _ := json.Marshal(p.Boxes)

	_, err := r.ent.PageResult.
		Create().
		SetTaskID(p.TaskID).
		SetPageNo(p.PageNo).
		SetText(p.Text).
		SetTokenConfidences(confs).
		SetBoxes(boxes).
		SetEngine(p.Engine).
		SetFallback(p.Fallback).
		SetFailureReason(p.FailureReason).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.log.Error("page result append failed", "task_id", p.TaskID, "page", p.PageNo, "err", err)
		return err
	}
	return nil
}

func (r *pageResultRepo) ListByTask(ctx context.Context, taskID string) ([]*entity.PageResult, error) {
	rows, err := r.ent.PageResult.
		Query().
		Where(entpage.TaskIDEQ(taskID)).
		Order(ent.Asc(entpage.FieldPageNo)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.PageResult, 0, len(rows))
	for _, row := range rows {
		p := &entity.PageResult{
			ID:            row.ID,
			TaskID:        row.TaskID,
			PageNo:        row.PageNo,
			Text:          row.Text,
			Engine:        row.Engine,
			Fallback:      row.Fallback,
			FailureReason: row.FailureReason,
			CreatedAt:     row.CreatedAt,
		}
		if len(row.TokenConfidences) > 0 {
			_ = json.Unmarshal(row.TokenConfidences, &p.TokenConfidences)
		}
		if len(row.Boxes) > 0 {
			_ = json.Unmarshal(row.Boxes, &p.Boxes)
		}
		out = append(out, p)
	}
	return out, nil
}
