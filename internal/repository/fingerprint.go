package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow/gen/ent"
	entfp "github.com/docflowhq/docflow/gen/ent/fingerprint"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
)

type FingerprintRepository interface {
	Lookup(ctx context.Context, fingerprint string) (*entity.FingerprintRecord, error)
	// Record stores the first completed result for a fingerprint. Concurrent
	// completions of identical content are harmless: the row is unique on the
	// fingerprint and later writes are ignored.
	Record(ctx context.Context, rec *entity.FingerprintRecord) error
}

type fingerprintRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewFingerprintRepository(entc *ent.Client, log *slog.Logger) FingerprintRepository {
	return &fingerprintRepo{ent: entc, log: log}
}

func (r *fingerprintRepo) Lookup(ctx context.Context, fingerprint string) (*entity.FingerprintRecord, error) {
	row, err := r.ent.Fingerprint.
		Query().
		Where(entfp.FingerprintEQ(fingerprint)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	rec := &entity.FingerprintRecord{
		Fingerprint:  row.Fingerprint,
		SourceTaskID: row.SourceTaskID,
		PageCount:    row.PageCount,
		RecordedAt:   row.RecordedAt,
	}
	if len(row.ExtractedData) > 0 {
		_ = json.Unmarshal(row.ExtractedData, &rec.ExtractedData)
	}
	if len(row.ConfidenceScores) > 0 {
		_ = json.Unmarshal(row.ConfidenceScores, &rec.ConfidenceScores)
	}
	return rec, nil
}

func (r *fingerprintRepo) Record(ctx context.Context, rec *entity.FingerprintRecord) error {
	data, _ := json.Marshal(rec.ExtractedData)
	scores, _ := json.Marshal(rec.ConfidenceScores)

	err := r.ent.Fingerprint.
		Create().
		SetFingerprint(rec.Fingerprint).
		SetSourceTaskID(rec.SourceTaskID).
		SetExtractedData(data).
		SetConfidenceScores(scores).
		SetPageCount(rec.PageCount).
		SetRecordedAt(time.Now().UTC()).
		OnConflict().
		DoNothing().
		Exec(ctx)
	if err != nil {
		r.log.Error("fingerprint record failed", "fingerprint", rec.Fingerprint, "err", err)
		return err
	}
	r.log.Info("fingerprint recorded", "fingerprint", rec.Fingerprint, "source_task_id", rec.SourceTaskID)
	return nil
}
