package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/gen/ent"
	entreceiver "github.com/docflowhq/docflow/gen/ent/receiver"
	entrule "github.com/docflowhq/docflow/gen/ent/rule"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
)

// ReceiverRepository reads webhook receiver configuration. The pipeline never
// writes receivers; they are authored externally and resolved at delivery
// time so configuration changes apply prospectively.
type ReceiverRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receiver, error)
	// ActiveForRule returns the active receivers associated with a rule id
	// (any version; the association is per rule, not per rule version).
	ActiveForRule(ctx context.Context, ruleID string) ([]*entity.Receiver, error)
}

type receiverRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewReceiverRepository(entc *ent.Client, log *slog.Logger) ReceiverRepository {
	return &receiverRepo{ent: entc, log: log}
}

func (r *receiverRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receiver, error) {
	row, err := r.ent.Receiver.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return receiverFromRow(row), nil
}

func (r *receiverRepo) ActiveForRule(ctx context.Context, ruleID string) ([]*entity.Receiver, error) {
	rows, err := r.ent.Receiver.
		Query().
		Where(
			entreceiver.ActiveEQ(true),
			entreceiver.HasRulesWith(entrule.RuleIDEQ(ruleID)),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Receiver, 0, len(rows))
	for _, row := range rows {
		out = append(out, receiverFromRow(row))
	}
	return out, nil
}

func receiverFromRow(row *ent.Receiver) *entity.Receiver {
	return &entity.Receiver{
		ID:            row.ID,
		Name:          row.Name,
		Endpoint:      row.Endpoint,
		AuthKind:      row.AuthKind,
		AuthUser:      row.AuthUser,
		AuthToken:     row.AuthToken,
		SigningSecret: row.SigningSecret,
		BodyTemplate:  row.BodyTemplate,
		Active:        row.Active,
		CreatedAt:     row.CreatedAt,
	}
}
