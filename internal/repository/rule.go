package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/docflowhq/docflow/gen/ent"
	entrule "github.com/docflowhq/docflow/gen/ent/rule"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
)

// RuleRepository reads versioned extraction rules. Rules are immutable per
// version; tasks pin the exact version they were ingested against.
type RuleRepository interface {
	Get(ctx context.Context, ruleID, version string) (*entity.Rule, error)
	// ActiveVersion resolves the currently active version of a rule.
	ActiveVersion(ctx context.Context, ruleID string) (*entity.Rule, error)
}

type ruleRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRuleRepository(entc *ent.Client, log *slog.Logger) RuleRepository {
	return &ruleRepo{ent: entc, log: log}
}

func (r *ruleRepo) Get(ctx context.Context, ruleID, version string) (*entity.Rule, error) {
	row, err := r.ent.Rule.
		Query().
		Where(entrule.RuleIDEQ(ruleID), entrule.VersionEQ(version)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return ruleFromRow(row)
}

func (r *ruleRepo) ActiveVersion(ctx context.Context, ruleID string) (*entity.Rule, error) {
	row, err := r.ent.Rule.
		Query().
		Where(entrule.RuleIDEQ(ruleID), entrule.ActiveEQ(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return ruleFromRow(row)
}

func ruleFromRow(row *ent.Rule) (*entity.Rule, error) {
	rule := &entity.Rule{
		ID:         row.RuleID,
		Version:    row.Version,
		Name:       row.Name,
		PagePolicy: row.PagePolicy,
		Language:   row.Language,
		Active:     row.Active,
		CreatedAt:  row.CreatedAt,
	}
	if len(row.Pages) > 0 {
		if err := json.Unmarshal(row.Pages, &rule.Pages); err != nil {
			return nil, err
		}
	}
	if len(row.Engines) > 0 {
		if err := json.Unmarshal(row.Engines, &rule.Engines); err != nil {
			return nil, err
		}
	}
	if len(row.Fields) > 0 {
		if err := json.Unmarshal(row.Fields, &rule.Fields); err != nil {
			return nil, err
		}
	}
	return rule, nil
}
