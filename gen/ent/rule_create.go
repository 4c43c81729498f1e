// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docflowhq/docflow/gen/ent/receiver"
	"github.com/docflowhq/docflow/gen/ent/rule"
	"github.com/google/uuid"
)

// RuleCreate is the builder for creating a Rule entity.
type RuleCreate struct {
	config
	mutation *RuleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRuleID sets the "rule_id" field.
func (_c *RuleCreate) SetRuleID(v string) *RuleCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *RuleCreate) SetVersion(v string) *RuleCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RuleCreate) SetName(v string) *RuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *RuleCreate) SetNillableName(v *string) *RuleCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetPagePolicy sets the "page_policy" field.
func (_c *RuleCreate) SetPagePolicy(v string) *RuleCreate {
	_c.mutation.SetPagePolicy(v)
	return _c
}

// SetNillablePagePolicy sets the "page_policy" field if the given value is not nil.
func (_c *RuleCreate) SetNillablePagePolicy(v *string) *RuleCreate {
	if v != nil {
		_c.SetPagePolicy(*v)
	}
	return _c
}

// SetPages sets the "pages" field.
func (_c *RuleCreate) SetPages(v json.RawMessage) *RuleCreate {
	_c.mutation.SetPages(v)
	return _c
}

// SetEngines sets the "engines" field.
func (_c *RuleCreate) SetEngines(v json.RawMessage) *RuleCreate {
	_c.mutation.SetEngines(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *RuleCreate) SetLanguage(v string) *RuleCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *RuleCreate) SetNillableLanguage(v *string) *RuleCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetFields sets the "fields" field.
func (_c *RuleCreate) SetFields(v json.RawMessage) *RuleCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *RuleCreate) SetActive(v bool) *RuleCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *RuleCreate) SetNillableActive(v *bool) *RuleCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RuleCreate) SetCreatedAt(v time.Time) *RuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RuleCreate) SetNillableCreatedAt(v *time.Time) *RuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RuleCreate) SetID(v uuid.UUID) *RuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RuleCreate) SetNillableID(v *uuid.UUID) *RuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddReceiverIDs adds the "receivers" edge to the Receiver entity by IDs.
func (_c *RuleCreate) AddReceiverIDs(ids ...uuid.UUID) *RuleCreate {
	_c.mutation.AddReceiverIDs(ids...)
	return _c
}

// AddReceivers adds the "receivers" edges to the Receiver entity.
func (_c *RuleCreate) AddReceivers(v ...*Receiver) *RuleCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReceiverIDs(ids...)
}

// Mutation returns the RuleMutation object of the builder.
func (_c *RuleCreate) Mutation() *RuleMutation {
	return _c.mutation
}

// Save creates the Rule in the database.
func (_c *RuleCreate) Save(ctx context.Context) (*Rule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RuleCreate) SaveX(ctx context.Context) *Rule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RuleCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := rule.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.PagePolicy(); !ok {
		v := rule.DefaultPagePolicy
		_c.mutation.SetPagePolicy(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := rule.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := rule.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := rule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RuleCreate) check() error {
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "Rule.rule_id"`)}
	}
	if v, ok := _c.mutation.RuleID(); ok {
		if err := rule.RuleIDValidator(v); err != nil {
			return &ValidationError{Name: "rule_id", err: fmt.Errorf(`ent: validator failed for field "Rule.rule_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Rule.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := rule.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Rule.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Rule.name"`)}
	}
	if _, ok := _c.mutation.PagePolicy(); !ok {
		return &ValidationError{Name: "page_policy", err: errors.New(`ent: missing required field "Rule.page_policy"`)}
	}
	if v, ok := _c.mutation.PagePolicy(); ok {
		if err := rule.PagePolicyValidator(v); err != nil {
			return &ValidationError{Name: "page_policy", err: fmt.Errorf(`ent: validator failed for field "Rule.page_policy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Rule.language"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Rule.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Rule.created_at"`)}
	}
	return nil
}

func (_c *RuleCreate) sqlSave(ctx context.Context) (*Rule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RuleCreate) createSpec() (*Rule, *sqlgraph.CreateSpec) {
	var (
		_node = &Rule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rule.Table, sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(rule.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(rule.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(rule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PagePolicy(); ok {
		_spec.SetField(rule.FieldPagePolicy, field.TypeString, value)
		_node.PagePolicy = value
	}
	if value, ok := _c.mutation.Pages(); ok {
		_spec.SetField(rule.FieldPages, field.TypeJSON, value)
		_node.Pages = value
	}
	if value, ok := _c.mutation.Engines(); ok {
		_spec.SetField(rule.FieldEngines, field.TypeJSON, value)
		_node.Engines = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(rule.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(rule.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(rule.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReceiversIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   rule.ReceiversTable,
			Columns: rule.ReceiversPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiver.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Rule.Create().
//		SetRuleID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuleUpsert) {
//			SetRuleID(v+v).
//		}).
//		Exec(ctx)
func (_c *RuleCreate) OnConflict(opts ...sql.ConflictOption) *RuleUpsertOne {
	_c.conflict = opts
	return &RuleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Rule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuleCreate) OnConflictColumns(columns ...string) *RuleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuleUpsertOne{
		create: _c,
	}
}

type (
	// RuleUpsertOne is the builder for "upsert"-ing
	//  one Rule node.
	RuleUpsertOne struct {
		create *RuleCreate
	}

	// RuleUpsert is the "OnConflict" setter.
	RuleUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *RuleUpsert) SetName(v string) *RuleUpsert {
	u.Set(rule.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RuleUpsert) UpdateName() *RuleUpsert {
	u.SetExcluded(rule.FieldName)
	return u
}

// SetPagePolicy sets the "page_policy" field.
func (u *RuleUpsert) SetPagePolicy(v string) *RuleUpsert {
	u.Set(rule.FieldPagePolicy, v)
	return u
}

// UpdatePagePolicy sets the "page_policy" field to the value that was provided on create.
func (u *RuleUpsert) UpdatePagePolicy() *RuleUpsert {
	u.SetExcluded(rule.FieldPagePolicy)
	return u
}

// SetPages sets the "pages" field.
func (u *RuleUpsert) SetPages(v json.RawMessage) *RuleUpsert {
	u.Set(rule.FieldPages, v)
	return u
}

// UpdatePages sets the "pages" field to the value that was provided on create.
func (u *RuleUpsert) UpdatePages() *RuleUpsert {
	u.SetExcluded(rule.FieldPages)
	return u
}

// ClearPages clears the value of the "pages" field.
func (u *RuleUpsert) ClearPages() *RuleUpsert {
	u.SetNull(rule.FieldPages)
	return u
}

// SetEngines sets the "engines" field.
func (u *RuleUpsert) SetEngines(v json.RawMessage) *RuleUpsert {
	u.Set(rule.FieldEngines, v)
	return u
}

// UpdateEngines sets the "engines" field to the value that was provided on create.
func (u *RuleUpsert) UpdateEngines() *RuleUpsert {
	u.SetExcluded(rule.FieldEngines)
	return u
}

// ClearEngines clears the value of the "engines" field.
func (u *RuleUpsert) ClearEngines() *RuleUpsert {
	u.SetNull(rule.FieldEngines)
	return u
}

// SetLanguage sets the "language" field.
func (u *RuleUpsert) SetLanguage(v string) *RuleUpsert {
	u.Set(rule.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *RuleUpsert) UpdateLanguage() *RuleUpsert {
	u.SetExcluded(rule.FieldLanguage)
	return u
}

// SetFields sets the "fields" field.
func (u *RuleUpsert) SetFields(v json.RawMessage) *RuleUpsert {
	u.Set(rule.FieldFields, v)
	return u
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *RuleUpsert) UpdateFields() *RuleUpsert {
	u.SetExcluded(rule.FieldFields)
	return u
}

// ClearFields clears the value of the "fields" field.
func (u *RuleUpsert) ClearFields() *RuleUpsert {
	u.SetNull(rule.FieldFields)
	return u
}

// SetActive sets the "active" field.
func (u *RuleUpsert) SetActive(v bool) *RuleUpsert {
	u.Set(rule.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *RuleUpsert) UpdateActive() *RuleUpsert {
	u.SetExcluded(rule.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Rule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RuleUpsertOne) UpdateNewValues() *RuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rule.FieldID)
		}
		if _, exists := u.create.mutation.RuleID(); exists {
			s.SetIgnore(rule.FieldRuleID)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(rule.FieldVersion)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(rule.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Rule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RuleUpsertOne) Ignore() *RuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuleUpsertOne) DoNothing() *RuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuleCreate.OnConflict
// documentation for more info.
func (u *RuleUpsertOne) Update(set func(*RuleUpsert)) *RuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *RuleUpsertOne) SetName(v string) *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RuleUpsertOne) UpdateName() *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.UpdateName()
	})
}

// SetPagePolicy sets the "page_policy" field.
func (u *RuleUpsertOne) SetPagePolicy(v string) *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.SetPagePolicy(v)
	})
}

// UpdatePagePolicy sets the "page_policy" field to the value that was provided on create.
func (u *RuleUpsertOne) UpdatePagePolicy() *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.UpdatePagePolicy()
	})
}

// SetPages sets the "pages" field.
func (u *RuleUpsertOne) SetPages(v json.RawMessage) *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.SetPages(v)
	})
}

// UpdatePages sets the "pages" field to the value that was provided on create.
func (u *RuleUpsertOne) UpdatePages() *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.UpdatePages()
	})
}

// ClearPages clears the value of the "pages" field.
func (u *RuleUpsertOne) ClearPages() *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.ClearPages()
	})
}

// SetEngines sets the "engines" field.
func (u *RuleUpsertOne) SetEngines(v json.RawMessage) *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.SetEngines(v)
	})
}

// UpdateEngines sets the "engines" field to the value that was provided on create.
func (u *RuleUpsertOne) UpdateEngines() *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.UpdateEngines()
	})
}

// ClearEngines clears the value of the "engines" field.
func (u *RuleUpsertOne) ClearEngines() *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.ClearEngines()
	})
}

// SetLanguage sets the "language" field.
func (u *RuleUpsertOne) SetLanguage(v string) *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *RuleUpsertOne) UpdateLanguage() *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.UpdateLanguage()
	})
}

// SetFields sets the "fields" field.
func (u *RuleUpsertOne) SetFields(v json.RawMessage) *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.SetFields(v)
	})
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *RuleUpsertOne) UpdateFields() *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.UpdateFields()
	})
}

// ClearFields clears the value of the "fields" field.
func (u *RuleUpsertOne) ClearFields() *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.ClearFields()
	})
}

// SetActive sets the "active" field.
func (u *RuleUpsertOne) SetActive(v bool) *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *RuleUpsertOne) UpdateActive() *RuleUpsertOne {
	return u.Update(func(s *RuleUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *RuleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RuleUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RuleUpsertOne.ID is not supported by MySQL driver. Use RuleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RuleUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RuleCreateBulk is the builder for creating many Rule entities in bulk.
type RuleCreateBulk struct {
	config
	err      error
	builders []*RuleCreate
	conflict []sql.ConflictOption
}

// Save creates the Rule entities in the database.
func (_c *RuleCreateBulk) Save(ctx context.Context) ([]*Rule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Rule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RuleCreateBulk) SaveX(ctx context.Context) []*Rule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Rule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuleUpsert) {
//			SetRuleID(v+v).
//		}).
//		Exec(ctx)
func (_c *RuleCreateBulk) OnConflict(opts ...sql.ConflictOption) *RuleUpsertBulk {
	_c.conflict = opts
	return &RuleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Rule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuleCreateBulk) OnConflictColumns(columns ...string) *RuleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuleUpsertBulk{
		create: _c,
	}
}

// RuleUpsertBulk is the builder for "upsert"-ing
// a bulk of Rule nodes.
type RuleUpsertBulk struct {
	create *RuleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Rule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RuleUpsertBulk) UpdateNewValues() *RuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rule.FieldID)
			}
			if _, exists := b.mutation.RuleID(); exists {
				s.SetIgnore(rule.FieldRuleID)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(rule.FieldVersion)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(rule.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Rule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RuleUpsertBulk) Ignore() *RuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuleUpsertBulk) DoNothing() *RuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuleCreateBulk.OnConflict
// documentation for more info.
func (u *RuleUpsertBulk) Update(set func(*RuleUpsert)) *RuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *RuleUpsertBulk) SetName(v string) *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RuleUpsertBulk) UpdateName() *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.UpdateName()
	})
}

// SetPagePolicy sets the "page_policy" field.
func (u *RuleUpsertBulk) SetPagePolicy(v string) *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.SetPagePolicy(v)
	})
}

// UpdatePagePolicy sets the "page_policy" field to the value that was provided on create.
func (u *RuleUpsertBulk) UpdatePagePolicy() *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.UpdatePagePolicy()
	})
}

// SetPages sets the "pages" field.
func (u *RuleUpsertBulk) SetPages(v json.RawMessage) *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.SetPages(v)
	})
}

// UpdatePages sets the "pages" field to the value that was provided on create.
func (u *RuleUpsertBulk) UpdatePages() *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.UpdatePages()
	})
}

// ClearPages clears the value of the "pages" field.
func (u *RuleUpsertBulk) ClearPages() *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.ClearPages()
	})
}

// SetEngines sets the "engines" field.
func (u *RuleUpsertBulk) SetEngines(v json.RawMessage) *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.SetEngines(v)
	})
}

// UpdateEngines sets the "engines" field to the value that was provided on create.
func (u *RuleUpsertBulk) UpdateEngines() *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.UpdateEngines()
	})
}

// ClearEngines clears the value of the "engines" field.
func (u *RuleUpsertBulk) ClearEngines() *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.ClearEngines()
	})
}

// SetLanguage sets the "language" field.
func (u *RuleUpsertBulk) SetLanguage(v string) *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *RuleUpsertBulk) UpdateLanguage() *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.UpdateLanguage()
	})
}

// SetFields sets the "fields" field.
func (u *RuleUpsertBulk) SetFields(v json.RawMessage) *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.SetFields(v)
	})
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *RuleUpsertBulk) UpdateFields() *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.UpdateFields()
	})
}

// ClearFields clears the value of the "fields" field.
func (u *RuleUpsertBulk) ClearFields() *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.ClearFields()
	})
}

// SetActive sets the "active" field.
func (u *RuleUpsertBulk) SetActive(v bool) *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *RuleUpsertBulk) UpdateActive() *RuleUpsertBulk {
	return u.Update(func(s *RuleUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *RuleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RuleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
