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
	"github.com/docflowhq/docflow/gen/ent/pageresult"
	"github.com/google/uuid"
)

// PageResultCreate is the builder for creating a PageResult entity.
type PageResultCreate struct {
	config
	mutation *PageResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *PageResultCreate) SetTaskID(v string) *PageResultCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetPageNo sets the "page_no" field.
func (_c *PageResultCreate) SetPageNo(v int) *PageResultCreate {
	_c.mutation.SetPageNo(v)
	return _c
}

// SetText sets the "text" field.
func (_c *PageResultCreate) SetText(v string) *PageResultCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetTokenConfidences sets the "token_confidences" field.
func (_c *PageResultCreate) SetTokenConfidences(v json.RawMessage) *PageResultCreate {
	_c.mutation.SetTokenConfidences(v)
	return _c
}

// SetBoxes sets the "boxes" field.
func (_c *PageResultCreate) SetBoxes(v json.RawMessage) *PageResultCreate {
	_c.mutation.SetBoxes(v)
	return _c
}

// SetEngine sets the "engine" field.
func (_c *PageResultCreate) SetEngine(v string) *PageResultCreate {
	_c.mutation.SetEngine(v)
	return _c
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_c *PageResultCreate) SetNillableEngine(v *string) *PageResultCreate {
	if v != nil {
		_c.SetEngine(*v)
	}
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *PageResultCreate) SetFallback(v bool) *PageResultCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_c *PageResultCreate) SetNillableFallback(v *bool) *PageResultCreate {
	if v != nil {
		_c.SetFallback(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *PageResultCreate) SetFailureReason(v string) *PageResultCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *PageResultCreate) SetNillableFailureReason(v *string) *PageResultCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PageResultCreate) SetCreatedAt(v time.Time) *PageResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PageResultCreate) SetNillableCreatedAt(v *time.Time) *PageResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PageResultCreate) SetID(v uuid.UUID) *PageResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PageResultCreate) SetNillableID(v *uuid.UUID) *PageResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PageResultMutation object of the builder.
func (_c *PageResultCreate) Mutation() *PageResultMutation {
	return _c.mutation
}

// Save creates the PageResult in the database.
func (_c *PageResultCreate) Save(ctx context.Context) (*PageResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PageResultCreate) SaveX(ctx context.Context) *PageResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PageResultCreate) defaults() {
	if _, ok := _c.mutation.Engine(); !ok {
		v := pageresult.DefaultEngine
		_c.mutation.SetEngine(v)
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		v := pageresult.DefaultFallback
		_c.mutation.SetFallback(v)
	}
	if _, ok := _c.mutation.FailureReason(); !ok {
		v := pageresult.DefaultFailureReason
		_c.mutation.SetFailureReason(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pageresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pageresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PageResultCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "PageResult.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := pageresult.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "PageResult.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageNo(); !ok {
		return &ValidationError{Name: "page_no", err: errors.New(`ent: missing required field "PageResult.page_no"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "PageResult.text"`)}
	}
	if _, ok := _c.mutation.Engine(); !ok {
		return &ValidationError{Name: "engine", err: errors.New(`ent: missing required field "PageResult.engine"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "PageResult.fallback"`)}
	}
	if _, ok := _c.mutation.FailureReason(); !ok {
		return &ValidationError{Name: "failure_reason", err: errors.New(`ent: missing required field "PageResult.failure_reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PageResult.created_at"`)}
	}
	return nil
}

func (_c *PageResultCreate) sqlSave(ctx context.Context) (*PageResult, error) {
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

func (_c *PageResultCreate) createSpec() (*PageResult, *sqlgraph.CreateSpec) {
	var (
		_node = &PageResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pageresult.Table, sqlgraph.NewFieldSpec(pageresult.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(pageresult.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.PageNo(); ok {
		_spec.SetField(pageresult.FieldPageNo, field.TypeInt, value)
		_node.PageNo = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(pageresult.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.TokenConfidences(); ok {
		_spec.SetField(pageresult.FieldTokenConfidences, field.TypeJSON, value)
		_node.TokenConfidences = value
	}
	if value, ok := _c.mutation.Boxes(); ok {
		_spec.SetField(pageresult.FieldBoxes, field.TypeJSON, value)
		_node.Boxes = value
	}
	if value, ok := _c.mutation.Engine(); ok {
		_spec.SetField(pageresult.FieldEngine, field.TypeString, value)
		_node.Engine = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(pageresult.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(pageresult.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pageresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PageResult.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PageResultUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *PageResultCreate) OnConflict(opts ...sql.ConflictOption) *PageResultUpsertOne {
	_c.conflict = opts
	return &PageResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PageResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PageResultCreate) OnConflictColumns(columns ...string) *PageResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PageResultUpsertOne{
		create: _c,
	}
}

type (
	// PageResultUpsertOne is the builder for "upsert"-ing
	//  one PageResult node.
	PageResultUpsertOne struct {
		create *PageResultCreate
	}

	// PageResultUpsert is the "OnConflict" setter.
	PageResultUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PageResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pageresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PageResultUpsertOne) UpdateNewValues() *PageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pageresult.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(pageresult.FieldTaskID)
		}
		if _, exists := u.create.mutation.PageNo(); exists {
			s.SetIgnore(pageresult.FieldPageNo)
		}
		if _, exists := u.create.mutation.Text(); exists {
			s.SetIgnore(pageresult.FieldText)
		}
		if _, exists := u.create.mutation.TokenConfidences(); exists {
			s.SetIgnore(pageresult.FieldTokenConfidences)
		}
		if _, exists := u.create.mutation.Boxes(); exists {
			s.SetIgnore(pageresult.FieldBoxes)
		}
		if _, exists := u.create.mutation.Engine(); exists {
			s.SetIgnore(pageresult.FieldEngine)
		}
		if _, exists := u.create.mutation.Fallback(); exists {
			s.SetIgnore(pageresult.FieldFallback)
		}
		if _, exists := u.create.mutation.FailureReason(); exists {
			s.SetIgnore(pageresult.FieldFailureReason)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pageresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PageResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PageResultUpsertOne) Ignore() *PageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PageResultUpsertOne) DoNothing() *PageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PageResultCreate.OnConflict
// documentation for more info.
func (u *PageResultUpsertOne) Update(set func(*PageResultUpsert)) *PageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PageResultUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *PageResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PageResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PageResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PageResultUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PageResultUpsertOne.ID is not supported by MySQL driver. Use PageResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PageResultUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PageResultCreateBulk is the builder for creating many PageResult entities in bulk.
type PageResultCreateBulk struct {
	config
	err      error
	builders []*PageResultCreate
	conflict []sql.ConflictOption
}

// Save creates the PageResult entities in the database.
func (_c *PageResultCreateBulk) Save(ctx context.Context) ([]*PageResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PageResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PageResultMutation)
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
func (_c *PageResultCreateBulk) SaveX(ctx context.Context) []*PageResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PageResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PageResultUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *PageResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *PageResultUpsertBulk {
	_c.conflict = opts
	return &PageResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PageResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PageResultCreateBulk) OnConflictColumns(columns ...string) *PageResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PageResultUpsertBulk{
		create: _c,
	}
}

// PageResultUpsertBulk is the builder for "upsert"-ing
// a bulk of PageResult nodes.
type PageResultUpsertBulk struct {
	create *PageResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PageResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pageresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PageResultUpsertBulk) UpdateNewValues() *PageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pageresult.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(pageresult.FieldTaskID)
			}
			if _, exists := b.mutation.PageNo(); exists {
				s.SetIgnore(pageresult.FieldPageNo)
			}
			if _, exists := b.mutation.Text(); exists {
				s.SetIgnore(pageresult.FieldText)
			}
			if _, exists := b.mutation.TokenConfidences(); exists {
				s.SetIgnore(pageresult.FieldTokenConfidences)
			}
			if _, exists := b.mutation.Boxes(); exists {
				s.SetIgnore(pageresult.FieldBoxes)
			}
			if _, exists := b.mutation.Engine(); exists {
				s.SetIgnore(pageresult.FieldEngine)
			}
			if _, exists := b.mutation.Fallback(); exists {
				s.SetIgnore(pageresult.FieldFallback)
			}
			if _, exists := b.mutation.FailureReason(); exists {
				s.SetIgnore(pageresult.FieldFailureReason)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pageresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PageResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PageResultUpsertBulk) Ignore() *PageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PageResultUpsertBulk) DoNothing() *PageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PageResultCreateBulk.OnConflict
// documentation for more info.
func (u *PageResultUpsertBulk) Update(set func(*PageResultUpsert)) *PageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PageResultUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *PageResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PageResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PageResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PageResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
