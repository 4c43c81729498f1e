// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docflowhq/docflow/gen/ent/pushattempt"
	"github.com/google/uuid"
)

// PushAttemptCreate is the builder for creating a PushAttempt entity.
type PushAttemptCreate struct {
	config
	mutation *PushAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *PushAttemptCreate) SetTaskID(v string) *PushAttemptCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetReceiverID sets the "receiver_id" field.
func (_c *PushAttemptCreate) SetReceiverID(v uuid.UUID) *PushAttemptCreate {
	_c.mutation.SetReceiverID(v)
	return _c
}

// SetCycle sets the "cycle" field.
func (_c *PushAttemptCreate) SetCycle(v int) *PushAttemptCreate {
	_c.mutation.SetCycle(v)
	return _c
}

// SetNillableCycle sets the "cycle" field if the given value is not nil.
func (_c *PushAttemptCreate) SetNillableCycle(v *int) *PushAttemptCreate {
	if v != nil {
		_c.SetCycle(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *PushAttemptCreate) SetAttempt(v int) *PushAttemptCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetHTTPStatus sets the "http_status" field.
func (_c *PushAttemptCreate) SetHTTPStatus(v int) *PushAttemptCreate {
	_c.mutation.SetHTTPStatus(v)
	return _c
}

// SetNillableHTTPStatus sets the "http_status" field if the given value is not nil.
func (_c *PushAttemptCreate) SetNillableHTTPStatus(v *int) *PushAttemptCreate {
	if v != nil {
		_c.SetHTTPStatus(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *PushAttemptCreate) SetOutcome(v string) *PushAttemptCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *PushAttemptCreate) SetDurationMs(v int64) *PushAttemptCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *PushAttemptCreate) SetNillableDurationMs(v *int64) *PushAttemptCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *PushAttemptCreate) SetError(v string) *PushAttemptCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *PushAttemptCreate) SetNillableError(v *string) *PushAttemptCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PushAttemptCreate) SetCreatedAt(v time.Time) *PushAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PushAttemptCreate) SetNillableCreatedAt(v *time.Time) *PushAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PushAttemptCreate) SetID(v uuid.UUID) *PushAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PushAttemptCreate) SetNillableID(v *uuid.UUID) *PushAttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PushAttemptMutation object of the builder.
func (_c *PushAttemptCreate) Mutation() *PushAttemptMutation {
	return _c.mutation
}

// Save creates the PushAttempt in the database.
func (_c *PushAttemptCreate) Save(ctx context.Context) (*PushAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PushAttemptCreate) SaveX(ctx context.Context) *PushAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PushAttemptCreate) defaults() {
	if _, ok := _c.mutation.Cycle(); !ok {
		v := pushattempt.DefaultCycle
		_c.mutation.SetCycle(v)
	}
	if _, ok := _c.mutation.HTTPStatus(); !ok {
		v := pushattempt.DefaultHTTPStatus
		_c.mutation.SetHTTPStatus(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := pushattempt.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.Error(); !ok {
		v := pushattempt.DefaultError
		_c.mutation.SetError(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pushattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pushattempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PushAttemptCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "PushAttempt.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := pushattempt.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "PushAttempt.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceiverID(); !ok {
		return &ValidationError{Name: "receiver_id", err: errors.New(`ent: missing required field "PushAttempt.receiver_id"`)}
	}
	if _, ok := _c.mutation.Cycle(); !ok {
		return &ValidationError{Name: "cycle", err: errors.New(`ent: missing required field "PushAttempt.cycle"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "PushAttempt.attempt"`)}
	}
	if _, ok := _c.mutation.HTTPStatus(); !ok {
		return &ValidationError{Name: "http_status", err: errors.New(`ent: missing required field "PushAttempt.http_status"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "PushAttempt.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := pushattempt.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "PushAttempt.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "PushAttempt.duration_ms"`)}
	}
	if _, ok := _c.mutation.Error(); !ok {
		return &ValidationError{Name: "error", err: errors.New(`ent: missing required field "PushAttempt.error"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PushAttempt.created_at"`)}
	}
	return nil
}

func (_c *PushAttemptCreate) sqlSave(ctx context.Context) (*PushAttempt, error) {
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

func (_c *PushAttemptCreate) createSpec() (*PushAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &PushAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pushattempt.Table, sqlgraph.NewFieldSpec(pushattempt.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(pushattempt.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.ReceiverID(); ok {
		_spec.SetField(pushattempt.FieldReceiverID, field.TypeUUID, value)
		_node.ReceiverID = value
	}
	if value, ok := _c.mutation.Cycle(); ok {
		_spec.SetField(pushattempt.FieldCycle, field.TypeInt, value)
		_node.Cycle = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(pushattempt.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.HTTPStatus(); ok {
		_spec.SetField(pushattempt.FieldHTTPStatus, field.TypeInt, value)
		_node.HTTPStatus = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(pushattempt.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(pushattempt.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(pushattempt.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pushattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PushAttempt.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushAttemptUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *PushAttemptCreate) OnConflict(opts ...sql.ConflictOption) *PushAttemptUpsertOne {
	_c.conflict = opts
	return &PushAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PushAttemptCreate) OnConflictColumns(columns ...string) *PushAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PushAttemptUpsertOne{
		create: _c,
	}
}

type (
	// PushAttemptUpsertOne is the builder for "upsert"-ing
	//  one PushAttempt node.
	PushAttemptUpsertOne struct {
		create *PushAttemptCreate
	}

	// PushAttemptUpsert is the "OnConflict" setter.
	PushAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PushAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pushattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PushAttemptUpsertOne) UpdateNewValues() *PushAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pushattempt.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(pushattempt.FieldTaskID)
		}
		if _, exists := u.create.mutation.ReceiverID(); exists {
			s.SetIgnore(pushattempt.FieldReceiverID)
		}
		if _, exists := u.create.mutation.Cycle(); exists {
			s.SetIgnore(pushattempt.FieldCycle)
		}
		if _, exists := u.create.mutation.Attempt(); exists {
			s.SetIgnore(pushattempt.FieldAttempt)
		}
		if _, exists := u.create.mutation.HTTPStatus(); exists {
			s.SetIgnore(pushattempt.FieldHTTPStatus)
		}
		if _, exists := u.create.mutation.Outcome(); exists {
			s.SetIgnore(pushattempt.FieldOutcome)
		}
		if _, exists := u.create.mutation.DurationMs(); exists {
			s.SetIgnore(pushattempt.FieldDurationMs)
		}
		if _, exists := u.create.mutation.Error(); exists {
			s.SetIgnore(pushattempt.FieldError)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pushattempt.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PushAttemptUpsertOne) Ignore() *PushAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushAttemptUpsertOne) DoNothing() *PushAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushAttemptCreate.OnConflict
// documentation for more info.
func (u *PushAttemptUpsertOne) Update(set func(*PushAttemptUpsert)) *PushAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *PushAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PushAttemptUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PushAttemptUpsertOne.ID is not supported by MySQL driver. Use PushAttemptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PushAttemptUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PushAttemptCreateBulk is the builder for creating many PushAttempt entities in bulk.
type PushAttemptCreateBulk struct {
	config
	err      error
	builders []*PushAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the PushAttempt entities in the database.
func (_c *PushAttemptCreateBulk) Save(ctx context.Context) ([]*PushAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PushAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PushAttemptMutation)
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
func (_c *PushAttemptCreateBulk) SaveX(ctx context.Context) []*PushAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PushAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushAttemptUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *PushAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *PushAttemptUpsertBulk {
	_c.conflict = opts
	return &PushAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PushAttemptCreateBulk) OnConflictColumns(columns ...string) *PushAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PushAttemptUpsertBulk{
		create: _c,
	}
}

// PushAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of PushAttempt nodes.
type PushAttemptUpsertBulk struct {
	create *PushAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PushAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pushattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PushAttemptUpsertBulk) UpdateNewValues() *PushAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pushattempt.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(pushattempt.FieldTaskID)
			}
			if _, exists := b.mutation.ReceiverID(); exists {
				s.SetIgnore(pushattempt.FieldReceiverID)
			}
			if _, exists := b.mutation.Cycle(); exists {
				s.SetIgnore(pushattempt.FieldCycle)
			}
			if _, exists := b.mutation.Attempt(); exists {
				s.SetIgnore(pushattempt.FieldAttempt)
			}
			if _, exists := b.mutation.HTTPStatus(); exists {
				s.SetIgnore(pushattempt.FieldHTTPStatus)
			}
			if _, exists := b.mutation.Outcome(); exists {
				s.SetIgnore(pushattempt.FieldOutcome)
			}
			if _, exists := b.mutation.DurationMs(); exists {
				s.SetIgnore(pushattempt.FieldDurationMs)
			}
			if _, exists := b.mutation.Error(); exists {
				s.SetIgnore(pushattempt.FieldError)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pushattempt.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PushAttemptUpsertBulk) Ignore() *PushAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushAttemptUpsertBulk) DoNothing() *PushAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *PushAttemptUpsertBulk) Update(set func(*PushAttemptUpsert)) *PushAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *PushAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PushAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
