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
	"github.com/docflowhq/docflow/gen/ent/queuemessage"
	"github.com/google/uuid"
)

// QueueMessageCreate is the builder for creating a QueueMessage entity.
type QueueMessageCreate struct {
	config
	mutation *QueueMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueue sets the "queue" field.
func (_c *QueueMessageCreate) SetQueue(v string) *QueueMessageCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QueueMessageCreate) SetPayload(v json.RawMessage) *QueueMessageCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetVisibleAt sets the "visible_at" field.
func (_c *QueueMessageCreate) SetVisibleAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetVisibleAt(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *QueueMessageCreate) SetAttempts(v int) *QueueMessageCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableAttempts(v *int) *QueueMessageCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueueMessageCreate) SetCreatedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableCreatedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueMessageCreate) SetID(v uuid.UUID) *QueueMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableID(v *uuid.UUID) *QueueMessageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_c *QueueMessageCreate) Mutation() *QueueMessageMutation {
	return _c.mutation
}

// Save creates the QueueMessage in the database.
func (_c *QueueMessageCreate) Save(ctx context.Context) (*QueueMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueMessageCreate) SaveX(ctx context.Context) *QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueMessageCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := queuemessage.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queuemessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := queuemessage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueMessageCreate) check() error {
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "QueueMessage.queue"`)}
	}
	if v, ok := _c.mutation.Queue(); ok {
		if err := queuemessage.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.queue": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "QueueMessage.payload"`)}
	}
	if _, ok := _c.mutation.VisibleAt(); !ok {
		return &ValidationError{Name: "visible_at", err: errors.New(`ent: missing required field "QueueMessage.visible_at"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "QueueMessage.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueueMessage.created_at"`)}
	}
	return nil
}

func (_c *QueueMessageCreate) sqlSave(ctx context.Context) (*QueueMessage, error) {
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

func (_c *QueueMessageCreate) createSpec() (*QueueMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuemessage.Table, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(queuemessage.FieldQueue, field.TypeString, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(queuemessage.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.VisibleAt(); ok {
		_spec.SetField(queuemessage.FieldVisibleAt, field.TypeTime, value)
		_node.VisibleAt = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(queuemessage.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queuemessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueMessage.Create().
//		SetQueue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueMessageUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueMessageCreate) OnConflict(opts ...sql.ConflictOption) *QueueMessageUpsertOne {
	_c.conflict = opts
	return &QueueMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueMessageCreate) OnConflictColumns(columns ...string) *QueueMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueMessageUpsertOne{
		create: _c,
	}
}

type (
	// QueueMessageUpsertOne is the builder for "upsert"-ing
	//  one QueueMessage node.
	QueueMessageUpsertOne struct {
		create *QueueMessageCreate
	}

	// QueueMessageUpsert is the "OnConflict" setter.
	QueueMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetVisibleAt sets the "visible_at" field.
func (u *QueueMessageUpsert) SetVisibleAt(v time.Time) *QueueMessageUpsert {
	u.Set(queuemessage.FieldVisibleAt, v)
	return u
}

// UpdateVisibleAt sets the "visible_at" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateVisibleAt() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldVisibleAt)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *QueueMessageUpsert) SetAttempts(v int) *QueueMessageUpsert {
	u.Set(queuemessage.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateAttempts() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *QueueMessageUpsert) AddAttempts(v int) *QueueMessageUpsert {
	u.Add(queuemessage.FieldAttempts, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuemessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueMessageUpsertOne) UpdateNewValues() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(queuemessage.FieldID)
		}
		if _, exists := u.create.mutation.Queue(); exists {
			s.SetIgnore(queuemessage.FieldQueue)
		}
		if _, exists := u.create.mutation.Payload(); exists {
			s.SetIgnore(queuemessage.FieldPayload)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(queuemessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueueMessageUpsertOne) Ignore() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueMessageUpsertOne) DoNothing() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueMessageCreate.OnConflict
// documentation for more info.
func (u *QueueMessageUpsertOne) Update(set func(*QueueMessageUpsert)) *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetVisibleAt sets the "visible_at" field.
func (u *QueueMessageUpsertOne) SetVisibleAt(v time.Time) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetVisibleAt(v)
	})
}

// UpdateVisibleAt sets the "visible_at" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateVisibleAt() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateVisibleAt()
	})
}

// SetAttempts sets the "attempts" field.
func (u *QueueMessageUpsertOne) SetAttempts(v int) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *QueueMessageUpsertOne) AddAttempts(v int) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateAttempts() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateAttempts()
	})
}

// Exec executes the query.
func (u *QueueMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueueMessageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QueueMessageUpsertOne.ID is not supported by MySQL driver. Use QueueMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueueMessageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueueMessageCreateBulk is the builder for creating many QueueMessage entities in bulk.
type QueueMessageCreateBulk struct {
	config
	err      error
	builders []*QueueMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the QueueMessage entities in the database.
func (_c *QueueMessageCreateBulk) Save(ctx context.Context) ([]*QueueMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueMessageMutation)
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
func (_c *QueueMessageCreateBulk) SaveX(ctx context.Context) []*QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueMessageUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueueMessageUpsertBulk {
	_c.conflict = opts
	return &QueueMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueMessageCreateBulk) OnConflictColumns(columns ...string) *QueueMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueMessageUpsertBulk{
		create: _c,
	}
}

// QueueMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of QueueMessage nodes.
type QueueMessageUpsertBulk struct {
	create *QueueMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuemessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueMessageUpsertBulk) UpdateNewValues() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(queuemessage.FieldID)
			}
			if _, exists := b.mutation.Queue(); exists {
				s.SetIgnore(queuemessage.FieldQueue)
			}
			if _, exists := b.mutation.Payload(); exists {
				s.SetIgnore(queuemessage.FieldPayload)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(queuemessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueueMessageUpsertBulk) Ignore() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueMessageUpsertBulk) DoNothing() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueMessageCreateBulk.OnConflict
// documentation for more info.
func (u *QueueMessageUpsertBulk) Update(set func(*QueueMessageUpsert)) *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetVisibleAt sets the "visible_at" field.
func (u *QueueMessageUpsertBulk) SetVisibleAt(v time.Time) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetVisibleAt(v)
	})
}

// UpdateVisibleAt sets the "visible_at" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateVisibleAt() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateVisibleAt()
	})
}

// SetAttempts sets the "attempts" field.
func (u *QueueMessageUpsertBulk) SetAttempts(v int) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *QueueMessageUpsertBulk) AddAttempts(v int) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateAttempts() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateAttempts()
	})
}

// Exec executes the query.
func (u *QueueMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueueMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
