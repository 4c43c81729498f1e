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
	"github.com/docflowhq/docflow/gen/ent/fingerprint"
	"github.com/google/uuid"
)

// FingerprintCreate is the builder for creating a Fingerprint entity.
type FingerprintCreate struct {
	config
	mutation *FingerprintMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFingerprint sets the "fingerprint" field.
func (_c *FingerprintCreate) SetFingerprint(v string) *FingerprintCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetSourceTaskID sets the "source_task_id" field.
func (_c *FingerprintCreate) SetSourceTaskID(v string) *FingerprintCreate {
	_c.mutation.SetSourceTaskID(v)
	return _c
}

// SetExtractedData sets the "extracted_data" field.
func (_c *FingerprintCreate) SetExtractedData(v json.RawMessage) *FingerprintCreate {
	_c.mutation.SetExtractedData(v)
	return _c
}

// SetConfidenceScores sets the "confidence_scores" field.
func (_c *FingerprintCreate) SetConfidenceScores(v json.RawMessage) *FingerprintCreate {
	_c.mutation.SetConfidenceScores(v)
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *FingerprintCreate) SetPageCount(v int) *FingerprintCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillablePageCount(v *int) *FingerprintCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *FingerprintCreate) SetRecordedAt(v time.Time) *FingerprintCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableRecordedAt(v *time.Time) *FingerprintCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FingerprintCreate) SetID(v uuid.UUID) *FingerprintCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableID(v *uuid.UUID) *FingerprintCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the FingerprintMutation object of the builder.
func (_c *FingerprintCreate) Mutation() *FingerprintMutation {
	return _c.mutation
}

// Save creates the Fingerprint in the database.
func (_c *FingerprintCreate) Save(ctx context.Context) (*Fingerprint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FingerprintCreate) SaveX(ctx context.Context) *Fingerprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FingerprintCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FingerprintCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FingerprintCreate) defaults() {
	if _, ok := _c.mutation.PageCount(); !ok {
		v := fingerprint.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := fingerprint.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fingerprint.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FingerprintCreate) check() error {
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Fingerprint.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := fingerprint.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceTaskID(); !ok {
		return &ValidationError{Name: "source_task_id", err: errors.New(`ent: missing required field "Fingerprint.source_task_id"`)}
	}
	if v, ok := _c.mutation.SourceTaskID(); ok {
		if err := fingerprint.SourceTaskIDValidator(v); err != nil {
			return &ValidationError{Name: "source_task_id", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.source_task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "Fingerprint.page_count"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "Fingerprint.recorded_at"`)}
	}
	return nil
}

func (_c *FingerprintCreate) sqlSave(ctx context.Context) (*Fingerprint, error) {
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

func (_c *FingerprintCreate) createSpec() (*Fingerprint, *sqlgraph.CreateSpec) {
	var (
		_node = &Fingerprint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fingerprint.Table, sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(fingerprint.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.SourceTaskID(); ok {
		_spec.SetField(fingerprint.FieldSourceTaskID, field.TypeString, value)
		_node.SourceTaskID = value
	}
	if value, ok := _c.mutation.ExtractedData(); ok {
		_spec.SetField(fingerprint.FieldExtractedData, field.TypeJSON, value)
		_node.ExtractedData = value
	}
	if value, ok := _c.mutation.ConfidenceScores(); ok {
		_spec.SetField(fingerprint.FieldConfidenceScores, field.TypeJSON, value)
		_node.ConfidenceScores = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(fingerprint.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(fingerprint.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Fingerprint.Create().
//		SetFingerprint(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FingerprintUpsert) {
//			SetFingerprint(v+v).
//		}).
//		Exec(ctx)
func (_c *FingerprintCreate) OnConflict(opts ...sql.ConflictOption) *FingerprintUpsertOne {
	_c.conflict = opts
	return &FingerprintUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FingerprintCreate) OnConflictColumns(columns ...string) *FingerprintUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FingerprintUpsertOne{
		create: _c,
	}
}

type (
	// FingerprintUpsertOne is the builder for "upsert"-ing
	//  one Fingerprint node.
	FingerprintUpsertOne struct {
		create *FingerprintCreate
	}

	// FingerprintUpsert is the "OnConflict" setter.
	FingerprintUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fingerprint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FingerprintUpsertOne) UpdateNewValues() *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(fingerprint.FieldID)
		}
		if _, exists := u.create.mutation.Fingerprint(); exists {
			s.SetIgnore(fingerprint.FieldFingerprint)
		}
		if _, exists := u.create.mutation.SourceTaskID(); exists {
			s.SetIgnore(fingerprint.FieldSourceTaskID)
		}
		if _, exists := u.create.mutation.ExtractedData(); exists {
			s.SetIgnore(fingerprint.FieldExtractedData)
		}
		if _, exists := u.create.mutation.ConfidenceScores(); exists {
			s.SetIgnore(fingerprint.FieldConfidenceScores)
		}
		if _, exists := u.create.mutation.PageCount(); exists {
			s.SetIgnore(fingerprint.FieldPageCount)
		}
		if _, exists := u.create.mutation.RecordedAt(); exists {
			s.SetIgnore(fingerprint.FieldRecordedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FingerprintUpsertOne) Ignore() *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FingerprintUpsertOne) DoNothing() *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FingerprintCreate.OnConflict
// documentation for more info.
func (u *FingerprintUpsertOne) Update(set func(*FingerprintUpsert)) *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FingerprintUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *FingerprintUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FingerprintCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FingerprintUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FingerprintUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FingerprintUpsertOne.ID is not supported by MySQL driver. Use FingerprintUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FingerprintUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FingerprintCreateBulk is the builder for creating many Fingerprint entities in bulk.
type FingerprintCreateBulk struct {
	config
	err      error
	builders []*FingerprintCreate
	conflict []sql.ConflictOption
}

// Save creates the Fingerprint entities in the database.
func (_c *FingerprintCreateBulk) Save(ctx context.Context) ([]*Fingerprint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Fingerprint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FingerprintMutation)
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
func (_c *FingerprintCreateBulk) SaveX(ctx context.Context) []*Fingerprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FingerprintCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FingerprintCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Fingerprint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FingerprintUpsert) {
//			SetFingerprint(v+v).
//		}).
//		Exec(ctx)
func (_c *FingerprintCreateBulk) OnConflict(opts ...sql.ConflictOption) *FingerprintUpsertBulk {
	_c.conflict = opts
	return &FingerprintUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FingerprintCreateBulk) OnConflictColumns(columns ...string) *FingerprintUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FingerprintUpsertBulk{
		create: _c,
	}
}

// FingerprintUpsertBulk is the builder for "upsert"-ing
// a bulk of Fingerprint nodes.
type FingerprintUpsertBulk struct {
	create *FingerprintCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fingerprint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FingerprintUpsertBulk) UpdateNewValues() *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(fingerprint.FieldID)
			}
			if _, exists := b.mutation.Fingerprint(); exists {
				s.SetIgnore(fingerprint.FieldFingerprint)
			}
			if _, exists := b.mutation.SourceTaskID(); exists {
				s.SetIgnore(fingerprint.FieldSourceTaskID)
			}
			if _, exists := b.mutation.ExtractedData(); exists {
				s.SetIgnore(fingerprint.FieldExtractedData)
			}
			if _, exists := b.mutation.ConfidenceScores(); exists {
				s.SetIgnore(fingerprint.FieldConfidenceScores)
			}
			if _, exists := b.mutation.PageCount(); exists {
				s.SetIgnore(fingerprint.FieldPageCount)
			}
			if _, exists := b.mutation.RecordedAt(); exists {
				s.SetIgnore(fingerprint.FieldRecordedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FingerprintUpsertBulk) Ignore() *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FingerprintUpsertBulk) DoNothing() *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FingerprintCreateBulk.OnConflict
// documentation for more info.
func (u *FingerprintUpsertBulk) Update(set func(*FingerprintUpsert)) *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FingerprintUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *FingerprintUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FingerprintCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FingerprintCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FingerprintUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
