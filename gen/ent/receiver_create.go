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
	"github.com/docflowhq/docflow/gen/ent/receiver"
	"github.com/docflowhq/docflow/gen/ent/rule"
	"github.com/google/uuid"
)

// ReceiverCreate is the builder for creating a Receiver entity.
type ReceiverCreate struct {
	config
	mutation *ReceiverMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ReceiverCreate) SetName(v string) *ReceiverCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *ReceiverCreate) SetEndpoint(v string) *ReceiverCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetAuthKind sets the "auth_kind" field.
func (_c *ReceiverCreate) SetAuthKind(v string) *ReceiverCreate {
	_c.mutation.SetAuthKind(v)
	return _c
}

// SetNillableAuthKind sets the "auth_kind" field if the given value is not nil.
func (_c *ReceiverCreate) SetNillableAuthKind(v *string) *ReceiverCreate {
	if v != nil {
		_c.SetAuthKind(*v)
	}
	return _c
}

// SetAuthUser sets the "auth_user" field.
func (_c *ReceiverCreate) SetAuthUser(v string) *ReceiverCreate {
	_c.mutation.SetAuthUser(v)
	return _c
}

// SetNillableAuthUser sets the "auth_user" field if the given value is not nil.
func (_c *ReceiverCreate) SetNillableAuthUser(v *string) *ReceiverCreate {
	if v != nil {
		_c.SetAuthUser(*v)
	}
	return _c
}

// SetAuthToken sets the "auth_token" field.
func (_c *ReceiverCreate) SetAuthToken(v string) *ReceiverCreate {
	_c.mutation.SetAuthToken(v)
	return _c
}

// SetNillableAuthToken sets the "auth_token" field if the given value is not nil.
func (_c *ReceiverCreate) SetNillableAuthToken(v *string) *ReceiverCreate {
	if v != nil {
		_c.SetAuthToken(*v)
	}
	return _c
}

// SetSigningSecret sets the "signing_secret" field.
func (_c *ReceiverCreate) SetSigningSecret(v string) *ReceiverCreate {
	_c.mutation.SetSigningSecret(v)
	return _c
}

// SetBodyTemplate sets the "body_template" field.
func (_c *ReceiverCreate) SetBodyTemplate(v string) *ReceiverCreate {
	_c.mutation.SetBodyTemplate(v)
	return _c
}

// SetNillableBodyTemplate sets the "body_template" field if the given value is not nil.
func (_c *ReceiverCreate) SetNillableBodyTemplate(v *string) *ReceiverCreate {
	if v != nil {
		_c.SetBodyTemplate(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ReceiverCreate) SetActive(v bool) *ReceiverCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ReceiverCreate) SetNillableActive(v *bool) *ReceiverCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReceiverCreate) SetCreatedAt(v time.Time) *ReceiverCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReceiverCreate) SetNillableCreatedAt(v *time.Time) *ReceiverCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiverCreate) SetID(v uuid.UUID) *ReceiverCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiverCreate) SetNillableID(v *uuid.UUID) *ReceiverCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddRuleIDs adds the "rules" edge to the Rule entity by IDs.
func (_c *ReceiverCreate) AddRuleIDs(ids ...uuid.UUID) *ReceiverCreate {
	_c.mutation.AddRuleIDs(ids...)
	return _c
}

// AddRules adds the "rules" edges to the Rule entity.
func (_c *ReceiverCreate) AddRules(v ...*Rule) *ReceiverCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRuleIDs(ids...)
}

// Mutation returns the ReceiverMutation object of the builder.
func (_c *ReceiverCreate) Mutation() *ReceiverMutation {
	return _c.mutation
}

// Save creates the Receiver in the database.
func (_c *ReceiverCreate) Save(ctx context.Context) (*Receiver, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiverCreate) SaveX(ctx context.Context) *Receiver {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiverCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiverCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiverCreate) defaults() {
	if _, ok := _c.mutation.AuthKind(); !ok {
		v := receiver.DefaultAuthKind
		_c.mutation.SetAuthKind(v)
	}
	if _, ok := _c.mutation.AuthUser(); !ok {
		v := receiver.DefaultAuthUser
		_c.mutation.SetAuthUser(v)
	}
	if _, ok := _c.mutation.AuthToken(); !ok {
		v := receiver.DefaultAuthToken
		_c.mutation.SetAuthToken(v)
	}
	if _, ok := _c.mutation.BodyTemplate(); !ok {
		v := receiver.DefaultBodyTemplate
		_c.mutation.SetBodyTemplate(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := receiver.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := receiver.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receiver.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiverCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Receiver.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := receiver.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Receiver.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Endpoint(); !ok {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required field "Receiver.endpoint"`)}
	}
	if v, ok := _c.mutation.Endpoint(); ok {
		if err := receiver.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "Receiver.endpoint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AuthKind(); !ok {
		return &ValidationError{Name: "auth_kind", err: errors.New(`ent: missing required field "Receiver.auth_kind"`)}
	}
	if v, ok := _c.mutation.AuthKind(); ok {
		if err := receiver.AuthKindValidator(v); err != nil {
			return &ValidationError{Name: "auth_kind", err: fmt.Errorf(`ent: validator failed for field "Receiver.auth_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AuthUser(); !ok {
		return &ValidationError{Name: "auth_user", err: errors.New(`ent: missing required field "Receiver.auth_user"`)}
	}
	if _, ok := _c.mutation.AuthToken(); !ok {
		return &ValidationError{Name: "auth_token", err: errors.New(`ent: missing required field "Receiver.auth_token"`)}
	}
	if _, ok := _c.mutation.SigningSecret(); !ok {
		return &ValidationError{Name: "signing_secret", err: errors.New(`ent: missing required field "Receiver.signing_secret"`)}
	}
	if v, ok := _c.mutation.SigningSecret(); ok {
		if err := receiver.SigningSecretValidator(v); err != nil {
			return &ValidationError{Name: "signing_secret", err: fmt.Errorf(`ent: validator failed for field "Receiver.signing_secret": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BodyTemplate(); !ok {
		return &ValidationError{Name: "body_template", err: errors.New(`ent: missing required field "Receiver.body_template"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Receiver.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Receiver.created_at"`)}
	}
	return nil
}

func (_c *ReceiverCreate) sqlSave(ctx context.Context) (*Receiver, error) {
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

func (_c *ReceiverCreate) createSpec() (*Receiver, *sqlgraph.CreateSpec) {
	var (
		_node = &Receiver{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receiver.Table, sqlgraph.NewFieldSpec(receiver.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(receiver.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(receiver.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.AuthKind(); ok {
		_spec.SetField(receiver.FieldAuthKind, field.TypeString, value)
		_node.AuthKind = value
	}
	if value, ok := _c.mutation.AuthUser(); ok {
		_spec.SetField(receiver.FieldAuthUser, field.TypeString, value)
		_node.AuthUser = value
	}
	if value, ok := _c.mutation.AuthToken(); ok {
		_spec.SetField(receiver.FieldAuthToken, field.TypeString, value)
		_node.AuthToken = value
	}
	if value, ok := _c.mutation.SigningSecret(); ok {
		_spec.SetField(receiver.FieldSigningSecret, field.TypeString, value)
		_node.SigningSecret = value
	}
	if value, ok := _c.mutation.BodyTemplate(); ok {
		_spec.SetField(receiver.FieldBodyTemplate, field.TypeString, value)
		_node.BodyTemplate = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(receiver.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(receiver.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   receiver.RulesTable,
			Columns: receiver.RulesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID),
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
//	client.Receiver.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReceiverUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ReceiverCreate) OnConflict(opts ...sql.ConflictOption) *ReceiverUpsertOne {
	_c.conflict = opts
	return &ReceiverUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Receiver.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReceiverCreate) OnConflictColumns(columns ...string) *ReceiverUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReceiverUpsertOne{
		create: _c,
	}
}

type (
	// ReceiverUpsertOne is the builder for "upsert"-ing
	//  one Receiver node.
	ReceiverUpsertOne struct {
		create *ReceiverCreate
	}

	// ReceiverUpsert is the "OnConflict" setter.
	ReceiverUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ReceiverUpsert) SetName(v string) *ReceiverUpsert {
	u.Set(receiver.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ReceiverUpsert) UpdateName() *ReceiverUpsert {
	u.SetExcluded(receiver.FieldName)
	return u
}

// SetEndpoint sets the "endpoint" field.
func (u *ReceiverUpsert) SetEndpoint(v string) *ReceiverUpsert {
	u.Set(receiver.FieldEndpoint, v)
	return u
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *ReceiverUpsert) UpdateEndpoint() *ReceiverUpsert {
	u.SetExcluded(receiver.FieldEndpoint)
	return u
}

// SetAuthKind sets the "auth_kind" field.
func (u *ReceiverUpsert) SetAuthKind(v string) *ReceiverUpsert {
	u.Set(receiver.FieldAuthKind, v)
	return u
}

// UpdateAuthKind sets the "auth_kind" field to the value that was provided on create.
func (u *ReceiverUpsert) UpdateAuthKind() *ReceiverUpsert {
	u.SetExcluded(receiver.FieldAuthKind)
	return u
}

// SetAuthUser sets the "auth_user" field.
func (u *ReceiverUpsert) SetAuthUser(v string) *ReceiverUpsert {
	u.Set(receiver.FieldAuthUser, v)
	return u
}

// UpdateAuthUser sets the "auth_user" field to the value that was provided on create.
func (u *ReceiverUpsert) UpdateAuthUser() *ReceiverUpsert {
	u.SetExcluded(receiver.FieldAuthUser)
	return u
}

// SetAuthToken sets the "auth_token" field.
func (u *ReceiverUpsert) SetAuthToken(v string) *ReceiverUpsert {
	u.Set(receiver.FieldAuthToken, v)
	return u
}

// UpdateAuthToken sets the "auth_token" field to the value that was provided on create.
func (u *ReceiverUpsert) UpdateAuthToken() *ReceiverUpsert {
	u.SetExcluded(receiver.FieldAuthToken)
	return u
}

// SetSigningSecret sets the "signing_secret" field.
func (u *ReceiverUpsert) SetSigningSecret(v string) *ReceiverUpsert {
	u.Set(receiver.FieldSigningSecret, v)
	return u
}

// UpdateSigningSecret sets the "signing_secret" field to the value that was provided on create.
func (u *ReceiverUpsert) UpdateSigningSecret() *ReceiverUpsert {
	u.SetExcluded(receiver.FieldSigningSecret)
	return u
}

// SetBodyTemplate sets the "body_template" field.
func (u *ReceiverUpsert) SetBodyTemplate(v string) *ReceiverUpsert {
	u.Set(receiver.FieldBodyTemplate, v)
	return u
}

// UpdateBodyTemplate sets the "body_template" field to the value that was provided on create.
func (u *ReceiverUpsert) UpdateBodyTemplate() *ReceiverUpsert {
	u.SetExcluded(receiver.FieldBodyTemplate)
	return u
}

// SetActive sets the "active" field.
func (u *ReceiverUpsert) SetActive(v bool) *ReceiverUpsert {
	u.Set(receiver.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ReceiverUpsert) UpdateActive() *ReceiverUpsert {
	u.SetExcluded(receiver.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Receiver.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(receiver.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReceiverUpsertOne) UpdateNewValues() *ReceiverUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(receiver.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(receiver.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Receiver.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReceiverUpsertOne) Ignore() *ReceiverUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReceiverUpsertOne) DoNothing() *ReceiverUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReceiverCreate.OnConflict
// documentation for more info.
func (u *ReceiverUpsertOne) Update(set func(*ReceiverUpsert)) *ReceiverUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReceiverUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ReceiverUpsertOne) SetName(v string) *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ReceiverUpsertOne) UpdateName() *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateName()
	})
}

// SetEndpoint sets the "endpoint" field.
func (u *ReceiverUpsertOne) SetEndpoint(v string) *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetEndpoint(v)
	})
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *ReceiverUpsertOne) UpdateEndpoint() *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateEndpoint()
	})
}

// SetAuthKind sets the "auth_kind" field.
func (u *ReceiverUpsertOne) SetAuthKind(v string) *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetAuthKind(v)
	})
}

// UpdateAuthKind sets the "auth_kind" field to the value that was provided on create.
func (u *ReceiverUpsertOne) UpdateAuthKind() *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateAuthKind()
	})
}

// SetAuthUser sets the "auth_user" field.
func (u *ReceiverUpsertOne) SetAuthUser(v string) *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetAuthUser(v)
	})
}

// UpdateAuthUser sets the "auth_user" field to the value that was provided on create.
func (u *ReceiverUpsertOne) UpdateAuthUser() *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateAuthUser()
	})
}

// SetAuthToken sets the "auth_token" field.
func (u *ReceiverUpsertOne) SetAuthToken(v string) *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetAuthToken(v)
	})
}

// UpdateAuthToken sets the "auth_token" field to the value that was provided on create.
func (u *ReceiverUpsertOne) UpdateAuthToken() *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateAuthToken()
	})
}

// SetSigningSecret sets the "signing_secret" field.
func (u *ReceiverUpsertOne) SetSigningSecret(v string) *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetSigningSecret(v)
	})
}

// UpdateSigningSecret sets the "signing_secret" field to the value that was provided on create.
func (u *ReceiverUpsertOne) UpdateSigningSecret() *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateSigningSecret()
	})
}

// SetBodyTemplate sets the "body_template" field.
func (u *ReceiverUpsertOne) SetBodyTemplate(v string) *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetBodyTemplate(v)
	})
}

// UpdateBodyTemplate sets the "body_template" field to the value that was provided on create.
func (u *ReceiverUpsertOne) UpdateBodyTemplate() *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateBodyTemplate()
	})
}

// SetActive sets the "active" field.
func (u *ReceiverUpsertOne) SetActive(v bool) *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ReceiverUpsertOne) UpdateActive() *ReceiverUpsertOne {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *ReceiverUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReceiverCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReceiverUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReceiverUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReceiverUpsertOne.ID is not supported by MySQL driver. Use ReceiverUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReceiverUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReceiverCreateBulk is the builder for creating many Receiver entities in bulk.
type ReceiverCreateBulk struct {
	config
	err      error
	builders []*ReceiverCreate
	conflict []sql.ConflictOption
}

// Save creates the Receiver entities in the database.
func (_c *ReceiverCreateBulk) Save(ctx context.Context) ([]*Receiver, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Receiver, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiverMutation)
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
func (_c *ReceiverCreateBulk) SaveX(ctx context.Context) []*Receiver {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiverCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiverCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Receiver.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReceiverUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ReceiverCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReceiverUpsertBulk {
	_c.conflict = opts
	return &ReceiverUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Receiver.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReceiverCreateBulk) OnConflictColumns(columns ...string) *ReceiverUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReceiverUpsertBulk{
		create: _c,
	}
}

// ReceiverUpsertBulk is the builder for "upsert"-ing
// a bulk of Receiver nodes.
type ReceiverUpsertBulk struct {
	create *ReceiverCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Receiver.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(receiver.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReceiverUpsertBulk) UpdateNewValues() *ReceiverUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(receiver.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(receiver.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Receiver.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReceiverUpsertBulk) Ignore() *ReceiverUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReceiverUpsertBulk) DoNothing() *ReceiverUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReceiverCreateBulk.OnConflict
// documentation for more info.
func (u *ReceiverUpsertBulk) Update(set func(*ReceiverUpsert)) *ReceiverUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReceiverUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ReceiverUpsertBulk) SetName(v string) *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ReceiverUpsertBulk) UpdateName() *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateName()
	})
}

// SetEndpoint sets the "endpoint" field.
func (u *ReceiverUpsertBulk) SetEndpoint(v string) *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetEndpoint(v)
	})
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *ReceiverUpsertBulk) UpdateEndpoint() *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateEndpoint()
	})
}

// SetAuthKind sets the "auth_kind" field.
func (u *ReceiverUpsertBulk) SetAuthKind(v string) *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetAuthKind(v)
	})
}

// UpdateAuthKind sets the "auth_kind" field to the value that was provided on create.
func (u *ReceiverUpsertBulk) UpdateAuthKind() *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateAuthKind()
	})
}

// SetAuthUser sets the "auth_user" field.
func (u *ReceiverUpsertBulk) SetAuthUser(v string) *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetAuthUser(v)
	})
}

// UpdateAuthUser sets the "auth_user" field to the value that was provided on create.
func (u *ReceiverUpsertBulk) UpdateAuthUser() *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateAuthUser()
	})
}

// SetAuthToken sets the "auth_token" field.
func (u *ReceiverUpsertBulk) SetAuthToken(v string) *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetAuthToken(v)
	})
}

// UpdateAuthToken sets the "auth_token" field to the value that was provided on create.
func (u *ReceiverUpsertBulk) UpdateAuthToken() *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateAuthToken()
	})
}

// SetSigningSecret sets the "signing_secret" field.
func (u *ReceiverUpsertBulk) SetSigningSecret(v string) *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetSigningSecret(v)
	})
}

// UpdateSigningSecret sets the "signing_secret" field to the value that was provided on create.
func (u *ReceiverUpsertBulk) UpdateSigningSecret() *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateSigningSecret()
	})
}

// SetBodyTemplate sets the "body_template" field.
func (u *ReceiverUpsertBulk) SetBodyTemplate(v string) *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetBodyTemplate(v)
	})
}

// UpdateBodyTemplate sets the "body_template" field to the value that was provided on create.
func (u *ReceiverUpsertBulk) UpdateBodyTemplate() *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateBodyTemplate()
	})
}

// SetActive sets the "active" field.
func (u *ReceiverUpsertBulk) SetActive(v bool) *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ReceiverUpsertBulk) UpdateActive() *ReceiverUpsertBulk {
	return u.Update(func(s *ReceiverUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *ReceiverUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReceiverCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReceiverCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReceiverUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
