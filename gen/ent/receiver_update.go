// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/docflowhq/docflow/gen/ent/receiver"
	"github.com/docflowhq/docflow/gen/ent/rule"
	"github.com/google/uuid"
)

// ReceiverUpdate is the builder for updating Receiver entities.
type ReceiverUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiverMutation
}

// Where appends a list predicates to the ReceiverUpdate builder.
func (_u *ReceiverUpdate) Where(ps ...predicate.Receiver) *ReceiverUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ReceiverUpdate) SetName(v string) *ReceiverUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ReceiverUpdate) SetNillableName(v *string) *ReceiverUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *ReceiverUpdate) SetEndpoint(v string) *ReceiverUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *ReceiverUpdate) SetNillableEndpoint(v *string) *ReceiverUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetAuthKind sets the "auth_kind" field.
func (_u *ReceiverUpdate) SetAuthKind(v string) *ReceiverUpdate {
	_u.mutation.SetAuthKind(v)
	return _u
}

// SetNillableAuthKind sets the "auth_kind" field if the given value is not nil.
func (_u *ReceiverUpdate) SetNillableAuthKind(v *string) *ReceiverUpdate {
	if v != nil {
		_u.SetAuthKind(*v)
	}
	return _u
}

// SetAuthUser sets the "auth_user" field.
func (_u *ReceiverUpdate) SetAuthUser(v string) *ReceiverUpdate {
	_u.mutation.SetAuthUser(v)
	return _u
}

// SetNillableAuthUser sets the "auth_user" field if the given value is not nil.
func (_u *ReceiverUpdate) SetNillableAuthUser(v *string) *ReceiverUpdate {
	if v != nil {
		_u.SetAuthUser(*v)
	}
	return _u
}

// SetAuthToken sets the "auth_token" field.
func (_u *ReceiverUpdate) SetAuthToken(v string) *ReceiverUpdate {
	_u.mutation.SetAuthToken(v)
	return _u
}

// SetNillableAuthToken sets the "auth_token" field if the given value is not nil.
func (_u *ReceiverUpdate) SetNillableAuthToken(v *string) *ReceiverUpdate {
	if v != nil {
		_u.SetAuthToken(*v)
	}
	return _u
}

// SetSigningSecret sets the "signing_secret" field.
func (_u *ReceiverUpdate) SetSigningSecret(v string) *ReceiverUpdate {
	_u.mutation.SetSigningSecret(v)
	return _u
}

// SetNillableSigningSecret sets the "signing_secret" field if the given value is not nil.
func (_u *ReceiverUpdate) SetNillableSigningSecret(v *string) *ReceiverUpdate {
	if v != nil {
		_u.SetSigningSecret(*v)
	}
	return _u
}

// SetBodyTemplate sets the "body_template" field.
func (_u *ReceiverUpdate) SetBodyTemplate(v string) *ReceiverUpdate {
	_u.mutation.SetBodyTemplate(v)
	return _u
}

// SetNillableBodyTemplate sets the "body_template" field if the given value is not nil.
func (_u *ReceiverUpdate) SetNillableBodyTemplate(v *string) *ReceiverUpdate {
	if v != nil {
		_u.SetBodyTemplate(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ReceiverUpdate) SetActive(v bool) *ReceiverUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ReceiverUpdate) SetNillableActive(v *bool) *ReceiverUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// AddRuleIDs adds the "rules" edge to the Rule entity by IDs.
func (_u *ReceiverUpdate) AddRuleIDs(ids ...uuid.UUID) *ReceiverUpdate {
	_u.mutation.AddRuleIDs(ids...)
	return _u
}

// AddRules adds the "rules" edges to the Rule entity.
func (_u *ReceiverUpdate) AddRules(v ...*Rule) *ReceiverUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRuleIDs(ids...)
}

// Mutation returns the ReceiverMutation object of the builder.
func (_u *ReceiverUpdate) Mutation() *ReceiverMutation {
	return _u.mutation
}

// ClearRules clears all "rules" edges to the Rule entity.
func (_u *ReceiverUpdate) ClearRules() *ReceiverUpdate {
	_u.mutation.ClearRules()
	return _u
}

// RemoveRuleIDs removes the "rules" edge to Rule entities by IDs.
func (_u *ReceiverUpdate) RemoveRuleIDs(ids ...uuid.UUID) *ReceiverUpdate {
	_u.mutation.RemoveRuleIDs(ids...)
	return _u
}

// RemoveRules removes "rules" edges to Rule entities.
func (_u *ReceiverUpdate) RemoveRules(v ...*Rule) *ReceiverUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRuleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiverUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiverUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiverUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiverUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiverUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := receiver.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Receiver.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := receiver.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "Receiver.endpoint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthKind(); ok {
		if err := receiver.AuthKindValidator(v); err != nil {
			return &ValidationError{Name: "auth_kind", err: fmt.Errorf(`ent: validator failed for field "Receiver.auth_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SigningSecret(); ok {
		if err := receiver.SigningSecretValidator(v); err != nil {
			return &ValidationError{Name: "signing_secret", err: fmt.Errorf(`ent: validator failed for field "Receiver.signing_secret": %w`, err)}
		}
	}
	return nil
}

func (_u *ReceiverUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiver.Table, receiver.Columns, sqlgraph.NewFieldSpec(receiver.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(receiver.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(receiver.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthKind(); ok {
		_spec.SetField(receiver.FieldAuthKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthUser(); ok {
		_spec.SetField(receiver.FieldAuthUser, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthToken(); ok {
		_spec.SetField(receiver.FieldAuthToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.SigningSecret(); ok {
		_spec.SetField(receiver.FieldSigningSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyTemplate(); ok {
		_spec.SetField(receiver.FieldBodyTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(receiver.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.RulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRulesIDs(); len(nodes) > 0 && !_u.mutation.RulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RulesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiverUpdateOne is the builder for updating a single Receiver entity.
type ReceiverUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiverMutation
}

// SetName sets the "name" field.
func (_u *ReceiverUpdateOne) SetName(v string) *ReceiverUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ReceiverUpdateOne) SetNillableName(v *string) *ReceiverUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *ReceiverUpdateOne) SetEndpoint(v string) *ReceiverUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *ReceiverUpdateOne) SetNillableEndpoint(v *string) *ReceiverUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetAuthKind sets the "auth_kind" field.
func (_u *ReceiverUpdateOne) SetAuthKind(v string) *ReceiverUpdateOne {
	_u.mutation.SetAuthKind(v)
	return _u
}

// SetNillableAuthKind sets the "auth_kind" field if the given value is not nil.
func (_u *ReceiverUpdateOne) SetNillableAuthKind(v *string) *ReceiverUpdateOne {
	if v != nil {
		_u.SetAuthKind(*v)
	}
	return _u
}

// SetAuthUser sets the "auth_user" field.
func (_u *ReceiverUpdateOne) SetAuthUser(v string) *ReceiverUpdateOne {
	_u.mutation.SetAuthUser(v)
	return _u
}

// SetNillableAuthUser sets the "auth_user" field if the given value is not nil.
func (_u *ReceiverUpdateOne) SetNillableAuthUser(v *string) *ReceiverUpdateOne {
	if v != nil {
		_u.SetAuthUser(*v)
	}
	return _u
}

// SetAuthToken sets the "auth_token" field.
func (_u *ReceiverUpdateOne) SetAuthToken(v string) *ReceiverUpdateOne {
	_u.mutation.SetAuthToken(v)
	return _u
}

// SetNillableAuthToken sets the "auth_token" field if the given value is not nil.
func (_u *ReceiverUpdateOne) SetNillableAuthToken(v *string) *ReceiverUpdateOne {
	if v != nil {
		_u.SetAuthToken(*v)
	}
	return _u
}

// SetSigningSecret sets the "signing_secret" field.
func (_u *ReceiverUpdateOne) SetSigningSecret(v string) *ReceiverUpdateOne {
	_u.mutation.SetSigningSecret(v)
	return _u
}

// SetNillableSigningSecret sets the "signing_secret" field if the given value is not nil.
func (_u *ReceiverUpdateOne) SetNillableSigningSecret(v *string) *ReceiverUpdateOne {
	if v != nil {
		_u.SetSigningSecret(*v)
	}
	return _u
}

// SetBodyTemplate sets the "body_template" field.
func (_u *ReceiverUpdateOne) SetBodyTemplate(v string) *ReceiverUpdateOne {
	_u.mutation.SetBodyTemplate(v)
	return _u
}

// SetNillableBodyTemplate sets the "body_template" field if the given value is not nil.
func (_u *ReceiverUpdateOne) SetNillableBodyTemplate(v *string) *ReceiverUpdateOne {
	if v != nil {
		_u.SetBodyTemplate(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ReceiverUpdateOne) SetActive(v bool) *ReceiverUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ReceiverUpdateOne) SetNillableActive(v *bool) *ReceiverUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// AddRuleIDs adds the "rules" edge to the Rule entity by IDs.
func (_u *ReceiverUpdateOne) AddRuleIDs(ids ...uuid.UUID) *ReceiverUpdateOne {
	_u.mutation.AddRuleIDs(ids...)
	return _u
}

// AddRules adds the "rules" edges to the Rule entity.
func (_u *ReceiverUpdateOne) AddRules(v ...*Rule) *ReceiverUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRuleIDs(ids...)
}

// Mutation returns the ReceiverMutation object of the builder.
func (_u *ReceiverUpdateOne) Mutation() *ReceiverMutation {
	return _u.mutation
}

// ClearRules clears all "rules" edges to the Rule entity.
func (_u *ReceiverUpdateOne) ClearRules() *ReceiverUpdateOne {
	_u.mutation.ClearRules()
	return _u
}

// RemoveRuleIDs removes the "rules" edge to Rule entities by IDs.
func (_u *ReceiverUpdateOne) RemoveRuleIDs(ids ...uuid.UUID) *ReceiverUpdateOne {
	_u.mutation.RemoveRuleIDs(ids...)
	return _u
}

// RemoveRules removes "rules" edges to Rule entities.
func (_u *ReceiverUpdateOne) RemoveRules(v ...*Rule) *ReceiverUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRuleIDs(ids...)
}

// Where appends a list predicates to the ReceiverUpdate builder.
func (_u *ReceiverUpdateOne) Where(ps ...predicate.Receiver) *ReceiverUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiverUpdateOne) Select(field string, fields ...string) *ReceiverUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receiver entity.
func (_u *ReceiverUpdateOne) Save(ctx context.Context) (*Receiver, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiverUpdateOne) SaveX(ctx context.Context) *Receiver {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiverUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiverUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiverUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := receiver.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Receiver.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := receiver.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "Receiver.endpoint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthKind(); ok {
		if err := receiver.AuthKindValidator(v); err != nil {
			return &ValidationError{Name: "auth_kind", err: fmt.Errorf(`ent: validator failed for field "Receiver.auth_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SigningSecret(); ok {
		if err := receiver.SigningSecretValidator(v); err != nil {
			return &ValidationError{Name: "signing_secret", err: fmt.Errorf(`ent: validator failed for field "Receiver.signing_secret": %w`, err)}
		}
	}
	return nil
}

func (_u *ReceiverUpdateOne) sqlSave(ctx context.Context) (_node *Receiver, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiver.Table, receiver.Columns, sqlgraph.NewFieldSpec(receiver.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receiver.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receiver.FieldID)
		for _, f := range fields {
			if !receiver.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receiver.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(receiver.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(receiver.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthKind(); ok {
		_spec.SetField(receiver.FieldAuthKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthUser(); ok {
		_spec.SetField(receiver.FieldAuthUser, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthToken(); ok {
		_spec.SetField(receiver.FieldAuthToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.SigningSecret(); ok {
		_spec.SetField(receiver.FieldSigningSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyTemplate(); ok {
		_spec.SetField(receiver.FieldBodyTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(receiver.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.RulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRulesIDs(); len(nodes) > 0 && !_u.mutation.RulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RulesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Receiver{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
