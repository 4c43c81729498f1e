// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/docflowhq/docflow/gen/ent/receiver"
	"github.com/docflowhq/docflow/gen/ent/rule"
	"github.com/google/uuid"
)

// RuleUpdate is the builder for updating Rule entities.
type RuleUpdate struct {
	config
	hooks    []Hook
	mutation *RuleMutation
}

// Where appends a list predicates to the RuleUpdate builder.
func (_u *RuleUpdate) Where(ps ...predicate.Rule) *RuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *RuleUpdate) SetName(v string) *RuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableName(v *string) *RuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPagePolicy sets the "page_policy" field.
func (_u *RuleUpdate) SetPagePolicy(v string) *RuleUpdate {
	_u.mutation.SetPagePolicy(v)
	return _u
}

// SetNillablePagePolicy sets the "page_policy" field if the given value is not nil.
func (_u *RuleUpdate) SetNillablePagePolicy(v *string) *RuleUpdate {
	if v != nil {
		_u.SetPagePolicy(*v)
	}
	return _u
}

// SetPages sets the "pages" field.
func (_u *RuleUpdate) SetPages(v json.RawMessage) *RuleUpdate {
	_u.mutation.SetPages(v)
	return _u
}

// AppendPages appends value to the "pages" field.
func (_u *RuleUpdate) AppendPages(v json.RawMessage) *RuleUpdate {
	_u.mutation.AppendPages(v)
	return _u
}

// ClearPages clears the value of the "pages" field.
func (_u *RuleUpdate) ClearPages() *RuleUpdate {
	_u.mutation.ClearPages()
	return _u
}

// SetEngines sets the "engines" field.
func (_u *RuleUpdate) SetEngines(v json.RawMessage) *RuleUpdate {
	_u.mutation.SetEngines(v)
	return _u
}

// AppendEngines appends value to the "engines" field.
func (_u *RuleUpdate) AppendEngines(v json.RawMessage) *RuleUpdate {
	_u.mutation.AppendEngines(v)
	return _u
}

// ClearEngines clears the value of the "engines" field.
func (_u *RuleUpdate) ClearEngines() *RuleUpdate {
	_u.mutation.ClearEngines()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *RuleUpdate) SetLanguage(v string) *RuleUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableLanguage(v *string) *RuleUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *RuleUpdate) SetFields(v json.RawMessage) *RuleUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *RuleUpdate) AppendFields(v json.RawMessage) *RuleUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *RuleUpdate) ClearFields() *RuleUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetActive sets the "active" field.
func (_u *RuleUpdate) SetActive(v bool) *RuleUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableActive(v *bool) *RuleUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// AddReceiverIDs adds the "receivers" edge to the Receiver entity by IDs.
func (_u *RuleUpdate) AddReceiverIDs(ids ...uuid.UUID) *RuleUpdate {
	_u.mutation.AddReceiverIDs(ids...)
	return _u
}

// AddReceivers adds the "receivers" edges to the Receiver entity.
func (_u *RuleUpdate) AddReceivers(v ...*Receiver) *RuleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiverIDs(ids...)
}

// Mutation returns the RuleMutation object of the builder.
func (_u *RuleUpdate) Mutation() *RuleMutation {
	return _u.mutation
}

// ClearReceivers clears all "receivers" edges to the Receiver entity.
func (_u *RuleUpdate) ClearReceivers() *RuleUpdate {
	_u.mutation.ClearReceivers()
	return _u
}

// RemoveReceiverIDs removes the "receivers" edge to Receiver entities by IDs.
func (_u *RuleUpdate) RemoveReceiverIDs(ids ...uuid.UUID) *RuleUpdate {
	_u.mutation.RemoveReceiverIDs(ids...)
	return _u
}

// RemoveReceivers removes "receivers" edges to Receiver entities.
func (_u *RuleUpdate) RemoveReceivers(v ...*Receiver) *RuleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiverIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleUpdate) check() error {
	if v, ok := _u.mutation.PagePolicy(); ok {
		if err := rule.PagePolicyValidator(v); err != nil {
			return &ValidationError{Name: "page_policy", err: fmt.Errorf(`ent: validator failed for field "Rule.page_policy": %w`, err)}
		}
	}
	return nil
}

func (_u *RuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rule.Table, rule.Columns, sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(rule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PagePolicy(); ok {
		_spec.SetField(rule.FieldPagePolicy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(rule.FieldPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rule.FieldPages, value)
		})
	}
	if _u.mutation.PagesCleared() {
		_spec.ClearField(rule.FieldPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Engines(); ok {
		_spec.SetField(rule.FieldEngines, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEngines(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rule.FieldEngines, value)
		})
	}
	if _u.mutation.EnginesCleared() {
		_spec.ClearField(rule.FieldEngines, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(rule.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(rule.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rule.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(rule.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(rule.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.ReceiversCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiversIDs(); len(nodes) > 0 && !_u.mutation.ReceiversCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiversIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RuleUpdateOne is the builder for updating a single Rule entity.
type RuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RuleMutation
}

// SetName sets the "name" field.
func (_u *RuleUpdateOne) SetName(v string) *RuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableName(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPagePolicy sets the "page_policy" field.
func (_u *RuleUpdateOne) SetPagePolicy(v string) *RuleUpdateOne {
	_u.mutation.SetPagePolicy(v)
	return _u
}

// SetNillablePagePolicy sets the "page_policy" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillablePagePolicy(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetPagePolicy(*v)
	}
	return _u
}

// SetPages sets the "pages" field.
func (_u *RuleUpdateOne) SetPages(v json.RawMessage) *RuleUpdateOne {
	_u.mutation.SetPages(v)
	return _u
}

// AppendPages appends value to the "pages" field.
func (_u *RuleUpdateOne) AppendPages(v json.RawMessage) *RuleUpdateOne {
	_u.mutation.AppendPages(v)
	return _u
}

// ClearPages clears the value of the "pages" field.
func (_u *RuleUpdateOne) ClearPages() *RuleUpdateOne {
	_u.mutation.ClearPages()
	return _u
}

// SetEngines sets the "engines" field.
func (_u *RuleUpdateOne) SetEngines(v json.RawMessage) *RuleUpdateOne {
	_u.mutation.SetEngines(v)
	return _u
}

// AppendEngines appends value to the "engines" field.
func (_u *RuleUpdateOne) AppendEngines(v json.RawMessage) *RuleUpdateOne {
	_u.mutation.AppendEngines(v)
	return _u
}

// ClearEngines clears the value of the "engines" field.
func (_u *RuleUpdateOne) ClearEngines() *RuleUpdateOne {
	_u.mutation.ClearEngines()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *RuleUpdateOne) SetLanguage(v string) *RuleUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableLanguage(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *RuleUpdateOne) SetFields(v json.RawMessage) *RuleUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *RuleUpdateOne) AppendFields(v json.RawMessage) *RuleUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *RuleUpdateOne) ClearFields() *RuleUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetActive sets the "active" field.
func (_u *RuleUpdateOne) SetActive(v bool) *RuleUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableActive(v *bool) *RuleUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// AddReceiverIDs adds the "receivers" edge to the Receiver entity by IDs.
func (_u *RuleUpdateOne) AddReceiverIDs(ids ...uuid.UUID) *RuleUpdateOne {
	_u.mutation.AddReceiverIDs(ids...)
	return _u
}

// AddReceivers adds the "receivers" edges to the Receiver entity.
func (_u *RuleUpdateOne) AddReceivers(v ...*Receiver) *RuleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiverIDs(ids...)
}

// Mutation returns the RuleMutation object of the builder.
func (_u *RuleUpdateOne) Mutation() *RuleMutation {
	return _u.mutation
}

// ClearReceivers clears all "receivers" edges to the Receiver entity.
func (_u *RuleUpdateOne) ClearReceivers() *RuleUpdateOne {
	_u.mutation.ClearReceivers()
	return _u
}

// RemoveReceiverIDs removes the "receivers" edge to Receiver entities by IDs.
func (_u *RuleUpdateOne) RemoveReceiverIDs(ids ...uuid.UUID) *RuleUpdateOne {
	_u.mutation.RemoveReceiverIDs(ids...)
	return _u
}

// RemoveReceivers removes "receivers" edges to Receiver entities.
func (_u *RuleUpdateOne) RemoveReceivers(v ...*Receiver) *RuleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiverIDs(ids...)
}

// Where appends a list predicates to the RuleUpdate builder.
func (_u *RuleUpdateOne) Where(ps ...predicate.Rule) *RuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RuleUpdateOne) Select(field string, fields ...string) *RuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Rule entity.
func (_u *RuleUpdateOne) Save(ctx context.Context) (*Rule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleUpdateOne) SaveX(ctx context.Context) *Rule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleUpdateOne) check() error {
	if v, ok := _u.mutation.PagePolicy(); ok {
		if err := rule.PagePolicyValidator(v); err != nil {
			return &ValidationError{Name: "page_policy", err: fmt.Errorf(`ent: validator failed for field "Rule.page_policy": %w`, err)}
		}
	}
	return nil
}

func (_u *RuleUpdateOne) sqlSave(ctx context.Context) (_node *Rule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rule.Table, rule.Columns, sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Rule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rule.FieldID)
		for _, f := range fields {
			if !rule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rule.FieldID {
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
		_spec.SetField(rule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PagePolicy(); ok {
		_spec.SetField(rule.FieldPagePolicy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(rule.FieldPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rule.FieldPages, value)
		})
	}
	if _u.mutation.PagesCleared() {
		_spec.ClearField(rule.FieldPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Engines(); ok {
		_spec.SetField(rule.FieldEngines, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEngines(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rule.FieldEngines, value)
		})
	}
	if _u.mutation.EnginesCleared() {
		_spec.ClearField(rule.FieldEngines, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(rule.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(rule.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rule.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(rule.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(rule.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.ReceiversCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiversIDs(); len(nodes) > 0 && !_u.mutation.ReceiversCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiversIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Rule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
