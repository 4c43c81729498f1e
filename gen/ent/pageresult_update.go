// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docflowhq/docflow/gen/ent/pageresult"
	"github.com/docflowhq/docflow/gen/ent/predicate"
)

// PageResultUpdate is the builder for updating PageResult entities.
type PageResultUpdate struct {
	config
	hooks    []Hook
	mutation *PageResultMutation
}

// Where appends a list predicates to the PageResultUpdate builder.
func (_u *PageResultUpdate) Where(ps ...predicate.PageResult) *PageResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the PageResultMutation object of the builder.
func (_u *PageResultUpdate) Mutation() *PageResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PageResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PageResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PageResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pageresult.Table, pageresult.Columns, sqlgraph.NewFieldSpec(pageresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TokenConfidencesCleared() {
		_spec.ClearField(pageresult.FieldTokenConfidences, field.TypeJSON)
	}
	if _u.mutation.BoxesCleared() {
		_spec.ClearField(pageresult.FieldBoxes, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PageResultUpdateOne is the builder for updating a single PageResult entity.
type PageResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageResultMutation
}

// Mutation returns the PageResultMutation object of the builder.
func (_u *PageResultUpdateOne) Mutation() *PageResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the PageResultUpdate builder.
func (_u *PageResultUpdateOne) Where(ps ...predicate.PageResult) *PageResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PageResultUpdateOne) Select(field string, fields ...string) *PageResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PageResult entity.
func (_u *PageResultUpdateOne) Save(ctx context.Context) (*PageResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageResultUpdateOne) SaveX(ctx context.Context) *PageResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PageResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PageResultUpdateOne) sqlSave(ctx context.Context) (_node *PageResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(pageresult.Table, pageresult.Columns, sqlgraph.NewFieldSpec(pageresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PageResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pageresult.FieldID)
		for _, f := range fields {
			if !pageresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pageresult.FieldID {
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
	if _u.mutation.TokenConfidencesCleared() {
		_spec.ClearField(pageresult.FieldTokenConfidences, field.TypeJSON)
	}
	if _u.mutation.BoxesCleared() {
		_spec.ClearField(pageresult.FieldBoxes, field.TypeJSON)
	}
	_node = &PageResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
