// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docflowhq/docflow/gen/ent/fingerprint"
	"github.com/docflowhq/docflow/gen/ent/predicate"
)

// FingerprintUpdate is the builder for updating Fingerprint entities.
type FingerprintUpdate struct {
	config
	hooks    []Hook
	mutation *FingerprintMutation
}

// Where appends a list predicates to the FingerprintUpdate builder.
func (_u *FingerprintUpdate) Where(ps ...predicate.Fingerprint) *FingerprintUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the FingerprintMutation object of the builder.
func (_u *FingerprintUpdate) Mutation() *FingerprintMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FingerprintUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FingerprintUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FingerprintUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FingerprintUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FingerprintUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(fingerprint.Table, fingerprint.Columns, sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(fingerprint.FieldExtractedData, field.TypeJSON)
	}
	if _u.mutation.ConfidenceScoresCleared() {
		_spec.ClearField(fingerprint.FieldConfidenceScores, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fingerprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FingerprintUpdateOne is the builder for updating a single Fingerprint entity.
type FingerprintUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FingerprintMutation
}

// Mutation returns the FingerprintMutation object of the builder.
func (_u *FingerprintUpdateOne) Mutation() *FingerprintMutation {
	return _u.mutation
}

// Where appends a list predicates to the FingerprintUpdate builder.
func (_u *FingerprintUpdateOne) Where(ps ...predicate.Fingerprint) *FingerprintUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FingerprintUpdateOne) Select(field string, fields ...string) *FingerprintUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Fingerprint entity.
func (_u *FingerprintUpdateOne) Save(ctx context.Context) (*Fingerprint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FingerprintUpdateOne) SaveX(ctx context.Context) *Fingerprint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FingerprintUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FingerprintUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FingerprintUpdateOne) sqlSave(ctx context.Context) (_node *Fingerprint, err error) {
	_spec := sqlgraph.NewUpdateSpec(fingerprint.Table, fingerprint.Columns, sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Fingerprint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fingerprint.FieldID)
		for _, f := range fields {
			if !fingerprint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fingerprint.FieldID {
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
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(fingerprint.FieldExtractedData, field.TypeJSON)
	}
	if _u.mutation.ConfidenceScoresCleared() {
		_spec.ClearField(fingerprint.FieldConfidenceScores, field.TypeJSON)
	}
	_node = &Fingerprint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fingerprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
