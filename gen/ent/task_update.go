// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/docflowhq/docflow/gen/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v string) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *string) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *TaskUpdate) SetPageCount(v int) *TaskUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePageCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *TaskUpdate) AddPageCount(v int) *TaskUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetFormat sets the "format" field.
func (_u *TaskUpdate) SetFormat(v string) *TaskUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFormat(v *string) *TaskUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *TaskUpdate) SetBlobKey(v string) *TaskUpdate {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableBlobKey(v *string) *TaskUpdate {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// SetInstant sets the "instant" field.
func (_u *TaskUpdate) SetInstant(v bool) *TaskUpdate {
	_u.mutation.SetInstant(v)
	return _u
}

// SetNillableInstant sets the "instant" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableInstant(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetInstant(*v)
	}
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *TaskUpdate) SetExtractedData(v json.RawMessage) *TaskUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *TaskUpdate) AppendExtractedData(v json.RawMessage) *TaskUpdate {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *TaskUpdate) ClearExtractedData() *TaskUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetConfidenceScores sets the "confidence_scores" field.
func (_u *TaskUpdate) SetConfidenceScores(v json.RawMessage) *TaskUpdate {
	_u.mutation.SetConfidenceScores(v)
	return _u
}

// AppendConfidenceScores appends value to the "confidence_scores" field.
func (_u *TaskUpdate) AppendConfidenceScores(v json.RawMessage) *TaskUpdate {
	_u.mutation.AppendConfidenceScores(v)
	return _u
}

// ClearConfidenceScores clears the value of the "confidence_scores" field.
func (_u *TaskUpdate) ClearConfidenceScores() *TaskUpdate {
	_u.mutation.ClearConfidenceScores()
	return _u
}

// SetAuditReasons sets the "audit_reasons" field.
func (_u *TaskUpdate) SetAuditReasons(v json.RawMessage) *TaskUpdate {
	_u.mutation.SetAuditReasons(v)
	return _u
}

// AppendAuditReasons appends value to the "audit_reasons" field.
func (_u *TaskUpdate) AppendAuditReasons(v json.RawMessage) *TaskUpdate {
	_u.mutation.AppendAuditReasons(v)
	return _u
}

// ClearAuditReasons clears the value of the "audit_reasons" field.
func (_u *TaskUpdate) ClearAuditReasons() *TaskUpdate {
	_u.mutation.ClearAuditReasons()
	return _u
}

// SetRecognitionAttempts sets the "recognition_attempts" field.
func (_u *TaskUpdate) SetRecognitionAttempts(v int) *TaskUpdate {
	_u.mutation.ResetRecognitionAttempts()
	_u.mutation.SetRecognitionAttempts(v)
	return _u
}

// SetNillableRecognitionAttempts sets the "recognition_attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRecognitionAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetRecognitionAttempts(*v)
	}
	return _u
}

// AddRecognitionAttempts adds value to the "recognition_attempts" field.
func (_u *TaskUpdate) AddRecognitionAttempts(v int) *TaskUpdate {
	_u.mutation.AddRecognitionAttempts(v)
	return _u
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (_u *TaskUpdate) SetDeliveryAttempts(v int) *TaskUpdate {
	_u.mutation.ResetDeliveryAttempts()
	_u.mutation.SetDeliveryAttempts(v)
	return _u
}

// SetNillableDeliveryAttempts sets the "delivery_attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDeliveryAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetDeliveryAttempts(*v)
	}
	return _u
}

// AddDeliveryAttempts adds value to the "delivery_attempts" field.
func (_u *TaskUpdate) AddDeliveryAttempts(v int) *TaskUpdate {
	_u.mutation.AddDeliveryAttempts(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := task.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Task.format": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(task.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(task.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(task.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(task.FieldBlobKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instant(); ok {
		_spec.SetField(task.FieldInstant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(task.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(task.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceScores(); ok {
		_spec.SetField(task.FieldConfidenceScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConfidenceScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldConfidenceScores, value)
		})
	}
	if _u.mutation.ConfidenceScoresCleared() {
		_spec.ClearField(task.FieldConfidenceScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuditReasons(); ok {
		_spec.SetField(task.FieldAuditReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAuditReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldAuditReasons, value)
		})
	}
	if _u.mutation.AuditReasonsCleared() {
		_spec.ClearField(task.FieldAuditReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecognitionAttempts(); ok {
		_spec.SetField(task.FieldRecognitionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecognitionAttempts(); ok {
		_spec.AddField(task.FieldRecognitionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeliveryAttempts(); ok {
		_spec.SetField(task.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryAttempts(); ok {
		_spec.AddField(task.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v string) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *TaskUpdateOne) SetPageCount(v int) *TaskUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePageCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *TaskUpdateOne) AddPageCount(v int) *TaskUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetFormat sets the "format" field.
func (_u *TaskUpdateOne) SetFormat(v string) *TaskUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFormat(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *TaskUpdateOne) SetBlobKey(v string) *TaskUpdateOne {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableBlobKey(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// SetInstant sets the "instant" field.
func (_u *TaskUpdateOne) SetInstant(v bool) *TaskUpdateOne {
	_u.mutation.SetInstant(v)
	return _u
}

// SetNillableInstant sets the "instant" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableInstant(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetInstant(*v)
	}
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *TaskUpdateOne) SetExtractedData(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *TaskUpdateOne) AppendExtractedData(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *TaskUpdateOne) ClearExtractedData() *TaskUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetConfidenceScores sets the "confidence_scores" field.
func (_u *TaskUpdateOne) SetConfidenceScores(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.SetConfidenceScores(v)
	return _u
}

// AppendConfidenceScores appends value to the "confidence_scores" field.
func (_u *TaskUpdateOne) AppendConfidenceScores(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.AppendConfidenceScores(v)
	return _u
}

// ClearConfidenceScores clears the value of the "confidence_scores" field.
func (_u *TaskUpdateOne) ClearConfidenceScores() *TaskUpdateOne {
	_u.mutation.ClearConfidenceScores()
	return _u
}

// SetAuditReasons sets the "audit_reasons" field.
func (_u *TaskUpdateOne) SetAuditReasons(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.SetAuditReasons(v)
	return _u
}

// AppendAuditReasons appends value to the "audit_reasons" field.
func (_u *TaskUpdateOne) AppendAuditReasons(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.AppendAuditReasons(v)
	return _u
}

// ClearAuditReasons clears the value of the "audit_reasons" field.
func (_u *TaskUpdateOne) ClearAuditReasons() *TaskUpdateOne {
	_u.mutation.ClearAuditReasons()
	return _u
}

// SetRecognitionAttempts sets the "recognition_attempts" field.
func (_u *TaskUpdateOne) SetRecognitionAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetRecognitionAttempts()
	_u.mutation.SetRecognitionAttempts(v)
	return _u
}

// SetNillableRecognitionAttempts sets the "recognition_attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRecognitionAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetRecognitionAttempts(*v)
	}
	return _u
}

// AddRecognitionAttempts adds value to the "recognition_attempts" field.
func (_u *TaskUpdateOne) AddRecognitionAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddRecognitionAttempts(v)
	return _u
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (_u *TaskUpdateOne) SetDeliveryAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetDeliveryAttempts()
	_u.mutation.SetDeliveryAttempts(v)
	return _u
}

// SetNillableDeliveryAttempts sets the "delivery_attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDeliveryAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetDeliveryAttempts(*v)
	}
	return _u
}

// AddDeliveryAttempts adds value to the "delivery_attempts" field.
func (_u *TaskUpdateOne) AddDeliveryAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddDeliveryAttempts(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := task.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Task.format": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(task.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(task.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(task.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(task.FieldBlobKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instant(); ok {
		_spec.SetField(task.FieldInstant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(task.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(task.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceScores(); ok {
		_spec.SetField(task.FieldConfidenceScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConfidenceScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldConfidenceScores, value)
		})
	}
	if _u.mutation.ConfidenceScoresCleared() {
		_spec.ClearField(task.FieldConfidenceScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuditReasons(); ok {
		_spec.SetField(task.FieldAuditReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAuditReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldAuditReasons, value)
		})
	}
	if _u.mutation.AuditReasonsCleared() {
		_spec.ClearField(task.FieldAuditReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecognitionAttempts(); ok {
		_spec.SetField(task.FieldRecognitionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecognitionAttempts(); ok {
		_spec.AddField(task.FieldRecognitionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeliveryAttempts(); ok {
		_spec.SetField(task.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryAttempts(); ok {
		_spec.AddField(task.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
