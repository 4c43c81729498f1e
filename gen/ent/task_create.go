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
	"github.com/docflowhq/docflow/gen/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFingerprint sets the "fingerprint" field.
func (_c *TaskCreate) SetFingerprint(v string) *TaskCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v string) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *TaskCreate) SetRuleID(v string) *TaskCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetRuleVersion sets the "rule_version" field.
func (_c *TaskCreate) SetRuleVersion(v string) *TaskCreate {
	_c.mutation.SetRuleVersion(v)
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *TaskCreate) SetPageCount(v int) *TaskCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePageCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetFormat sets the "format" field.
func (_c *TaskCreate) SetFormat(v string) *TaskCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetBlobKey sets the "blob_key" field.
func (_c *TaskCreate) SetBlobKey(v string) *TaskCreate {
	_c.mutation.SetBlobKey(v)
	return _c
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_c *TaskCreate) SetNillableBlobKey(v *string) *TaskCreate {
	if v != nil {
		_c.SetBlobKey(*v)
	}
	return _c
}

// SetInstant sets the "instant" field.
func (_c *TaskCreate) SetInstant(v bool) *TaskCreate {
	_c.mutation.SetInstant(v)
	return _c
}

// SetNillableInstant sets the "instant" field if the given value is not nil.
func (_c *TaskCreate) SetNillableInstant(v *bool) *TaskCreate {
	if v != nil {
		_c.SetInstant(*v)
	}
	return _c
}

// SetExtractedData sets the "extracted_data" field.
func (_c *TaskCreate) SetExtractedData(v json.RawMessage) *TaskCreate {
	_c.mutation.SetExtractedData(v)
	return _c
}

// SetConfidenceScores sets the "confidence_scores" field.
func (_c *TaskCreate) SetConfidenceScores(v json.RawMessage) *TaskCreate {
	_c.mutation.SetConfidenceScores(v)
	return _c
}

// SetAuditReasons sets the "audit_reasons" field.
func (_c *TaskCreate) SetAuditReasons(v json.RawMessage) *TaskCreate {
	_c.mutation.SetAuditReasons(v)
	return _c
}

// SetRecognitionAttempts sets the "recognition_attempts" field.
func (_c *TaskCreate) SetRecognitionAttempts(v int) *TaskCreate {
	_c.mutation.SetRecognitionAttempts(v)
	return _c
}

// SetNillableRecognitionAttempts sets the "recognition_attempts" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRecognitionAttempts(v *int) *TaskCreate {
	if v != nil {
		_c.SetRecognitionAttempts(*v)
	}
	return _c
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (_c *TaskCreate) SetDeliveryAttempts(v int) *TaskCreate {
	_c.mutation.SetDeliveryAttempts(v)
	return _c
}

// SetNillableDeliveryAttempts sets the "delivery_attempts" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDeliveryAttempts(v *int) *TaskCreate {
	if v != nil {
		_c.SetDeliveryAttempts(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.PageCount(); !ok {
		v := task.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.BlobKey(); !ok {
		v := task.DefaultBlobKey
		_c.mutation.SetBlobKey(v)
	}
	if _, ok := _c.mutation.Instant(); !ok {
		v := task.DefaultInstant
		_c.mutation.SetInstant(v)
	}
	if _, ok := _c.mutation.RecognitionAttempts(); !ok {
		v := task.DefaultRecognitionAttempts
		_c.mutation.SetRecognitionAttempts(v)
	}
	if _, ok := _c.mutation.DeliveryAttempts(); !ok {
		v := task.DefaultDeliveryAttempts
		_c.mutation.SetDeliveryAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Task.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := task.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Task.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "Task.rule_id"`)}
	}
	if v, ok := _c.mutation.RuleID(); ok {
		if err := task.RuleIDValidator(v); err != nil {
			return &ValidationError{Name: "rule_id", err: fmt.Errorf(`ent: validator failed for field "Task.rule_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RuleVersion(); !ok {
		return &ValidationError{Name: "rule_version", err: errors.New(`ent: missing required field "Task.rule_version"`)}
	}
	if v, ok := _c.mutation.RuleVersion(); ok {
		if err := task.RuleVersionValidator(v); err != nil {
			return &ValidationError{Name: "rule_version", err: fmt.Errorf(`ent: validator failed for field "Task.rule_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "Task.page_count"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "Task.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := task.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Task.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlobKey(); !ok {
		return &ValidationError{Name: "blob_key", err: errors.New(`ent: missing required field "Task.blob_key"`)}
	}
	if _, ok := _c.mutation.Instant(); !ok {
		return &ValidationError{Name: "instant", err: errors.New(`ent: missing required field "Task.instant"`)}
	}
	if _, ok := _c.mutation.RecognitionAttempts(); !ok {
		return &ValidationError{Name: "recognition_attempts", err: errors.New(`ent: missing required field "Task.recognition_attempts"`)}
	}
	if _, ok := _c.mutation.DeliveryAttempts(); !ok {
		return &ValidationError{Name: "delivery_attempts", err: errors.New(`ent: missing required field "Task.delivery_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := task.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Task.id": %w`, err)}
		}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(task.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(task.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.RuleVersion(); ok {
		_spec.SetField(task.FieldRuleVersion, field.TypeString, value)
		_node.RuleVersion = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(task.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(task.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.BlobKey(); ok {
		_spec.SetField(task.FieldBlobKey, field.TypeString, value)
		_node.BlobKey = value
	}
	if value, ok := _c.mutation.Instant(); ok {
		_spec.SetField(task.FieldInstant, field.TypeBool, value)
		_node.Instant = value
	}
	if value, ok := _c.mutation.ExtractedData(); ok {
		_spec.SetField(task.FieldExtractedData, field.TypeJSON, value)
		_node.ExtractedData = value
	}
	if value, ok := _c.mutation.ConfidenceScores(); ok {
		_spec.SetField(task.FieldConfidenceScores, field.TypeJSON, value)
		_node.ConfidenceScores = value
	}
	if value, ok := _c.mutation.AuditReasons(); ok {
		_spec.SetField(task.FieldAuditReasons, field.TypeJSON, value)
		_node.AuditReasons = value
	}
	if value, ok := _c.mutation.RecognitionAttempts(); ok {
		_spec.SetField(task.FieldRecognitionAttempts, field.TypeInt, value)
		_node.RecognitionAttempts = value
	}
	if value, ok := _c.mutation.DeliveryAttempts(); ok {
		_spec.SetField(task.FieldDeliveryAttempts, field.TypeInt, value)
		_node.DeliveryAttempts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetFingerprint(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetFingerprint(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v string) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetPageCount sets the "page_count" field.
func (u *TaskUpsert) SetPageCount(v int) *TaskUpsert {
	u.Set(task.FieldPageCount, v)
	return u
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePageCount() *TaskUpsert {
	u.SetExcluded(task.FieldPageCount)
	return u
}

// AddPageCount adds v to the "page_count" field.
func (u *TaskUpsert) AddPageCount(v int) *TaskUpsert {
	u.Add(task.FieldPageCount, v)
	return u
}

// SetFormat sets the "format" field.
func (u *TaskUpsert) SetFormat(v string) *TaskUpsert {
	u.Set(task.FieldFormat, v)
	return u
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *TaskUpsert) UpdateFormat() *TaskUpsert {
	u.SetExcluded(task.FieldFormat)
	return u
}

// SetBlobKey sets the "blob_key" field.
func (u *TaskUpsert) SetBlobKey(v string) *TaskUpsert {
	u.Set(task.FieldBlobKey, v)
	return u
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *TaskUpsert) UpdateBlobKey() *TaskUpsert {
	u.SetExcluded(task.FieldBlobKey)
	return u
}

// SetInstant sets the "instant" field.
func (u *TaskUpsert) SetInstant(v bool) *TaskUpsert {
	u.Set(task.FieldInstant, v)
	return u
}

// UpdateInstant sets the "instant" field to the value that was provided on create.
func (u *TaskUpsert) UpdateInstant() *TaskUpsert {
	u.SetExcluded(task.FieldInstant)
	return u
}

// SetExtractedData sets the "extracted_data" field.
func (u *TaskUpsert) SetExtractedData(v json.RawMessage) *TaskUpsert {
	u.Set(task.FieldExtractedData, v)
	return u
}

// UpdateExtractedData sets the "extracted_data" field to the value that was provided on create.
func (u *TaskUpsert) UpdateExtractedData() *TaskUpsert {
	u.SetExcluded(task.FieldExtractedData)
	return u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (u *TaskUpsert) ClearExtractedData() *TaskUpsert {
	u.SetNull(task.FieldExtractedData)
	return u
}

// SetConfidenceScores sets the "confidence_scores" field.
func (u *TaskUpsert) SetConfidenceScores(v json.RawMessage) *TaskUpsert {
	u.Set(task.FieldConfidenceScores, v)
	return u
}

// UpdateConfidenceScores sets the "confidence_scores" field to the value that was provided on create.
func (u *TaskUpsert) UpdateConfidenceScores() *TaskUpsert {
	u.SetExcluded(task.FieldConfidenceScores)
	return u
}

// ClearConfidenceScores clears the value of the "confidence_scores" field.
func (u *TaskUpsert) ClearConfidenceScores() *TaskUpsert {
	u.SetNull(task.FieldConfidenceScores)
	return u
}

// SetAuditReasons sets the "audit_reasons" field.
func (u *TaskUpsert) SetAuditReasons(v json.RawMessage) *TaskUpsert {
	u.Set(task.FieldAuditReasons, v)
	return u
}

// UpdateAuditReasons sets the "audit_reasons" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAuditReasons() *TaskUpsert {
	u.SetExcluded(task.FieldAuditReasons)
	return u
}

// ClearAuditReasons clears the value of the "audit_reasons" field.
func (u *TaskUpsert) ClearAuditReasons() *TaskUpsert {
	u.SetNull(task.FieldAuditReasons)
	return u
}

// SetRecognitionAttempts sets the "recognition_attempts" field.
func (u *TaskUpsert) SetRecognitionAttempts(v int) *TaskUpsert {
	u.Set(task.FieldRecognitionAttempts, v)
	return u
}

// UpdateRecognitionAttempts sets the "recognition_attempts" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRecognitionAttempts() *TaskUpsert {
	u.SetExcluded(task.FieldRecognitionAttempts)
	return u
}

// AddRecognitionAttempts adds v to the "recognition_attempts" field.
func (u *TaskUpsert) AddRecognitionAttempts(v int) *TaskUpsert {
	u.Add(task.FieldRecognitionAttempts, v)
	return u
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (u *TaskUpsert) SetDeliveryAttempts(v int) *TaskUpsert {
	u.Set(task.FieldDeliveryAttempts, v)
	return u
}

// UpdateDeliveryAttempts sets the "delivery_attempts" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDeliveryAttempts() *TaskUpsert {
	u.SetExcluded(task.FieldDeliveryAttempts)
	return u
}

// AddDeliveryAttempts adds v to the "delivery_attempts" field.
func (u *TaskUpsert) AddDeliveryAttempts(v int) *TaskUpsert {
	u.Add(task.FieldDeliveryAttempts, v)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsert) SetCompletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsert) ClearCompletedAt() *TaskUpsert {
	u.SetNull(task.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.Fingerprint(); exists {
			s.SetIgnore(task.FieldFingerprint)
		}
		if _, exists := u.create.mutation.RuleID(); exists {
			s.SetIgnore(task.FieldRuleID)
		}
		if _, exists := u.create.mutation.RuleVersion(); exists {
			s.SetIgnore(task.FieldRuleVersion)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPageCount sets the "page_count" field.
func (u *TaskUpsertOne) SetPageCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPageCount(v)
	})
}

// AddPageCount adds v to the "page_count" field.
func (u *TaskUpsertOne) AddPageCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddPageCount(v)
	})
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePageCount() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePageCount()
	})
}

// SetFormat sets the "format" field.
func (u *TaskUpsertOne) SetFormat(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateFormat() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFormat()
	})
}

// SetBlobKey sets the "blob_key" field.
func (u *TaskUpsertOne) SetBlobKey(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetBlobKey(v)
	})
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateBlobKey() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateBlobKey()
	})
}

// SetInstant sets the "instant" field.
func (u *TaskUpsertOne) SetInstant(v bool) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetInstant(v)
	})
}

// UpdateInstant sets the "instant" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateInstant() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateInstant()
	})
}

// SetExtractedData sets the "extracted_data" field.
func (u *TaskUpsertOne) SetExtractedData(v json.RawMessage) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetExtractedData(v)
	})
}

// UpdateExtractedData sets the "extracted_data" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateExtractedData() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateExtractedData()
	})
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (u *TaskUpsertOne) ClearExtractedData() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearExtractedData()
	})
}

// SetConfidenceScores sets the "confidence_scores" field.
func (u *TaskUpsertOne) SetConfidenceScores(v json.RawMessage) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetConfidenceScores(v)
	})
}

// UpdateConfidenceScores sets the "confidence_scores" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateConfidenceScores() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateConfidenceScores()
	})
}

// ClearConfidenceScores clears the value of the "confidence_scores" field.
func (u *TaskUpsertOne) ClearConfidenceScores() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearConfidenceScores()
	})
}

// SetAuditReasons sets the "audit_reasons" field.
func (u *TaskUpsertOne) SetAuditReasons(v json.RawMessage) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAuditReasons(v)
	})
}

// UpdateAuditReasons sets the "audit_reasons" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAuditReasons() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAuditReasons()
	})
}

// ClearAuditReasons clears the value of the "audit_reasons" field.
func (u *TaskUpsertOne) ClearAuditReasons() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAuditReasons()
	})
}

// SetRecognitionAttempts sets the "recognition_attempts" field.
func (u *TaskUpsertOne) SetRecognitionAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRecognitionAttempts(v)
	})
}

// AddRecognitionAttempts adds v to the "recognition_attempts" field.
func (u *TaskUpsertOne) AddRecognitionAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddRecognitionAttempts(v)
	})
}

// UpdateRecognitionAttempts sets the "recognition_attempts" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRecognitionAttempts() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRecognitionAttempts()
	})
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (u *TaskUpsertOne) SetDeliveryAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDeliveryAttempts(v)
	})
}

// AddDeliveryAttempts adds v to the "delivery_attempts" field.
func (u *TaskUpsertOne) AddDeliveryAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddDeliveryAttempts(v)
	})
}

// UpdateDeliveryAttempts sets the "delivery_attempts" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDeliveryAttempts() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDeliveryAttempts()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertOne) SetCompletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertOne) ClearCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetFingerprint(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.Fingerprint(); exists {
				s.SetIgnore(task.FieldFingerprint)
			}
			if _, exists := b.mutation.RuleID(); exists {
				s.SetIgnore(task.FieldRuleID)
			}
			if _, exists := b.mutation.RuleVersion(); exists {
				s.SetIgnore(task.FieldRuleVersion)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPageCount sets the "page_count" field.
func (u *TaskUpsertBulk) SetPageCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPageCount(v)
	})
}

// AddPageCount adds v to the "page_count" field.
func (u *TaskUpsertBulk) AddPageCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddPageCount(v)
	})
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePageCount() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePageCount()
	})
}

// SetFormat sets the "format" field.
func (u *TaskUpsertBulk) SetFormat(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateFormat() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFormat()
	})
}

// SetBlobKey sets the "blob_key" field.
func (u *TaskUpsertBulk) SetBlobKey(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetBlobKey(v)
	})
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateBlobKey() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateBlobKey()
	})
}

// SetInstant sets the "instant" field.
func (u *TaskUpsertBulk) SetInstant(v bool) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetInstant(v)
	})
}

// UpdateInstant sets the "instant" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateInstant() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateInstant()
	})
}

// SetExtractedData sets the "extracted_data" field.
func (u *TaskUpsertBulk) SetExtractedData(v json.RawMessage) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetExtractedData(v)
	})
}

// UpdateExtractedData sets the "extracted_data" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateExtractedData() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateExtractedData()
	})
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (u *TaskUpsertBulk) ClearExtractedData() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearExtractedData()
	})
}

// SetConfidenceScores sets the "confidence_scores" field.
func (u *TaskUpsertBulk) SetConfidenceScores(v json.RawMessage) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetConfidenceScores(v)
	})
}

// UpdateConfidenceScores sets the "confidence_scores" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateConfidenceScores() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateConfidenceScores()
	})
}

// ClearConfidenceScores clears the value of the "confidence_scores" field.
func (u *TaskUpsertBulk) ClearConfidenceScores() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearConfidenceScores()
	})
}

// SetAuditReasons sets the "audit_reasons" field.
func (u *TaskUpsertBulk) SetAuditReasons(v json.RawMessage) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAuditReasons(v)
	})
}

// UpdateAuditReasons sets the "audit_reasons" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAuditReasons() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAuditReasons()
	})
}

// ClearAuditReasons clears the value of the "audit_reasons" field.
func (u *TaskUpsertBulk) ClearAuditReasons() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAuditReasons()
	})
}

// SetRecognitionAttempts sets the "recognition_attempts" field.
func (u *TaskUpsertBulk) SetRecognitionAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRecognitionAttempts(v)
	})
}

// AddRecognitionAttempts adds v to the "recognition_attempts" field.
func (u *TaskUpsertBulk) AddRecognitionAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddRecognitionAttempts(v)
	})
}

// UpdateRecognitionAttempts sets the "recognition_attempts" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRecognitionAttempts() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRecognitionAttempts()
	})
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (u *TaskUpsertBulk) SetDeliveryAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDeliveryAttempts(v)
	})
}

// AddDeliveryAttempts adds v to the "delivery_attempts" field.
func (u *TaskUpsertBulk) AddDeliveryAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddDeliveryAttempts(v)
	})
}

// UpdateDeliveryAttempts sets the "delivery_attempts" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDeliveryAttempts() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDeliveryAttempts()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertBulk) SetCompletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertBulk) ClearCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
