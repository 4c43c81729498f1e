// Code generated by ent, DO NOT EDIT.

package pageresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PageResult {
	return predicate.PageResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PageResult {
	return predicate.PageResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PageResult {
	return predicate.PageResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PageResult {
	return predicate.PageResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PageResult {
	return predicate.PageResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PageResult {
	return predicate.PageResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PageResult {
	return predicate.PageResult(sql.FieldLTE(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldTaskID, v))
}

// PageNo applies equality check predicate on the "page_no" field. It's identical to PageNoEQ.
func PageNo(v int) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldPageNo, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldText, v))
}

// Engine applies equality check predicate on the "engine" field. It's identical to EngineEQ.
func Engine(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldEngine, v))
}

// Fallback applies equality check predicate on the "fallback" field. It's identical to FallbackEQ.
func Fallback(v bool) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldFallback, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldFailureReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.PageResult {
	return predicate.PageResult(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.PageResult {
	return predicate.PageResult(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldContainsFold(FieldTaskID, v))
}

// PageNoEQ applies the EQ predicate on the "page_no" field.
func PageNoEQ(v int) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldPageNo, v))
}

// PageNoNEQ applies the NEQ predicate on the "page_no" field.
func PageNoNEQ(v int) predicate.PageResult {
	return predicate.PageResult(sql.FieldNEQ(FieldPageNo, v))
}

// PageNoIn applies the In predicate on the "page_no" field.
func PageNoIn(vs ...int) predicate.PageResult {
	return predicate.PageResult(sql.FieldIn(FieldPageNo, vs...))
}

// PageNoNotIn applies the NotIn predicate on the "page_no" field.
func PageNoNotIn(vs ...int) predicate.PageResult {
	return predicate.PageResult(sql.FieldNotIn(FieldPageNo, vs...))
}

// PageNoGT applies the GT predicate on the "page_no" field.
func PageNoGT(v int) predicate.PageResult {
	return predicate.PageResult(sql.FieldGT(FieldPageNo, v))
}

// PageNoGTE applies the GTE predicate on the "page_no" field.
func PageNoGTE(v int) predicate.PageResult {
	return predicate.PageResult(sql.FieldGTE(FieldPageNo, v))
}

// PageNoLT applies the LT predicate on the "page_no" field.
func PageNoLT(v int) predicate.PageResult {
	return predicate.PageResult(sql.FieldLT(FieldPageNo, v))
}

// PageNoLTE applies the LTE predicate on the "page_no" field.
func PageNoLTE(v int) predicate.PageResult {
	return predicate.PageResult(sql.FieldLTE(FieldPageNo, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.PageResult {
	return predicate.PageResult(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.PageResult {
	return predicate.PageResult(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldContainsFold(FieldText, v))
}

// TokenConfidencesIsNil applies the IsNil predicate on the "token_confidences" field.
func TokenConfidencesIsNil() predicate.PageResult {
	return predicate.PageResult(sql.FieldIsNull(FieldTokenConfidences))
}

// TokenConfidencesNotNil applies the NotNil predicate on the "token_confidences" field.
func TokenConfidencesNotNil() predicate.PageResult {
	return predicate.PageResult(sql.FieldNotNull(FieldTokenConfidences))
}

// BoxesIsNil applies the IsNil predicate on the "boxes" field.
func BoxesIsNil() predicate.PageResult {
	return predicate.PageResult(sql.FieldIsNull(FieldBoxes))
}

// BoxesNotNil applies the NotNil predicate on the "boxes" field.
func BoxesNotNil() predicate.PageResult {
	return predicate.PageResult(sql.FieldNotNull(FieldBoxes))
}

// EngineEQ applies the EQ predicate on the "engine" field.
func EngineEQ(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldEngine, v))
}

// EngineNEQ applies the NEQ predicate on the "engine" field.
func EngineNEQ(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldNEQ(FieldEngine, v))
}

// EngineIn applies the In predicate on the "engine" field.
func EngineIn(vs ...string) predicate.PageResult {
	return predicate.PageResult(sql.FieldIn(FieldEngine, vs...))
}

// EngineNotIn applies the NotIn predicate on the "engine" field.
func EngineNotIn(vs ...string) predicate.PageResult {
	return predicate.PageResult(sql.FieldNotIn(FieldEngine, vs...))
}

// EngineGT applies the GT predicate on the "engine" field.
func EngineGT(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldGT(FieldEngine, v))
}

// EngineGTE applies the GTE predicate on the "engine" field.
func EngineGTE(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldGTE(FieldEngine, v))
}

// EngineLT applies the LT predicate on the "engine" field.
func EngineLT(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldLT(FieldEngine, v))
}

// EngineLTE applies the LTE predicate on the "engine" field.
func EngineLTE(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldLTE(FieldEngine, v))
}

// EngineContains applies the Contains predicate on the "engine" field.
func EngineContains(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldContains(FieldEngine, v))
}

// EngineHasPrefix applies the HasPrefix predicate on the "engine" field.
func EngineHasPrefix(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldHasPrefix(FieldEngine, v))
}

// EngineHasSuffix applies the HasSuffix predicate on the "engine" field.
func EngineHasSuffix(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldHasSuffix(FieldEngine, v))
}

// EngineEqualFold applies the EqualFold predicate on the "engine" field.
func EngineEqualFold(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEqualFold(FieldEngine, v))
}

// EngineContainsFold applies the ContainsFold predicate on the "engine" field.
func EngineContainsFold(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldContainsFold(FieldEngine, v))
}

// FallbackEQ applies the EQ predicate on the "fallback" field.
func FallbackEQ(v bool) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldFallback, v))
}

// FallbackNEQ applies the NEQ predicate on the "fallback" field.
func FallbackNEQ(v bool) predicate.PageResult {
	return predicate.PageResult(sql.FieldNEQ(FieldFallback, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.PageResult {
	return predicate.PageResult(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.PageResult {
	return predicate.PageResult(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.PageResult {
	return predicate.PageResult(sql.FieldContainsFold(FieldFailureReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PageResult {
	return predicate.PageResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PageResult {
	return predicate.PageResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PageResult {
	return predicate.PageResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PageResult {
	return predicate.PageResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PageResult {
	return predicate.PageResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PageResult {
	return predicate.PageResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PageResult {
	return predicate.PageResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PageResult {
	return predicate.PageResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PageResult) predicate.PageResult {
	return predicate.PageResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PageResult) predicate.PageResult {
	return predicate.PageResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PageResult) predicate.PageResult {
	return predicate.PageResult(sql.NotPredicates(p))
}
