// Code generated by ent, DO NOT EDIT.

package fingerprint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldID, id))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldFingerprint, v))
}

// SourceTaskID applies equality check predicate on the "source_task_id" field. It's identical to SourceTaskIDEQ.
func SourceTaskID(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldSourceTaskID, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldPageCount, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldRecordedAt, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldFingerprint, v))
}

// SourceTaskIDEQ applies the EQ predicate on the "source_task_id" field.
func SourceTaskIDEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldSourceTaskID, v))
}

// SourceTaskIDNEQ applies the NEQ predicate on the "source_task_id" field.
func SourceTaskIDNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldSourceTaskID, v))
}

// SourceTaskIDIn applies the In predicate on the "source_task_id" field.
func SourceTaskIDIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldSourceTaskID, vs...))
}

// SourceTaskIDNotIn applies the NotIn predicate on the "source_task_id" field.
func SourceTaskIDNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldSourceTaskID, vs...))
}

// SourceTaskIDGT applies the GT predicate on the "source_task_id" field.
func SourceTaskIDGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldSourceTaskID, v))
}

// SourceTaskIDGTE applies the GTE predicate on the "source_task_id" field.
func SourceTaskIDGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldSourceTaskID, v))
}

// SourceTaskIDLT applies the LT predicate on the "source_task_id" field.
func SourceTaskIDLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldSourceTaskID, v))
}

// SourceTaskIDLTE applies the LTE predicate on the "source_task_id" field.
func SourceTaskIDLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldSourceTaskID, v))
}

// SourceTaskIDContains applies the Contains predicate on the "source_task_id" field.
func SourceTaskIDContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldSourceTaskID, v))
}

// SourceTaskIDHasPrefix applies the HasPrefix predicate on the "source_task_id" field.
func SourceTaskIDHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldSourceTaskID, v))
}

// SourceTaskIDHasSuffix applies the HasSuffix predicate on the "source_task_id" field.
func SourceTaskIDHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldSourceTaskID, v))
}

// SourceTaskIDEqualFold applies the EqualFold predicate on the "source_task_id" field.
func SourceTaskIDEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldSourceTaskID, v))
}

// SourceTaskIDContainsFold applies the ContainsFold predicate on the "source_task_id" field.
func SourceTaskIDContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldSourceTaskID, v))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldExtractedData))
}

// ConfidenceScoresIsNil applies the IsNil predicate on the "confidence_scores" field.
func ConfidenceScoresIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldConfidenceScores))
}

// ConfidenceScoresNotNil applies the NotNil predicate on the "confidence_scores" field.
func ConfidenceScoresNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldConfidenceScores))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldPageCount, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldRecordedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Fingerprint) predicate.Fingerprint {
	return predicate.Fingerprint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Fingerprint) predicate.Fingerprint {
	return predicate.Fingerprint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Fingerprint) predicate.Fingerprint {
	return predicate.Fingerprint(sql.NotPredicates(p))
}
