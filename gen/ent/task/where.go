// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/docflowhq/docflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFingerprint, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRuleID, v))
}

// RuleVersion applies equality check predicate on the "rule_version" field. It's identical to RuleVersionEQ.
func RuleVersion(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRuleVersion, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPageCount, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFormat, v))
}

// BlobKey applies equality check predicate on the "blob_key" field. It's identical to BlobKeyEQ.
func BlobKey(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBlobKey, v))
}

// Instant applies equality check predicate on the "instant" field. It's identical to InstantEQ.
func Instant(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldInstant, v))
}

// RecognitionAttempts applies equality check predicate on the "recognition_attempts" field. It's identical to RecognitionAttemptsEQ.
func RecognitionAttempts(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRecognitionAttempts, v))
}

// DeliveryAttempts applies equality check predicate on the "delivery_attempts" field. It's identical to DeliveryAttemptsEQ.
func DeliveryAttempts(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDeliveryAttempts, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldFingerprint, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldStatus, v))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldRuleID, v))
}

// RuleVersionEQ applies the EQ predicate on the "rule_version" field.
func RuleVersionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRuleVersion, v))
}

// RuleVersionNEQ applies the NEQ predicate on the "rule_version" field.
func RuleVersionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRuleVersion, v))
}

// RuleVersionIn applies the In predicate on the "rule_version" field.
func RuleVersionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRuleVersion, vs...))
}

// RuleVersionNotIn applies the NotIn predicate on the "rule_version" field.
func RuleVersionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRuleVersion, vs...))
}

// RuleVersionGT applies the GT predicate on the "rule_version" field.
func RuleVersionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRuleVersion, v))
}

// RuleVersionGTE applies the GTE predicate on the "rule_version" field.
func RuleVersionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRuleVersion, v))
}

// RuleVersionLT applies the LT predicate on the "rule_version" field.
func RuleVersionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRuleVersion, v))
}

// RuleVersionLTE applies the LTE predicate on the "rule_version" field.
func RuleVersionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRuleVersion, v))
}

// RuleVersionContains applies the Contains predicate on the "rule_version" field.
func RuleVersionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldRuleVersion, v))
}

// RuleVersionHasPrefix applies the HasPrefix predicate on the "rule_version" field.
func RuleVersionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldRuleVersion, v))
}

// RuleVersionHasSuffix applies the HasSuffix predicate on the "rule_version" field.
func RuleVersionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldRuleVersion, v))
}

// RuleVersionEqualFold applies the EqualFold predicate on the "rule_version" field.
func RuleVersionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldRuleVersion, v))
}

// RuleVersionContainsFold applies the ContainsFold predicate on the "rule_version" field.
func RuleVersionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldRuleVersion, v))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPageCount, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldFormat, v))
}

// BlobKeyEQ applies the EQ predicate on the "blob_key" field.
func BlobKeyEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBlobKey, v))
}

// BlobKeyNEQ applies the NEQ predicate on the "blob_key" field.
func BlobKeyNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldBlobKey, v))
}

// BlobKeyIn applies the In predicate on the "blob_key" field.
func BlobKeyIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldBlobKey, vs...))
}

// BlobKeyNotIn applies the NotIn predicate on the "blob_key" field.
func BlobKeyNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldBlobKey, vs...))
}

// BlobKeyGT applies the GT predicate on the "blob_key" field.
func BlobKeyGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldBlobKey, v))
}

// BlobKeyGTE applies the GTE predicate on the "blob_key" field.
func BlobKeyGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldBlobKey, v))
}

// BlobKeyLT applies the LT predicate on the "blob_key" field.
func BlobKeyLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldBlobKey, v))
}

// BlobKeyLTE applies the LTE predicate on the "blob_key" field.
func BlobKeyLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldBlobKey, v))
}

// BlobKeyContains applies the Contains predicate on the "blob_key" field.
func BlobKeyContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldBlobKey, v))
}

// BlobKeyHasPrefix applies the HasPrefix predicate on the "blob_key" field.
func BlobKeyHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldBlobKey, v))
}

// BlobKeyHasSuffix applies the HasSuffix predicate on the "blob_key" field.
func BlobKeyHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldBlobKey, v))
}

// BlobKeyEqualFold applies the EqualFold predicate on the "blob_key" field.
func BlobKeyEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldBlobKey, v))
}

// BlobKeyContainsFold applies the ContainsFold predicate on the "blob_key" field.
func BlobKeyContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldBlobKey, v))
}

// InstantEQ applies the EQ predicate on the "instant" field.
func InstantEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldInstant, v))
}

// InstantNEQ applies the NEQ predicate on the "instant" field.
func InstantNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldInstant, v))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldExtractedData))
}

// ConfidenceScoresIsNil applies the IsNil predicate on the "confidence_scores" field.
func ConfidenceScoresIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldConfidenceScores))
}

// ConfidenceScoresNotNil applies the NotNil predicate on the "confidence_scores" field.
func ConfidenceScoresNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldConfidenceScores))
}

// AuditReasonsIsNil applies the IsNil predicate on the "audit_reasons" field.
func AuditReasonsIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAuditReasons))
}

// AuditReasonsNotNil applies the NotNil predicate on the "audit_reasons" field.
func AuditReasonsNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAuditReasons))
}

// RecognitionAttemptsEQ applies the EQ predicate on the "recognition_attempts" field.
func RecognitionAttemptsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRecognitionAttempts, v))
}

// RecognitionAttemptsNEQ applies the NEQ predicate on the "recognition_attempts" field.
func RecognitionAttemptsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRecognitionAttempts, v))
}

// RecognitionAttemptsIn applies the In predicate on the "recognition_attempts" field.
func RecognitionAttemptsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRecognitionAttempts, vs...))
}

// RecognitionAttemptsNotIn applies the NotIn predicate on the "recognition_attempts" field.
func RecognitionAttemptsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRecognitionAttempts, vs...))
}

// RecognitionAttemptsGT applies the GT predicate on the "recognition_attempts" field.
func RecognitionAttemptsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRecognitionAttempts, v))
}

// RecognitionAttemptsGTE applies the GTE predicate on the "recognition_attempts" field.
func RecognitionAttemptsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRecognitionAttempts, v))
}

// RecognitionAttemptsLT applies the LT predicate on the "recognition_attempts" field.
func RecognitionAttemptsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRecognitionAttempts, v))
}

// RecognitionAttemptsLTE applies the LTE predicate on the "recognition_attempts" field.
func RecognitionAttemptsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRecognitionAttempts, v))
}

// DeliveryAttemptsEQ applies the EQ predicate on the "delivery_attempts" field.
func DeliveryAttemptsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDeliveryAttempts, v))
}

// DeliveryAttemptsNEQ applies the NEQ predicate on the "delivery_attempts" field.
func DeliveryAttemptsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDeliveryAttempts, v))
}

// DeliveryAttemptsIn applies the In predicate on the "delivery_attempts" field.
func DeliveryAttemptsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDeliveryAttempts, vs...))
}

// DeliveryAttemptsNotIn applies the NotIn predicate on the "delivery_attempts" field.
func DeliveryAttemptsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDeliveryAttempts, vs...))
}

// DeliveryAttemptsGT applies the GT predicate on the "delivery_attempts" field.
func DeliveryAttemptsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDeliveryAttempts, v))
}

// DeliveryAttemptsGTE applies the GTE predicate on the "delivery_attempts" field.
func DeliveryAttemptsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDeliveryAttempts, v))
}

// DeliveryAttemptsLT applies the LT predicate on the "delivery_attempts" field.
func DeliveryAttemptsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDeliveryAttempts, v))
}

// DeliveryAttemptsLTE applies the LTE predicate on the "delivery_attempts" field.
func DeliveryAttemptsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDeliveryAttempts, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
