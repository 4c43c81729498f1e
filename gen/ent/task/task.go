// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldRuleVersion holds the string denoting the rule_version field in the database.
	FieldRuleVersion = "rule_version"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldBlobKey holds the string denoting the blob_key field in the database.
	FieldBlobKey = "blob_key"
	// FieldInstant holds the string denoting the instant field in the database.
	FieldInstant = "instant"
	// FieldExtractedData holds the string denoting the extracted_data field in the database.
	FieldExtractedData = "extracted_data"
	// FieldConfidenceScores holds the string denoting the confidence_scores field in the database.
	FieldConfidenceScores = "confidence_scores"
	// FieldAuditReasons holds the string denoting the audit_reasons field in the database.
	FieldAuditReasons = "audit_reasons"
	// FieldRecognitionAttempts holds the string denoting the recognition_attempts field in the database.
	FieldRecognitionAttempts = "recognition_attempts"
	// FieldDeliveryAttempts holds the string denoting the delivery_attempts field in the database.
	FieldDeliveryAttempts = "delivery_attempts"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the task in the database.
	Table = "task"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldFingerprint,
	FieldStatus,
	FieldRuleID,
	FieldRuleVersion,
	FieldPageCount,
	FieldFormat,
	FieldBlobKey,
	FieldInstant,
	FieldExtractedData,
	FieldConfidenceScores,
	FieldAuditReasons,
	FieldRecognitionAttempts,
	FieldDeliveryAttempts,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	FingerprintValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// RuleIDValidator is a validator for the "rule_id" field. It is called by the builders before save.
	RuleIDValidator func(string) error
	// RuleVersionValidator is a validator for the "rule_version" field. It is called by the builders before save.
	RuleVersionValidator func(string) error
	// DefaultPageCount holds the default value on creation for the "page_count" field.
	DefaultPageCount int
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultBlobKey holds the default value on creation for the "blob_key" field.
	DefaultBlobKey string
	// DefaultInstant holds the default value on creation for the "instant" field.
	DefaultInstant bool
	// DefaultRecognitionAttempts holds the default value on creation for the "recognition_attempts" field.
	DefaultRecognitionAttempts int
	// DefaultDeliveryAttempts holds the default value on creation for the "delivery_attempts" field.
	DefaultDeliveryAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByRuleVersion orders the results by the rule_version field.
func ByRuleVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleVersion, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByBlobKey orders the results by the blob_key field.
func ByBlobKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobKey, opts...).ToFunc()
}

// ByInstant orders the results by the instant field.
func ByInstant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstant, opts...).ToFunc()
}

// ByRecognitionAttempts orders the results by the recognition_attempts field.
func ByRecognitionAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecognitionAttempts, opts...).ToFunc()
}

// ByDeliveryAttempts orders the results by the delivery_attempts field.
func ByDeliveryAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryAttempts, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
