// Code generated by ent, DO NOT EDIT.

package rule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the rule type in the database.
	Label = "rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPagePolicy holds the string denoting the page_policy field in the database.
	FieldPagePolicy = "page_policy"
	// FieldPages holds the string denoting the pages field in the database.
	FieldPages = "pages"
	// FieldEngines holds the string denoting the engines field in the database.
	FieldEngines = "engines"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeReceivers holds the string denoting the receivers edge name in mutations.
	EdgeReceivers = "receivers"
	// Table holds the table name of the rule in the database.
	Table = "rule"
	// ReceiversTable is the table that holds the receivers relation/edge. The primary key declared below.
	ReceiversTable = "rule_receivers"
	// ReceiversInverseTable is the table name for the Receiver entity.
	// It exists in this package in order to avoid circular dependency with the "receiver" package.
	ReceiversInverseTable = "receiver"
)

// Columns holds all SQL columns for rule fields.
var Columns = []string{
	FieldID,
	FieldRuleID,
	FieldVersion,
	FieldName,
	FieldPagePolicy,
	FieldPages,
	FieldEngines,
	FieldLanguage,
	FieldFields,
	FieldActive,
	FieldCreatedAt,
}

var (
	// ReceiversPrimaryKey and ReceiversColumn2 are the table columns denoting the
	// primary key for the receivers relation (M2M).
	ReceiversPrimaryKey = []string{"rule_id", "receiver_id"}
)

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
	// RuleIDValidator is a validator for the "rule_id" field. It is called by the builders before save.
	RuleIDValidator func(string) error
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(string) error
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// DefaultPagePolicy holds the default value on creation for the "page_policy" field.
	DefaultPagePolicy string
	// PagePolicyValidator is a validator for the "page_policy" field. It is called by the builders before save.
	PagePolicyValidator func(string) error
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Rule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPagePolicy orders the results by the page_policy field.
func ByPagePolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPagePolicy, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReceiversCount orders the results by receivers count.
func ByReceiversCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReceiversStep(), opts...)
	}
}

// ByReceivers orders the results by receivers terms.
func ByReceivers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReceiversStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newReceiversStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReceiversInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, ReceiversTable, ReceiversPrimaryKey...),
	)
}
