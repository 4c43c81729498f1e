// Code generated by ent, DO NOT EDIT.

package receiver

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the receiver type in the database.
	Label = "receiver"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEndpoint holds the string denoting the endpoint field in the database.
	FieldEndpoint = "endpoint"
	// FieldAuthKind holds the string denoting the auth_kind field in the database.
	FieldAuthKind = "auth_kind"
	// FieldAuthUser holds the string denoting the auth_user field in the database.
	FieldAuthUser = "auth_user"
	// FieldAuthToken holds the string denoting the auth_token field in the database.
	FieldAuthToken = "auth_token"
	// FieldSigningSecret holds the string denoting the signing_secret field in the database.
	FieldSigningSecret = "signing_secret"
	// FieldBodyTemplate holds the string denoting the body_template field in the database.
	FieldBodyTemplate = "body_template"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRules holds the string denoting the rules edge name in mutations.
	EdgeRules = "rules"
	// Table holds the table name of the receiver in the database.
	Table = "receiver"
	// RulesTable is the table that holds the rules relation/edge. The primary key declared below.
	RulesTable = "rule_receivers"
	// RulesInverseTable is the table name for the Rule entity.
	// It exists in this package in order to avoid circular dependency with the "rule" package.
	RulesInverseTable = "rule"
)

// Columns holds all SQL columns for receiver fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEndpoint,
	FieldAuthKind,
	FieldAuthUser,
	FieldAuthToken,
	FieldSigningSecret,
	FieldBodyTemplate,
	FieldActive,
	FieldCreatedAt,
}

var (
	// RulesPrimaryKey and RulesColumn2 are the table columns denoting the
	// primary key for the rules relation (M2M).
	RulesPrimaryKey = []string{"rule_id", "receiver_id"}
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	EndpointValidator func(string) error
	// DefaultAuthKind holds the default value on creation for the "auth_kind" field.
	DefaultAuthKind string
	// AuthKindValidator is a validator for the "auth_kind" field. It is called by the builders before save.
	AuthKindValidator func(string) error
	// DefaultAuthUser holds the default value on creation for the "auth_user" field.
	DefaultAuthUser string
	// DefaultAuthToken holds the default value on creation for the "auth_token" field.
	DefaultAuthToken string
	// SigningSecretValidator is a validator for the "signing_secret" field. It is called by the builders before save.
	SigningSecretValidator func(string) error
	// DefaultBodyTemplate holds the default value on creation for the "body_template" field.
	DefaultBodyTemplate string
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Receiver queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEndpoint orders the results by the endpoint field.
func ByEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpoint, opts...).ToFunc()
}

// ByAuthKind orders the results by the auth_kind field.
func ByAuthKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthKind, opts...).ToFunc()
}

// ByAuthUser orders the results by the auth_user field.
func ByAuthUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthUser, opts...).ToFunc()
}

// ByAuthToken orders the results by the auth_token field.
func ByAuthToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthToken, opts...).ToFunc()
}

// BySigningSecret orders the results by the signing_secret field.
func BySigningSecret(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSigningSecret, opts...).ToFunc()
}

// ByBodyTemplate orders the results by the body_template field.
func ByBodyTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyTemplate, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRulesCount orders the results by rules count.
func ByRulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRulesStep(), opts...)
	}
}

// ByRules orders the results by rules terms.
func ByRules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RulesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, RulesTable, RulesPrimaryKey...),
	)
}
