// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docflowhq/docflow/gen/ent/receiver"
	"github.com/google/uuid"
)

// Receiver is the model entity for the Receiver schema.
type Receiver struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Endpoint holds the value of the "endpoint" field.
	Endpoint string `json:"endpoint,omitempty"`
	// AuthKind holds the value of the "auth_kind" field.
	AuthKind string `json:"auth_kind,omitempty"`
	// AuthUser holds the value of the "auth_user" field.
	AuthUser string `json:"auth_user,omitempty"`
	// AuthToken holds the value of the "auth_token" field.
	AuthToken string `json:"-"`
	// SigningSecret holds the value of the "signing_secret" field.
	SigningSecret string `json:"-"`
	// BodyTemplate holds the value of the "body_template" field.
	BodyTemplate string `json:"body_template,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReceiverQuery when eager-loading is set.
	Edges        ReceiverEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReceiverEdges holds the relations/edges for other nodes in the graph.
type ReceiverEdges struct {
	// Rules holds the value of the rules edge.
	Rules []*Rule `json:"rules,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RulesOrErr returns the Rules value or an error if the edge
// was not loaded in eager-loading.
func (e ReceiverEdges) RulesOrErr() ([]*Rule, error) {
	if e.loadedTypes[0] {
		return e.Rules, nil
	}
	return nil, &NotLoadedError{edge: "rules"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Receiver) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case receiver.FieldActive:
			values[i] = new(sql.NullBool)
		case receiver.FieldName, receiver.FieldEndpoint, receiver.FieldAuthKind, receiver.FieldAuthUser, receiver.FieldAuthToken, receiver.FieldSigningSecret, receiver.FieldBodyTemplate:
			values[i] = new(sql.NullString)
		case receiver.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case receiver.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Receiver fields.
func (_m *Receiver) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case receiver.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case receiver.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case receiver.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case receiver.FieldAuthKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_kind", values[i])
			} else if value.Valid {
				_m.AuthKind = value.String
			}
		case receiver.FieldAuthUser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_user", values[i])
			} else if value.Valid {
				_m.AuthUser = value.String
			}
		case receiver.FieldAuthToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_token", values[i])
			} else if value.Valid {
				_m.AuthToken = value.String
			}
		case receiver.FieldSigningSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signing_secret", values[i])
			} else if value.Valid {
				_m.SigningSecret = value.String
			}
		case receiver.FieldBodyTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body_template", values[i])
			} else if value.Valid {
				_m.BodyTemplate = value.String
			}
		case receiver.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case receiver.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Receiver.
// This includes values selected through modifiers, order, etc.
func (_m *Receiver) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRules queries the "rules" edge of the Receiver entity.
func (_m *Receiver) QueryRules() *RuleQuery {
	return NewReceiverClient(_m.config).QueryRules(_m)
}

// Update returns a builder for updating this Receiver.
// Note that you need to call Receiver.Unwrap() before calling this method if this Receiver
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Receiver) Update() *ReceiverUpdateOne {
	return NewReceiverClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Receiver entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Receiver) Unwrap() *Receiver {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Receiver is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Receiver) String() string {
	var builder strings.Builder
	builder.WriteString("Receiver(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("auth_kind=")
	builder.WriteString(_m.AuthKind)
	builder.WriteString(", ")
	builder.WriteString("auth_user=")
	builder.WriteString(_m.AuthUser)
	builder.WriteString(", ")
	builder.WriteString("auth_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("signing_secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("body_template=")
	builder.WriteString(_m.BodyTemplate)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Receivers is a parsable slice of Receiver.
type Receivers []*Receiver
