// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docflowhq/docflow/gen/ent/pageresult"
	"github.com/google/uuid"
)

// PageResult is the model entity for the PageResult schema.
type PageResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// PageNo holds the value of the "page_no" field.
	PageNo int `json:"page_no,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// TokenConfidences holds the value of the "token_confidences" field.
	TokenConfidences json.RawMessage `json:"token_confidences,omitempty"`
	// Boxes holds the value of the "boxes" field.
	Boxes json.RawMessage `json:"boxes,omitempty"`
	// Engine holds the value of the "engine" field.
	Engine string `json:"engine,omitempty"`
	// Fallback holds the value of the "fallback" field.
	Fallback bool `json:"fallback,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason string `json:"failure_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PageResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pageresult.FieldTokenConfidences, pageresult.FieldBoxes:
			values[i] = new([]byte)
		case pageresult.FieldFallback:
			values[i] = new(sql.NullBool)
		case pageresult.FieldPageNo:
			values[i] = new(sql.NullInt64)
		case pageresult.FieldTaskID, pageresult.FieldText, pageresult.FieldEngine, pageresult.FieldFailureReason:
			values[i] = new(sql.NullString)
		case pageresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case pageresult.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PageResult fields.
func (_m *PageResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pageresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pageresult.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case pageresult.FieldPageNo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_no", values[i])
			} else if value.Valid {
				_m.PageNo = int(value.Int64)
			}
		case pageresult.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case pageresult.FieldTokenConfidences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field token_confidences", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TokenConfidences); err != nil {
					return fmt.Errorf("unmarshal field token_confidences: %w", err)
				}
			}
		case pageresult.FieldBoxes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field boxes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Boxes); err != nil {
					return fmt.Errorf("unmarshal field boxes: %w", err)
				}
			}
		case pageresult.FieldEngine:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine", values[i])
			} else if value.Valid {
				_m.Engine = value.String
			}
		case pageresult.FieldFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fallback", values[i])
			} else if value.Valid {
				_m.Fallback = value.Bool
			}
		case pageresult.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = value.String
			}
		case pageresult.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PageResult.
// This includes values selected through modifiers, order, etc.
func (_m *PageResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PageResult.
// Note that you need to call PageResult.Unwrap() before calling this method if this PageResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PageResult) Update() *PageResultUpdateOne {
	return NewPageResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PageResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PageResult) Unwrap() *PageResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PageResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PageResult) String() string {
	var builder strings.Builder
	builder.WriteString("PageResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("page_no=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNo))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("token_confidences=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenConfidences))
	builder.WriteString(", ")
	builder.WriteString("boxes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Boxes))
	builder.WriteString(", ")
	builder.WriteString("engine=")
	builder.WriteString(_m.Engine)
	builder.WriteString(", ")
	builder.WriteString("fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fallback))
	builder.WriteString(", ")
	builder.WriteString("failure_reason=")
	builder.WriteString(_m.FailureReason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PageResults is a parsable slice of PageResult.
type PageResults []*PageResult
