// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docflowhq/docflow/gen/ent/fingerprint"
	"github.com/google/uuid"
)

// Fingerprint is the model entity for the Fingerprint schema.
type Fingerprint struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// SourceTaskID holds the value of the "source_task_id" field.
	SourceTaskID string `json:"source_task_id,omitempty"`
	// ExtractedData holds the value of the "extracted_data" field.
	ExtractedData json.RawMessage `json:"extracted_data,omitempty"`
	// ConfidenceScores holds the value of the "confidence_scores" field.
	ConfidenceScores json.RawMessage `json:"confidence_scores,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt   time.Time `json:"recorded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Fingerprint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fingerprint.FieldExtractedData, fingerprint.FieldConfidenceScores:
			values[i] = new([]byte)
		case fingerprint.FieldPageCount:
			values[i] = new(sql.NullInt64)
		case fingerprint.FieldFingerprint, fingerprint.FieldSourceTaskID:
			values[i] = new(sql.NullString)
		case fingerprint.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		case fingerprint.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Fingerprint fields.
func (_m *Fingerprint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fingerprint.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fingerprint.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case fingerprint.FieldSourceTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_task_id", values[i])
			} else if value.Valid {
				_m.SourceTaskID = value.String
			}
		case fingerprint.FieldExtractedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedData); err != nil {
					return fmt.Errorf("unmarshal field extracted_data: %w", err)
				}
			}
		case fingerprint.FieldConfidenceScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConfidenceScores); err != nil {
					return fmt.Errorf("unmarshal field confidence_scores: %w", err)
				}
			}
		case fingerprint.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = int(value.Int64)
			}
		case fingerprint.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Fingerprint.
// This includes values selected through modifiers, order, etc.
func (_m *Fingerprint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Fingerprint.
// Note that you need to call Fingerprint.Unwrap() before calling this method if this Fingerprint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Fingerprint) Update() *FingerprintUpdateOne {
	return NewFingerprintClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Fingerprint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Fingerprint) Unwrap() *Fingerprint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Fingerprint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Fingerprint) String() string {
	var builder strings.Builder
	builder.WriteString("Fingerprint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("source_task_id=")
	builder.WriteString(_m.SourceTaskID)
	builder.WriteString(", ")
	builder.WriteString("extracted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedData))
	builder.WriteString(", ")
	builder.WriteString("confidence_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScores))
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageCount))
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Fingerprints is a parsable slice of Fingerprint.
type Fingerprints []*Fingerprint
