// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/clincase/ent/credentialevent"
)

// CredentialEvent is the model entity for the CredentialEvent schema.
type CredentialEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Session that earned the credential
	SessionID string `json:"session_id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// CaseTitle holds the value of the "case_title" field.
	CaseTitle string `json:"case_title,omitempty"`
	// CME credit value awarded
	Credits float64 `json:"credits,omitempty"`
	// Total decisions submitted before completion
	StepsTaken   int `json:"steps_taken,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CredentialEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case credentialevent.FieldCredits:
			values[i] = new(sql.NullFloat64)
		case credentialevent.FieldID, credentialevent.FieldSequence, credentialevent.FieldStepsTaken:
			values[i] = new(sql.NullInt64)
		case credentialevent.FieldSessionID, credentialevent.FieldCaseID, credentialevent.FieldCaseTitle:
			values[i] = new(sql.NullString)
		case credentialevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CredentialEvent fields.
func (_m *CredentialEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case credentialevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case credentialevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case credentialevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case credentialevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case credentialevent.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case credentialevent.FieldCaseTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_title", values[i])
			} else if value.Valid {
				_m.CaseTitle = value.String
			}
		case credentialevent.FieldCredits:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field credits", values[i])
			} else if value.Valid {
				_m.Credits = value.Float64
			}
		case credentialevent.FieldStepsTaken:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field steps_taken", values[i])
			} else if value.Valid {
				_m.StepsTaken = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CredentialEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CredentialEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CredentialEvent.
// Note that you need to call CredentialEvent.Unwrap() before calling this method if this CredentialEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CredentialEvent) Update() *CredentialEventUpdateOne {
	return NewCredentialEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CredentialEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CredentialEvent) Unwrap() *CredentialEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CredentialEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CredentialEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CredentialEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("case_title=")
	builder.WriteString(_m.CaseTitle)
	builder.WriteString(", ")
	builder.WriteString("credits=")
	builder.WriteString(fmt.Sprintf("%v", _m.Credits))
	builder.WriteString(", ")
	builder.WriteString("steps_taken=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepsTaken))
	builder.WriteByte(')')
	return builder.String()
}

// CredentialEvents is a parsable slice of CredentialEvent.
type CredentialEvents []*CredentialEvent
