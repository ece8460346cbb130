// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/devaun0506/blackstar/ent/shiftevent"
)

// ShiftEvent is the model entity for the ShiftEvent schema.
type ShiftEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID identifying the shift
	ShiftID string `json:"shift_id,omitempty"`
	// Questions answered during the shift
	Questions int `json:"questions,omitempty"`
	// Shift accuracy in [0,1]
	Accuracy float64 `json:"accuracy,omitempty"`
	// Longest correct streak within the shift
	Streak       int `json:"streak,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ShiftEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case shiftevent.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case shiftevent.FieldID, shiftevent.FieldSequence, shiftevent.FieldQuestions, shiftevent.FieldStreak:
			values[i] = new(sql.NullInt64)
		case shiftevent.FieldShiftID:
			values[i] = new(sql.NullString)
		case shiftevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ShiftEvent fields.
func (_m *ShiftEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case shiftevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case shiftevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case shiftevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case shiftevent.FieldShiftID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shift_id", values[i])
			} else if value.Valid {
				_m.ShiftID = value.String
			}
		case shiftevent.FieldQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value.Valid {
				_m.Questions = int(value.Int64)
			}
		case shiftevent.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case shiftevent.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ShiftEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ShiftEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ShiftEvent.
// Note that you need to call ShiftEvent.Unwrap() before calling this method if this ShiftEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ShiftEvent) Update() *ShiftEventUpdateOne {
	return NewShiftEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ShiftEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ShiftEvent) Unwrap() *ShiftEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ShiftEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ShiftEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ShiftEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("shift_id=")
	builder.WriteString(_m.ShiftID)
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteByte(')')
	return builder.String()
}

// ShiftEvents is a parsable slice of ShiftEvent.
type ShiftEvents []*ShiftEvent
