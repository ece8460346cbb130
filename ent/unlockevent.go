// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/devaun0506/blackstar/ent/unlockevent"
)

// UnlockEvent is the model entity for the UnlockEvent schema.
type UnlockEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// difficulty or specialty
	Kind string `json:"kind,omitempty"`
	// Level or specialty name
	Name string `json:"name,omitempty"`
	// Shift that triggered the unlock
	ShiftID      string `json:"shift_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnlockEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unlockevent.FieldID, unlockevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case unlockevent.FieldKind, unlockevent.FieldName, unlockevent.FieldShiftID:
			values[i] = new(sql.NullString)
		case unlockevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnlockEvent fields.
func (_m *UnlockEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unlockevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case unlockevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case unlockevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case unlockevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case unlockevent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case unlockevent.FieldShiftID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shift_id", values[i])
			} else if value.Valid {
				_m.ShiftID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UnlockEvent.
// This includes values selected through modifiers, order, etc.
func (_m *UnlockEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UnlockEvent.
// Note that you need to call UnlockEvent.Unwrap() before calling this method if this UnlockEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UnlockEvent) Update() *UnlockEventUpdateOne {
	return NewUnlockEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UnlockEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UnlockEvent) Unwrap() *UnlockEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnlockEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UnlockEvent) String() string {
	var builder strings.Builder
	builder.WriteString("UnlockEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("shift_id=")
	builder.WriteString(_m.ShiftID)
	builder.WriteByte(')')
	return builder.String()
}

// UnlockEvents is a parsable slice of UnlockEvent.
type UnlockEvents []*UnlockEvent
