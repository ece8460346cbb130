// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/devaun0506/blackstar/ent/milestoneevent"
)

// MilestoneEvent is the model entity for the MilestoneEvent schema.
type MilestoneEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Milestone table identifier
	MilestoneID string `json:"milestone_id,omitempty"`
	// Reward description at time of award
	Reward string `json:"reward,omitempty"`
	// Shift that triggered the milestone
	ShiftID      string `json:"shift_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MilestoneEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case milestoneevent.FieldID, milestoneevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case milestoneevent.FieldMilestoneID, milestoneevent.FieldReward, milestoneevent.FieldShiftID:
			values[i] = new(sql.NullString)
		case milestoneevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MilestoneEvent fields.
func (_m *MilestoneEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case milestoneevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case milestoneevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case milestoneevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case milestoneevent.FieldMilestoneID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field milestone_id", values[i])
			} else if value.Valid {
				_m.MilestoneID = value.String
			}
		case milestoneevent.FieldReward:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reward", values[i])
			} else if value.Valid {
				_m.Reward = value.String
			}
		case milestoneevent.FieldShiftID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MilestoneEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MilestoneEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MilestoneEvent.
// Note that you need to call MilestoneEvent.Unwrap() before calling this method if this MilestoneEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MilestoneEvent) Update() *MilestoneEventUpdateOne {
	return NewMilestoneEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MilestoneEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MilestoneEvent) Unwrap() *MilestoneEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MilestoneEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MilestoneEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MilestoneEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("milestone_id=")
	builder.WriteString(_m.MilestoneID)
	builder.WriteString(", ")
	builder.WriteString("reward=")
	builder.WriteString(_m.Reward)
	builder.WriteString(", ")
	builder.WriteString("shift_id=")
	builder.WriteString(_m.ShiftID)
	builder.WriteByte(')')
	return builder.String()
}

// MilestoneEvents is a parsable slice of MilestoneEvent.
type MilestoneEvents []*MilestoneEvent
