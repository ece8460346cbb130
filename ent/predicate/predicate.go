// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// MilestoneEvent is the predicate function for milestoneevent builders.
type MilestoneEvent func(*sql.Selector)

// ShiftEvent is the predicate function for shiftevent builders.
type ShiftEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// UnlockEvent is the predicate function for unlockevent builders.
type UnlockEvent func(*sql.Selector)
