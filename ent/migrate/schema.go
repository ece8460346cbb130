// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MilestoneEventsColumns holds the columns for the "milestone_events" table.
	MilestoneEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "milestone_id", Type: field.TypeString},
		{Name: "reward", Type: field.TypeString, Default: ""},
		{Name: "shift_id", Type: field.TypeString, Nullable: true},
	}
	// MilestoneEventsTable holds the schema information for the "milestone_events" table.
	MilestoneEventsTable = &schema.Table{
		Name:       "milestone_events",
		Columns:    MilestoneEventsColumns,
		PrimaryKey: []*schema.Column{MilestoneEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "milestoneevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MilestoneEventsColumns[1]},
			},
			{
				Name:    "milestoneevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MilestoneEventsColumns[2]},
			},
			{
				Name:    "milestoneevent_milestone_id",
				Unique:  false,
				Columns: []*schema.Column{MilestoneEventsColumns[3]},
			},
		},
	}
	// ShiftEventsColumns holds the columns for the "shift_events" table.
	ShiftEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "shift_id", Type: field.TypeString},
		{Name: "questions", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
	}
	// ShiftEventsTable holds the schema information for the "shift_events" table.
	ShiftEventsTable = &schema.Table{
		Name:       "shift_events",
		Columns:    ShiftEventsColumns,
		PrimaryKey: []*schema.Column{ShiftEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "shiftevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ShiftEventsColumns[1]},
			},
			{
				Name:    "shiftevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ShiftEventsColumns[2]},
			},
			{
				Name:    "shiftevent_shift_id",
				Unique:  false,
				Columns: []*schema.Column{ShiftEventsColumns[3]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// UnlockEventsColumns holds the columns for the "unlock_events" table.
	UnlockEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "shift_id", Type: field.TypeString, Nullable: true},
	}
	// UnlockEventsTable holds the schema information for the "unlock_events" table.
	UnlockEventsTable = &schema.Table{
		Name:       "unlock_events",
		Columns:    UnlockEventsColumns,
		PrimaryKey: []*schema.Column{UnlockEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unlockevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[1]},
			},
			{
				Name:    "unlockevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[2]},
			},
			{
				Name:    "unlockevent_kind",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MilestoneEventsTable,
		ShiftEventsTable,
		SnapshotsTable,
		UnlockEventsTable,
	}
)

func init() {
}
