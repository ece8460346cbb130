package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MilestoneEvent records a career milestone being reached.
type MilestoneEvent struct {
	ent.Schema
}

func (MilestoneEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MilestoneEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("milestone_id").
			NotEmpty().
			Comment("Milestone table identifier"),
		field.String("reward").
			Default("").
			Comment("Reward description at time of award"),
		field.String("shift_id").
			Optional().
			Comment("Shift that triggered the milestone"),
	}
}

func (MilestoneEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("milestone_id"),
	}
}
