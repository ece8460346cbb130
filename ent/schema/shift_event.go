package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ShiftEvent records one completed hospital shift.
type ShiftEvent struct {
	ent.Schema
}

func (ShiftEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ShiftEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("shift_id").
			NotEmpty().
			Comment("UUID identifying the shift"),
		field.Int("questions").
			Default(0).
			Comment("Questions answered during the shift"),
		field.Float("accuracy").
			Default(0).
			Comment("Shift accuracy in [0,1]"),
		field.Int("streak").
			Default(0).
			Comment("Longest correct streak within the shift"),
	}
}

func (ShiftEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("shift_id"),
	}
}
