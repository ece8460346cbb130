package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UnlockEvent records a one-shot difficulty or specialty unlock.
type UnlockEvent struct {
	ent.Schema
}

func (UnlockEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (UnlockEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("difficulty or specialty"),
		field.String("name").
			NotEmpty().
			Comment("Level or specialty name"),
		field.String("shift_id").
			Optional().
			Comment("Shift that triggered the unlock"),
	}
}

func (UnlockEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}
