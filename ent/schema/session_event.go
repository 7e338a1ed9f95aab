package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records case-session lifecycle events (start/restart/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("case_id").
			NotEmpty().
			Comment("Case definition the session ran against"),
		field.String("action").
			NotEmpty().
			Comment("start, restart, or end"),
		field.Int("steps_taken").
			Default(0).
			Comment("Decision count at time of event (on end only)"),
		field.Bool("completed").
			Default(false).
			Comment("Whether the case was completed (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("case_id"),
		index.Fields("action"),
	}
}
