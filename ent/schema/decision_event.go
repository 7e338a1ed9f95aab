package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionEvent records one submitted decision and its verdict.
type DecisionEvent struct {
	ent.Schema
}

func (DecisionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DecisionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the decision belongs to"),
		field.String("case_id").
			NotEmpty(),
		field.Int("step_index").
			Comment("Zero-based decision point index"),
		field.String("stage").
			NotEmpty().
			Comment("Stage ID resolved for the step"),
		field.String("decision").
			NotEmpty().
			Comment("Learner-submitted decision text"),
		field.Bool("matched_optimal").
			Comment("Decision Evaluator verdict"),
		field.Bool("terminal").
			Default(false).
			Comment("Whether the stage was the terminal one"),
	}
}

func (DecisionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("case_id"),
		index.Fields("stage"),
	}
}
