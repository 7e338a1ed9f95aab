package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CredentialEvent records a one-shot CME credit issuance on case completion.
type CredentialEvent struct {
	ent.Schema
}

func (CredentialEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CredentialEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session that earned the credential"),
		field.String("case_id").
			NotEmpty(),
		field.String("case_title").
			NotEmpty(),
		field.Float("credits").
			Comment("CME credit value awarded"),
		field.Int("steps_taken").
			Default(0).
			Comment("Total decisions submitted before completion"),
	}
}

func (CredentialEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id"),
		index.Fields("session_id"),
	}
}
