package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records a mutation of the completion set (a module
// completion, a wholesale reload, or a reset) for audit and analytics.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").NotEmpty().
			Comment("complete, reload, or reset"),
		field.String("module_id").Optional().
			Comment("Completed module; empty for reload/reset"),
		field.Int("newly_unlocked").Default(0).
			Comment("How many modules this completion unlocked"),
		field.String("session_id").Optional(),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("module_id"),
	}
}
