package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records the evaluated outcome of one completed test attempt.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("Client-assigned attempt identifier"),
		field.Float("score").
			Comment("Percentage score in [0,100]"),
		field.Float("marks_awarded"),
		field.Float("max_marks"),
		field.Int("correct_answers"),
		field.Int("incorrect_answers"),
		field.Int("unanswered"),
		field.Int("total_time_secs"),
		field.String("status").
			NotEmpty().
			Comment("completed or abandoned"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
	}
}
