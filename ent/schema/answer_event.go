package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a test attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links to AttemptEvent"),
		field.String("item_id").
			NotEmpty().
			Comment("Item this question came from"),
		field.String("topic").
			NotEmpty().
			Comment("Topic of the item"),
		field.String("subtopic").
			Optional().
			Comment("Subtopic of the item, when set"),
		field.String("subject").
			Optional().
			Comment("Subject of the item, when set"),
		field.String("question_type").
			NotEmpty().
			Comment("single_choice, multi_choice, numeric, or free_text"),
		field.String("difficulty").
			NotEmpty().
			Comment("Item difficulty at attempt time"),
		field.Bool("correct").
			Optional().
			Nillable().
			Comment("Null for free-text answers pending manual review"),
		field.Bool("answered").
			Comment("Whether the learner gave any response"),
		field.Float("awarded").
			Comment("Marks awarded, negative when penalized"),
		field.Int("time_secs").
			Comment("Seconds spent on the question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("item_id"),
		index.Fields("topic"),
	}
}
