package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one spaced-repetition review of a learning item.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Comment("Learning item that was reviewed"),
		field.String("topic").
			NotEmpty().
			Comment("Topic of the item at review time"),
		field.String("difficulty").
			NotEmpty().
			Comment("Item difficulty at review time"),
		field.Float("performance").
			Comment("Recall performance in [0,1]"),
		field.Int("interval_days").
			Comment("Interval assigned by this review"),
		field.Time("next_review").
			Comment("When the item comes due again"),
		field.Int("time_secs").
			Default(0).
			Comment("Seconds the learner spent on the review"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("topic"),
	}
}
