package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot stores the item catalog plus all learner progress serialized as
// one JSON blob, keyed by the event sequence it was taken at. Startup loads
// the newest snapshot and replays only events above its sequence.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Event sequence the snapshot is consistent with"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was written"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized catalog and learner progress"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
