package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// GenRequestEvent records a content-generation request against an LLM
// provider, including cost accounting and fallback usage.
type GenRequestEvent struct {
	ent.Schema
}

func (GenRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GenRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("LLM provider name"),
		field.String("model").
			Comment("Model identifier"),
		field.String("purpose").
			Comment("What the request was for, e.g. item-generation"),
		field.Int("input_tokens"),
		field.Int("output_tokens"),
		field.Int64("latency_ms"),
		field.Bool("success"),
		field.String("error_message").
			Optional(),
		field.Int("items_generated").
			Default(0).
			Comment("Items accepted from this request after validation"),
		field.Bool("fallback_used").
			Default(false).
			Comment("Whether the deterministic fallback produced the items"),
	}
}
