package llm

import "context"

// PurposeItemGeneration labels item-generation traffic in the event log.
const PurposeItemGeneration = "item-generation"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context so the logging middleware can attribute the
// request in the event log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose tag, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
