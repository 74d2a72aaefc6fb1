package contentgen

import (
	"context"

	"github.com/prepdeck/prepdeck/internal/item"
)

// Generator produces learning items for a topic request.
type Generator interface {
	// Generate produces up to input.Count validated items.
	// All configured validators run on every item before it is returned.
	Generate(ctx context.Context, input GenerateInput) ([]item.LearningItem, error)
}

// GenerateInput holds all context needed to generate items for one topic.
type GenerateInput struct {
	// Topic is the target topic, e.g. "quadratic equations".
	Topic string

	// Subtopic narrows the topic when set.
	Subtopic string

	// Subject is the parent subject, e.g. "math".
	Subject string

	// Difficulty is the target difficulty for the batch.
	Difficulty item.Difficulty

	// Count is how many items to request.
	Count int

	// PriorQuestions contains question texts already in the catalog for
	// this topic. Used for deduplication in the prompt.
	PriorQuestions []string

	// WeakAreaNotes describes the learner's recent mistakes on this topic,
	// included in the prompt when available for better targeting.
	WeakAreaNotes []string
}
