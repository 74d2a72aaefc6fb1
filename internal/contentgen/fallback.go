package contentgen

import (
	"context"
	"fmt"
	"hash/fnv"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/item"
	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/store"
)

// FallbackGenerator produces deterministic drill items without an LLM.
// It keeps practice available when no provider is configured or the
// provider is down. Items are simple arithmetic drills tagged with the
// requested topic so scheduling and analytics still work.
type FallbackGenerator struct{}

// NewFallback creates a FallbackGenerator.
func NewFallback() *FallbackGenerator {
	return &FallbackGenerator{}
}

func (g *FallbackGenerator) Generate(_ context.Context, input GenerateInput) ([]item.LearningItem, error) {
	count := input.Count
	if count <= 0 {
		count = 1
	}

	// Seed from the topic so the same request yields the same items.
	h := fnv.New32a()
	h.Write([]byte(input.Topic))
	seed := int(h.Sum32() % 50)

	items := make([]item.LearningItem, 0, count)
	for i := 0; i < count; i++ {
		a := seed + i*7 + 11
		b := seed + i*3 + 5
		items = append(items, item.LearningItem{
			ID:             fmt.Sprintf("fallback-%s-%d-%d", input.Difficulty, seed, i),
			Topic:          input.Topic,
			Subtopic:       input.Subtopic,
			Subject:        input.Subject,
			Difficulty:     input.Difficulty,
			Type:           item.TypeNumeric,
			Key:            item.AnswerKey{Number: float64(a + b)},
			Marks:          marksFor(input.Difficulty),
			NegativeMarks:  negativeMarksFor(input.Difficulty),
			AllottedSecs:   60,
			CognitiveLevel: item.LevelApply,
			Question:       fmt.Sprintf("Compute %d + %d.", a, b),
			Explanation:    fmt.Sprintf("Add the two values: %d + %d = %d.", a, b, a+b),
		})
	}
	return items, nil
}

// fallbackGenerator chains a primary Generator with a fallback, logging
// every degradation and recording it in the event log.
type fallbackGenerator struct {
	primary  Generator
	fallback Generator
	events   store.EventRepo
	log      *zap.Logger
}

// WithFallback wraps primary so that any generation failure falls through
// to the fallback generator instead of surfacing an error. events may be
// nil; degradations then go unrecorded.
func WithFallback(primary, fallback Generator, events store.EventRepo, log *zap.Logger) Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &fallbackGenerator{primary: primary, fallback: fallback, events: events, log: log}
}

func (g *fallbackGenerator) Generate(ctx context.Context, input GenerateInput) ([]item.LearningItem, error) {
	items, err := g.primary.Generate(ctx, input)
	if err == nil {
		return items, nil
	}

	g.log.Warn("primary item generation failed, using fallback",
		zap.String("topic", input.Topic),
		zap.String("difficulty", string(input.Difficulty)),
		zap.Int("count", input.Count),
		zap.Error(err),
	)

	start := time.Now()
	items, fbErr := g.fallback.Generate(ctx, input)
	if fbErr != nil {
		return nil, fbErr
	}
	g.recordDegradation(ctx, err, len(items), time.Since(start))
	return items, nil
}

func (g *fallbackGenerator) recordDegradation(ctx context.Context, cause error, produced int, elapsed time.Duration) {
	if g.events == nil {
		return
	}
	data := store.GenRequestEventData{
		Provider:       "fallback",
		Model:          "item-bank",
		Purpose:        llm.PurposeItemGeneration,
		LatencyMs:      elapsed.Milliseconds(),
		Success:        true,
		ErrorMessage:   cause.Error(),
		ItemsGenerated: produced,
		FallbackUsed:   true,
	}
	if err := g.events.AppendGenRequest(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record fallback event: %v\n", err)
	}
}
