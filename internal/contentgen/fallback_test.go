package contentgen

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/item"
	"github.com/prepdeck/prepdeck/internal/store"
)

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, GenerateInput) ([]item.LearningItem, error) {
	return nil, errors.New("provider down")
}

// genEventRecorder captures appended generation events. Only
// AppendGenRequest is implemented; the embedded interface covers the rest.
type genEventRecorder struct {
	store.EventRepo
	events []store.GenRequestEventData
}

func (r *genEventRecorder) AppendGenRequest(_ context.Context, data store.GenRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestFallback_Deterministic(t *testing.T) {
	gen := NewFallback()
	input := GenerateInput{Topic: "algebra", Difficulty: item.DifficultyEasy, Count: 3}

	first, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("fallback items must be deterministic for the same input")
	}
	if len(first) != 3 {
		t.Errorf("got %d items, want 3", len(first))
	}
}

func TestFallback_ItemsAreValid(t *testing.T) {
	gen := NewFallback()
	items, err := gen.Generate(context.Background(), GenerateInput{
		Topic: "percentages", Subject: "math", Difficulty: item.DifficultyMedium, Count: 2,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			t.Errorf("fallback item invalid: %v", err)
		}
		if it.Topic != "percentages" {
			t.Errorf("topic = %s, want percentages", it.Topic)
		}
	}
}

func TestWithFallback_UsesPrimaryWhenHealthy(t *testing.T) {
	rec := &genEventRecorder{}
	gen := WithFallback(NewFallback(), failingGenerator{}, rec, zap.NewNop())

	items, err := gen.Generate(context.Background(), GenerateInput{
		Topic: "algebra", Difficulty: item.DifficultyEasy, Count: 1,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(items) != 1 {
		t.Errorf("got %d items, want 1", len(items))
	}
	if len(rec.events) != 0 {
		t.Errorf("recorded %d degradation events, want 0", len(rec.events))
	}
}

func TestWithFallback_DegradesOnPrimaryFailure(t *testing.T) {
	rec := &genEventRecorder{}
	gen := WithFallback(failingGenerator{}, NewFallback(), rec, zap.NewNop())

	items, err := gen.Generate(context.Background(), GenerateInput{
		Topic: "algebra", Difficulty: item.DifficultyHard, Count: 2,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(items) != 2 {
		t.Errorf("got %d items, want 2 from fallback", len(items))
	}

	if len(rec.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.events))
	}
	ev := rec.events[0]
	if !ev.FallbackUsed || ev.ItemsGenerated != 2 {
		t.Errorf("event = %+v, want FallbackUsed with 2 items", ev)
	}
	if ev.ErrorMessage == "" {
		t.Error("event should carry the primary failure message")
	}
}

func TestWithFallback_NilEventRepo(t *testing.T) {
	gen := WithFallback(failingGenerator{}, NewFallback(), nil, zap.NewNop())

	if _, err := gen.Generate(context.Background(), GenerateInput{
		Topic: "algebra", Difficulty: item.DifficultyEasy, Count: 1,
	}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
}

func TestGenerateBatch_CollectsInInputOrder(t *testing.T) {
	gen := NewFallback()
	inputs := []GenerateInput{
		{Topic: "algebra", Difficulty: item.DifficultyEasy, Count: 2},
		{Topic: "geometry", Difficulty: item.DifficultyEasy, Count: 1},
	}

	items, err := GenerateBatch(context.Background(), gen, DefaultConfig(), inputs)
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].Topic != "algebra" || items[2].Topic != "geometry" {
		t.Errorf("batch order = [%s ... %s], want algebra first, geometry last", items[0].Topic, items[2].Topic)
	}
}

func TestGenerateBatch_FailurePropagates(t *testing.T) {
	inputs := []GenerateInput{{Topic: "algebra", Count: 1}}
	if _, err := GenerateBatch(context.Background(), failingGenerator{}, DefaultConfig(), inputs); err == nil {
		t.Fatal("expected batch error")
	}
}
