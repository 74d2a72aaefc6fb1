package contentgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/internal/item"
	"github.com/prepdeck/prepdeck/internal/llm"
)

func validDraftJSON() json.RawMessage {
	return json.RawMessage(`{
		"items": [
			{
				"question": "What is 12 * 8?",
				"type": "numeric",
				"choices": [],
				"correct_choice": "",
				"correct_choices": [],
				"correct_number": 96,
				"cognitive_level": "apply",
				"allotted_secs": 60,
				"explanation": "12 * 8 = 96."
			},
			{
				"question": "Which value of x solves x + 3 = 7?",
				"type": "single_choice",
				"choices": ["2", "3", "4", "5"],
				"correct_choice": "4",
				"correct_choices": [],
				"correct_number": 0,
				"cognitive_level": "apply",
				"allotted_secs": 45,
				"explanation": "Subtract 3 from both sides: x = 4."
			}
		]
	}`)
}

func genInput() GenerateInput {
	return GenerateInput{
		Topic:      "algebra",
		Subject:    "math",
		Difficulty: item.DifficultyMedium,
		Count:      2,
	}
}

func TestGenerate_ValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDraftJSON()})
	gen := New(mock, DefaultConfig())

	items, err := gen.Generate(context.Background(), genInput())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	numeric := items[0]
	if numeric.Type != item.TypeNumeric || numeric.Key.Number != 96 {
		t.Errorf("numeric item = %+v, want numeric key 96", numeric)
	}
	if numeric.Topic != "algebra" || numeric.Difficulty != item.DifficultyMedium {
		t.Errorf("item metadata = %s/%s, want algebra/medium", numeric.Topic, numeric.Difficulty)
	}
	if numeric.Marks != 2 || numeric.NegativeMarks != 0.5 {
		t.Errorf("marks = %v/%v, want 2/0.5 for medium", numeric.Marks, numeric.NegativeMarks)
	}
	if numeric.ID == "" || numeric.ID == items[1].ID {
		t.Error("items must carry distinct non-empty IDs")
	}

	sc := items[1]
	if sc.Type != item.TypeSingleChoice || sc.Key.Choice != "4" {
		t.Errorf("single-choice item = %+v, want key choice 4", sc)
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("generated item fails catalog validation: %v", err)
	}
}

func TestGenerate_InvalidDraftsFiltered(t *testing.T) {
	// Second item has a correct_choice outside its choices; only the first
	// survives validation.
	content := json.RawMessage(`{
		"items": [
			{
				"question": "What is 2 + 2?",
				"type": "numeric",
				"choices": [],
				"correct_choice": "",
				"correct_choices": [],
				"correct_number": 4,
				"cognitive_level": "remember",
				"allotted_secs": 30,
				"explanation": "2 + 2 = 4."
			},
			{
				"question": "Pick the prime.",
				"type": "single_choice",
				"choices": ["4", "6", "8", "9"],
				"correct_choice": "7",
				"correct_choices": [],
				"correct_number": 0,
				"cognitive_level": "remember",
				"allotted_secs": 30,
				"explanation": "7 is prime."
			}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	items, err := gen.Generate(context.Background(), genInput())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1 (invalid draft dropped)", len(items))
	}
}

func TestGenerate_AllInvalidFails(t *testing.T) {
	content := json.RawMessage(`{"items": [{"question": "", "type": "numeric", "choices": [], "correct_choice": "", "correct_choices": [], "correct_number": 1, "cognitive_level": "remember", "allotted_secs": 30, "explanation": "x"}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), genInput()); err == nil {
		t.Fatal("expected error when no draft passes validation")
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> provider unavailable
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), genInput()); err == nil {
		t.Fatal("expected provider error")
	}
}

func TestGenerate_PromptCarriesDedupAndDifficulty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDraftJSON()})
	gen := New(mock, DefaultConfig())

	input := genInput()
	input.PriorQuestions = []string{"What is 12 * 8?"}
	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Difficulty: medium") {
		t.Errorf("prompt missing difficulty:\n%s", msg)
	}
	if !strings.Contains(msg, "What is 12 * 8?") {
		t.Errorf("prompt missing dedup list:\n%s", msg)
	}
	if mock.Calls[0].Schema != ItemSchema {
		t.Error("request must carry the item schema")
	}
}

func TestBuildDedup_LimitsToMostRecent(t *testing.T) {
	prior := []string{"q1", "q2", "q3", "q4"}
	got := buildDedup(prior, 2)
	if strings.Contains(got, "q1") || !strings.Contains(got, "q4") {
		t.Errorf("buildDedup = %q, want only the 2 most recent", got)
	}
}

func TestBuildDedup_Empty(t *testing.T) {
	if got := buildDedup(nil, 8); got != "None" {
		t.Errorf("buildDedup(nil) = %q, want None", got)
	}
}
