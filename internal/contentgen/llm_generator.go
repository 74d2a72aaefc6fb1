package contentgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck/internal/item"
	"github.com/prepdeck/prepdeck/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// itemDraft is one raw item from the LLM response before validation.
type itemDraft struct {
	Question       string   `json:"question"`
	Type           string   `json:"type"`
	Choices        []string `json:"choices"`
	CorrectChoice  string   `json:"correct_choice"`
	CorrectChoices []string `json:"correct_choices"`
	CorrectNumber  float64  `json:"correct_number"`
	CognitiveLevel string   `json:"cognitive_level"`
	AllottedSecs   int      `json:"allotted_secs"`
	Explanation    string   `json:"explanation"`
}

// itemBatchOutput is the raw LLM response envelope.
type itemBatchOutput struct {
	Items []itemDraft `json:"items"`
}

// Generate produces validated items for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]item.LearningItem, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeItemGeneration)

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ItemSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw itemBatchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Items) == 0 {
		return nil, fmt.Errorf("LLM returned no items")
	}

	var items []item.LearningItem
	for i := range raw.Items {
		draft := &raw.Items[i]

		// Run validators in order; the first failure rejects the draft.
		ok := true
		for _, v := range g.config.Validators {
			if verr := v.Validate(draft, input); verr != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		items = append(items, draftToItem(draft, input))
		if input.Count > 0 && len(items) == input.Count {
			break
		}
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no generated item passed validation")
	}
	return items, nil
}

// draftToItem converts a validated draft into a catalog item. Marks and
// penalties follow the difficulty-based defaults.
func draftToItem(d *itemDraft, input GenerateInput) item.LearningItem {
	it := item.LearningItem{
		ID:             uuid.NewString(),
		Topic:          input.Topic,
		Subtopic:       input.Subtopic,
		Subject:        input.Subject,
		Difficulty:     input.Difficulty,
		Type:           item.QuestionType(d.Type),
		Marks:          marksFor(input.Difficulty),
		NegativeMarks:  negativeMarksFor(input.Difficulty),
		AllottedSecs:   d.AllottedSecs,
		CognitiveLevel: item.CognitiveLevel(d.CognitiveLevel),
		Question:       d.Question,
		Explanation:    d.Explanation,
	}

	switch it.Type {
	case item.TypeSingleChoice:
		it.Choices = d.Choices
		it.Key = item.AnswerKey{Choice: d.CorrectChoice}
	case item.TypeMultiChoice:
		it.Choices = d.Choices
		it.Key = item.AnswerKey{Choices: d.CorrectChoices}
	case item.TypeNumeric:
		it.Key = item.AnswerKey{Number: d.CorrectNumber}
	}
	return it
}

// marksFor returns the default marks for a difficulty rank.
func marksFor(d item.Difficulty) float64 {
	switch d {
	case item.DifficultyEasy:
		return 1
	case item.DifficultyMedium:
		return 2
	case item.DifficultyHard:
		return 3
	case item.DifficultyExpert:
		return 4
	}
	return 1
}

// negativeMarksFor returns the default wrong-answer penalty, a quarter of
// the marks in the usual competitive-exam convention.
func negativeMarksFor(d item.Difficulty) float64 {
	return marksFor(d) / 4
}
