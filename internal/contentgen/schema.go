package contentgen

import "github.com/prepdeck/prepdeck/internal/llm"

// ItemSchema defines the JSON schema for LLM item generation responses.
var ItemSchema = &llm.Schema{
	Name:        "learning-items",
	Description: "A batch of exam practice questions with answer keys and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner, in plain ASCII text",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"single_choice", "multi_choice", "numeric"},
							"description": "How the learner answers: pick one choice, pick several, or type a number",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for choice types. Empty array for numeric.",
						},
						"correct_choice": map[string]any{
							"type":        "string",
							"description": "The correct option text for single_choice. Empty otherwise.",
						},
						"correct_choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "The correct option texts for multi_choice. Empty otherwise.",
						},
						"correct_number": map[string]any{
							"type":        "number",
							"description": "The correct value for numeric questions",
						},
						"cognitive_level": map[string]any{
							"type":        "string",
							"enum":        []any{"remember", "understand", "apply", "analyze", "evaluate", "create"},
							"description": "Bloom's taxonomy level of the question",
						},
						"allotted_secs": map[string]any{
							"type":        "integer",
							"minimum":     10,
							"maximum":     900,
							"description": "Reasonable time budget to answer, in seconds",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Step-by-step worked solution",
						},
					},
					"required":             []any{"question", "type", "choices", "correct_choice", "correct_choices", "correct_number", "cognitive_level", "allotted_secs", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
