package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func draftSchema() *Schema {
	return &Schema{
		Name:        "question-draft",
		Description: "One draft exam question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":      map[string]any{"type": "string"},
				"allotted_secs": map[string]any{"type": "integer", "minimum": 10},
				"difficulty":    map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"question", "allotted_secs"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"all fields", `{"question":"Factor x^2-9","allotted_secs":60,"difficulty":"easy"}`, false},
		{"optional omitted", `{"question":"Factor x^2-9","allotted_secs":60}`, false},
		{"missing required", `{"question":"Factor x^2-9"}`, true},
		{"wrong type", `{"question":"Factor x^2-9","allotted_secs":"a minute"}`, true},
		{"enum violation", `{"question":"Factor x^2-9","allotted_secs":60,"difficulty":"trivial"}`, true},
		{"below minimum", `{"question":"Factor x^2-9","allotted_secs":5}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty payload", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(draftSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Fatalf("error = %T, want *ErrInvalidResponse", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("validateResponse(nil) error = %v", err)
	}
}

func TestValidateResponse_NestedStructures(t *testing.T) {
	schema := &Schema{
		Name: "question-batch",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"items": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{"type": "string"},
						},
						"required": []any{"question"},
					},
				},
			},
			"required": []any{"items"},
		},
	}

	valid := json.RawMessage(`{"items":[{"question":"a"},{"question":"b"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("valid batch rejected: %v", err)
	}

	invalid := json.RawMessage(`{"items":[{"question":"a"},{}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("batch with empty element accepted")
	}
}
