package llm

import "testing"

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":   map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"marks":      map[string]any{"type": "number"},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"question", "difficulty"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["question"].Type != "STRING" {
		t.Errorf("question type = %s, want STRING", schema.Properties["question"].Type)
	}
	if schema.Properties["marks"].Type != "NUMBER" {
		t.Errorf("marks type = %s, want NUMBER", schema.Properties["marks"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Errorf("difficulty enum = %d values, want 3", len(schema.Properties["difficulty"].Enum))
	}
	if schema.Properties["choices"].Items.Type != "STRING" {
		t.Errorf("choices items = %s, want STRING", schema.Properties["choices"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %d, want 2", len(schema.Required))
	}
}
