package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "sk-or-test",
		Model:  "google/gemini-2.0-flash-exp",
	})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider() error = %v", err)
	}
	// OpenRouter model IDs carry a vendor prefix and pass through unmapped.
	if p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Errorf("model = %q, want google/gemini-2.0-flash-exp", p.ModelID())
	}
}

func TestNewOpenRouterProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "meta-llama/llama-3-8b"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
