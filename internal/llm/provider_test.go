package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderPlaysScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"question":"Integrate x dx"}`),
			Usage:   Usage{InputTokens: 40, OutputTokens: 12, TotalTokens: 52},
		},
		MockResponse{Content: json.RawMessage(`{"question":"State Ohm's law"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "one calculus item"}},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(first.Content) != `{"question":"Integrate x dx"}` {
		t.Errorf("content = %s", first.Content)
	}
	if first.Usage.InputTokens != 40 || first.Usage.TotalTokens != 52 {
		t.Errorf("usage = %+v, want 40 in / 52 total", first.Usage)
	}
	if first.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "one physics item"}},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(second.Content) != `{"question":"State Ohm's law"}` {
		t.Errorf("content = %s", second.Content)
	}
}

func TestMockProviderExhausted(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T (%v), want *ErrProviderUnavailable", err, err)
	}
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:   "You write exam questions.",
		Messages: []Message{{Role: RoleUser, Content: "one item"}},
	})

	if got := mock.CallCount(); got != 1 {
		t.Fatalf("CallCount() = %d, want 1", got)
	}
	if mock.Calls[0].System != "You write exam questions." {
		t.Errorf("recorded system = %q", mock.Calls[0].System)
	}
}

func TestMockProviderScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("error = %T (%v), want *ErrRateLimit", err, err)
	}
}

func TestMockProviderModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Errorf("ModelID() = %q, want mock", got)
	}
}

func TestPurposeRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("PurposeFrom(empty) = %q, want unknown", got)
	}

	ctx = WithPurpose(ctx, PurposeItemGeneration)
	if got := PurposeFrom(ctx); got != PurposeItemGeneration {
		t.Errorf("PurposeFrom() = %q, want %q", got, PurposeItemGeneration)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llamafile"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
