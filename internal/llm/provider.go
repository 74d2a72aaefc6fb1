package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between PrepDeck and any LLM backend.
// Implementations translate the neutral Request/Response pair into their
// SDK's shapes; everything above this interface is provider-agnostic.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema the
	// provider asks for structured output and the returned Content is JSON
	// that already passed schema validation.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the concrete model this provider targets.
	ModelID() string
}

// Request is a provider-neutral completion request.
type Request struct {
	// System sets the role and constraints for the whole exchange.
	System string

	// Messages is the conversation so far. Item generation sends a single
	// user message.
	Messages []Message

	// Schema, when set, constrains the output to JSON matching it.
	// When nil the response is raw text wrapped as a JSON string.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero value means deterministic sampling.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the response must satisfy. Name doubles as
// the tool/schema identifier the SDKs require, kebab-case like
// "learning-item".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a provider-neutral completion result.
type Response struct {
	// Content is schema-validated JSON when the request had a Schema,
	// otherwise the raw text as a JSON string.
	Content json.RawMessage

	// Usage is the token accounting for this single call.
	Usage Usage

	// Model is the model that actually served the request, which may be a
	// dated release of the configured alias.
	Model string

	// StopReason is normalized across providers: "end", "max_tokens",
	// or "error".
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
