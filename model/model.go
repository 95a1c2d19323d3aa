package model

import (
	"context"
	"fmt"
)

// Request captures the normalized model input produced by the LLM nodes.
type Request struct {
	Model        string  `json:"model"`
	Prompt       string  `json:"prompt"`
	SystemPrompt string  `json:"system_prompt,omitempty"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"max_tokens"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the final completion returned by a provider.
type Response struct {
	Text  string      `json:"text"`
	Usage *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a generator implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "gemini", "ollama"
}

// Generator is the minimal interface required by the LLM nodes to drive
// text generation.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)

	// Info returns information about the generator implementation.
	Info() Info
}

// MockGenerator is a lightweight in-memory Generator useful for tests.
type MockGenerator struct {
	info      Info
	responses map[string]string
	Err       error
	// LastRequest records the most recent Generate input for assertions.
	LastRequest Request
}

// NewMockGenerator constructs a MockGenerator.
func NewMockGenerator(name, provider string) *MockGenerator {
	return &MockGenerator{
		info:      Info{Name: name, Provider: provider},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for a prompt.
func (m *MockGenerator) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Generate implements Generator.
func (m *MockGenerator) Generate(_ context.Context, req Request) (Response, error) {
	m.LastRequest = req
	if m.Err != nil {
		return Response{}, m.Err
	}
	text := m.responses[req.Prompt]
	if text == "" {
		text = fmt.Sprintf("Mock response to: %s", req.Prompt)
	}
	return Response{Text: text}, nil
}

// Info implements Generator.
func (m *MockGenerator) Info() Info { return m.info }
