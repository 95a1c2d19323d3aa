// Package gemini provides a model.Generator backed by the Google Gemini API
// via the google.golang.org/genai client.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/pixl-sh/pixl-nodes/model"
)

// Models is the curated model list offered by the Gemini node.
var Models = []string{
	"gemini-2.5-flash",
	"gemini-3-pro-preview",
}

// Options configures the Gemini generator adapter.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
	APIKey      string
}

// Generator wraps the Gemini API behind the generic model.Generator interface.
type Generator struct {
	client *genai.Client
	opts   Options
}

func defaultOptions() Options {
	return Options{
		Model:       "gemini-2.5-flash",
		Temperature: 0.7,
		MaxTokens:   1000,
	}
}

// NewGenerator creates a new Gemini generator using the official client.
func NewGenerator(ctx context.Context, optFns ...func(o *Options)) (*Generator, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: opts.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Generator{client: client, opts: opts}, nil
}

// NewGeneratorFromClient creates a new Gemini generator from an existing client.
func NewGeneratorFromClient(client *genai.Client, optFns ...func(o *Options)) *Generator {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Generator{client: client, opts: opts}
}

// Generate implements model.Generator. The system prompt travels as the
// system instruction, not as a content turn.
func (g *Generator) Generate(ctx context.Context, req model.Request) (model.Response, error) {
	modelID := req.Model
	if modelID == "" {
		modelID = g.opts.Model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = g.opts.MaxTokens
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(maxTokens),
	}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, modelID, contents, cfg)
	if err != nil {
		return model.Response{}, fmt.Errorf("gemini api error: %w", err)
	}

	text := resp.Text()
	if text == "" && len(resp.Candidates) == 0 {
		return model.Response{}, fmt.Errorf("no candidates returned")
	}

	out := model.Response{Text: text}
	if usage := resp.UsageMetadata; usage != nil {
		out.Usage = &model.TokenUsage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}

	return out, nil
}

// Info returns metadata describing this Gemini generator implementation.
func (g *Generator) Info() model.Info {
	return model.Info{
		Name:     g.opts.Model,
		Provider: "gemini",
	}
}
