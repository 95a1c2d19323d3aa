package llm

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/httpx"
	"github.com/pixl-sh/pixl-nodes/model"
	"github.com/pixl-sh/pixl-nodes/model/ollama"
)

// OllamaOptions configures the summarizer node.
type OllamaOptions struct {
	// Models populates the model dropdown. Hosts typically fetch the
	// installed models via ollama.Client.ListModels at startup.
	Models []string
	// Generator overrides client construction, used by tests.
	Generator model.Generator
}

// NewOllamaSummarizer builds the PixlOllamaSummarizer node: local text
// processing through an Ollama server. Connection problems produce short
// placeholder strings instead of node errors so a missing server never
// breaks the graph.
func NewOllamaSummarizer(optFns ...func(o *OllamaOptions)) core.Node {
	opts := OllamaOptions{Models: ollama.DefaultModels}
	for _, fn := range optFns {
		fn(&opts)
	}

	inputs := core.InputSpec{
		Required: []core.Param{
			{
				Name:        "prompt",
				Kind:        core.KindString,
				Default:     "",
				Multiline:   true,
				Placeholder: "Enter your prompt here...",
			},
			core.ChoiceParam("model", opts.Models...),
		},
		Optional: []core.Param{
			{
				Name:        "system_prompt",
				Kind:        core.KindString,
				Default:     "",
				Multiline:   true,
				Placeholder: "Optional: Instructions for how the LLM should process the prompt",
			},
			{
				Name:        "ollama_url",
				Kind:        core.KindString,
				Default:     ollama.DefaultBaseURL,
				Placeholder: ollama.DefaultBaseURL,
			},
		},
	}

	return core.NewFunctionNode(
		"PixlOllamaSummarizer",
		core.Info{DisplayName: "Pixl Ollama Summarizer", Category: "Pixl/LLMs"},
		inputs,
		[]core.Port{{Name: "response", Kind: core.KindString}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			prompt := core.TrimmedArg(args, "prompt", "")
			if prompt == "" {
				rc.LogWarn("ollama.empty_prompt")
				return []any{""}, nil
			}

			gen := opts.Generator
			if gen == nil {
				baseURL := core.TrimmedArg(args, "ollama_url", ollama.DefaultBaseURL)
				gen = ollama.NewClient(func(o *ollama.Options) {
					o.BaseURL = baseURL
					o.Logger = rc.Logger()
				})
			}

			req := model.Request{
				Model:        core.StringArg(args, "model", ""),
				Prompt:       prompt,
				SystemPrompt: core.TrimmedArg(args, "system_prompt", ""),
			}

			rc.LogInfo("ollama.generate", "model", req.Model, "has_system", req.SystemPrompt != "")

			resp, err := gen.Generate(rc.Context, req)
			if err != nil {
				rc.LogError("ollama.generate_failed", "error", err.Error())
				return []any{placeholderFor(err)}, nil
			}

			return []any{resp.Text}, nil
		},
	)
}

// placeholderFor maps a generation failure to the short status string shown
// in the host UI.
func placeholderFor(err error) string {
	var statusErr *httpx.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error: %d", statusErr.StatusCode)
	}
	if strings.Contains(err.Error(), "empty response") {
		return "Error: Empty response"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "Connection Timeout"
	}
	if strings.Contains(err.Error(), "connection failed") || strings.Contains(err.Error(), "unable to reach") {
		return "Connection Failed"
	}
	return "Error"
}
