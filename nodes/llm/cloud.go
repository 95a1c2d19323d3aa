// Package llm provides the text generation nodes backed by cloud providers
// and local Ollama. Provider failures never abort the graph: the response
// output carries an error string instead.
package llm

import (
	"fmt"

	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/model"
)

// Options allow tests and hosts to inject a prebuilt generator instead of
// constructing one from the resolved API key.
type Options struct {
	Generator model.Generator
}

// providerSpec describes one cloud provider node: its identity, parameter
// ranges and the factory building a generator from a resolved API key.
type providerSpec struct {
	nodeName    string
	displayName string
	provider    string
	envVar      string
	models      []string
	tempDef     float64
	tempMax     float64
	tokensDef   int
	tokensMax   int
	factory     func(rc *core.RunContext, apiKey string) (model.Generator, error)
}

// newCloudNode builds a provider node from its spec. All three cloud nodes
// share the same contract: an empty prompt yields an empty string, and any
// key or provider failure yields "Error: ..." as the response text.
func newCloudNode(spec providerSpec, opts Options) core.Node {
	inputs := core.InputSpec{
		Required: []core.Param{
			{
				Name:        "prompt",
				Kind:        core.KindString,
				Default:     "",
				Multiline:   true,
				Placeholder: "Enter your prompt here...",
			},
			core.ChoiceParam("model", spec.models...),
		},
		Optional: []core.Param{
			{
				Name:        "system_prompt",
				Kind:        core.KindString,
				Default:     "",
				Multiline:   true,
				Placeholder: "Optional: Instructions for how the model should respond",
			},
			{
				Name:        "api_key",
				Kind:        core.KindString,
				Default:     "",
				Placeholder: "Use " + spec.envVar + " env var instead",
			},
			core.FloatParam("temperature", spec.tempDef, 0, spec.tempMax),
			core.IntParam("max_tokens", spec.tokensDef, 1, spec.tokensMax),
		},
	}

	return core.NewFunctionNode(
		spec.nodeName,
		core.Info{DisplayName: spec.displayName, Category: "Pixl/LLMs"},
		inputs,
		[]core.Port{{Name: "response", Kind: core.KindString}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			prompt := core.TrimmedArg(args, "prompt", "")
			if prompt == "" {
				rc.LogWarn(spec.provider + ".empty_prompt")
				return []any{""}, nil
			}

			gen := opts.Generator
			if gen == nil {
				apiKey, err := model.ResolveAPIKey(rc.Logger(), spec.envVar, core.StringArg(args, "api_key", ""), spec.displayName)
				if err != nil {
					rc.LogError(spec.provider+".no_api_key", "error", err.Error())
					return []any{fmt.Sprintf("Error: %v", err)}, nil
				}
				gen, err = spec.factory(rc, apiKey)
				if err != nil {
					rc.LogError(spec.provider+".client_failed", "error", err.Error())
					return []any{fmt.Sprintf("Error: %v", err)}, nil
				}
			}

			req := model.Request{
				Model:        core.StringArg(args, "model", spec.models[0]),
				Prompt:       prompt,
				SystemPrompt: core.TrimmedArg(args, "system_prompt", ""),
				Temperature:  core.FloatArg(args, "temperature", spec.tempDef),
				MaxTokens:    core.IntArg(args, "max_tokens", spec.tokensDef),
			}

			rc.LogInfo(spec.provider+".generate", "model", req.Model, "has_system", req.SystemPrompt != "")

			resp, err := gen.Generate(rc.Context, req)
			if err != nil {
				rc.LogError(spec.provider+".generate_failed", "error", err.Error())
				return []any{fmt.Sprintf("Error: %v", err)}, nil
			}

			if resp.Usage != nil {
				rc.LogInfo(spec.provider+".usage",
					"prompt_tokens", resp.Usage.PromptTokens,
					"completion_tokens", resp.Usage.CompletionTokens)
			}

			return []any{resp.Text}, nil
		},
	)
}
