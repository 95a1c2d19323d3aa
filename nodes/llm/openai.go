package llm

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/model"
	"github.com/pixl-sh/pixl-nodes/model/openai"
)

// NewOpenAI builds the PixlOpenAI node backed by the Chat Completions API.
func NewOpenAI(optFns ...func(o *Options)) core.Node {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	return newCloudNode(providerSpec{
		nodeName:    "PixlOpenAI",
		displayName: "Pixl OpenAI",
		provider:    "openai",
		envVar:      "OPENAI_API_KEY",
		models:      openai.Models,
		tempDef:     0.7,
		tempMax:     2.0,
		tokensDef:   1000,
		tokensMax:   4096,
		factory: func(rc *core.RunContext, apiKey string) (model.Generator, error) {
			return openai.NewGenerator(func(o *openai.Options) {
				o.APIKey = apiKey
			}), nil
		},
	}, opts)
}
