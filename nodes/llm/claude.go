package llm

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/model"
	"github.com/pixl-sh/pixl-nodes/model/anthropic"
)

// NewClaude builds the PixlClaude node backed by the Anthropic Messages API.
func NewClaude(optFns ...func(o *Options)) core.Node {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	return newCloudNode(providerSpec{
		nodeName:    "PixlClaude",
		displayName: "Pixl Claude",
		provider:    "claude",
		envVar:      "ANTHROPIC_API_KEY",
		models:      anthropic.Models,
		tempDef:     1.0,
		tempMax:     1.0,
		tokensDef:   1024,
		tokensMax:   4096,
		factory: func(rc *core.RunContext, apiKey string) (model.Generator, error) {
			return anthropic.NewGenerator(func(o *anthropic.Options) {
				o.APIKey = apiKey
			}), nil
		},
	}, opts)
}
