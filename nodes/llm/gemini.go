package llm

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/model"
	"github.com/pixl-sh/pixl-nodes/model/gemini"
)

// NewGemini builds the PixlGemini node backed by the Google Gemini API.
func NewGemini(optFns ...func(o *Options)) core.Node {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	return newCloudNode(providerSpec{
		nodeName:    "PixlGemini",
		displayName: "Pixl Gemini",
		provider:    "gemini",
		envVar:      "GOOGLE_API_KEY",
		models:      gemini.Models,
		tempDef:     0.7,
		tempMax:     2.0,
		tokensDef:   1000,
		tokensMax:   8192,
		factory: func(rc *core.RunContext, apiKey string) (model.Generator, error) {
			return gemini.NewGenerator(rc.Context, func(o *gemini.Options) {
				o.APIKey = apiKey
			})
		},
	}, opts)
}
