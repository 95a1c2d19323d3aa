// Package imagefx provides the pixel effect nodes: blur, sharpen, edge
// enhancement, stylistic filters and lens artifacts. Every node takes an
// image and returns one; when an effect fails internally the input image is
// passed through unchanged so the graph keeps rendering.
package imagefx

import (
	"github.com/pixl-sh/pixl-nodes/core"
)

type effectFunc func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error)

// newEffectNode wraps an effect implementation with the shared image node
// plumbing: a required image input, an image output and the
// return-input-on-failure contract.
func newEffectNode(name, displayName string, extra core.InputSpec, fn effectFunc) core.Node {
	inputs := core.InputSpec{
		Required: append([]core.Param{core.ImageParam("image")}, extra.Required...),
		Optional: extra.Optional,
	}

	return core.NewFunctionNode(
		name,
		core.Info{DisplayName: displayName, Category: "Pixl/Image/Effects"},
		inputs,
		[]core.Port{{Name: "image", Kind: core.KindImage}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			img := core.ImageArg(args, "image").First()
			if img == nil {
				return nil, core.NewNodeError(name, "image input is empty", "VALIDATION_ERROR")
			}

			out, err := fn(rc, img, args)
			if err != nil {
				rc.LogError("imagefx.effect_failed", "node", name, "error", err.Error())
				return []any{img}, nil
			}
			return []any{out}, nil
		},
	)
}
