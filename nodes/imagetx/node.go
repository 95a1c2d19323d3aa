// Package imagetx provides the geometric transform nodes: crop, flip,
// rotate, scale, translate and the combined transform. Every node takes an
// image and returns one; when a transform fails internally the input image
// is passed through unchanged so the graph keeps rendering.
package imagetx

import (
	"github.com/pixl-sh/pixl-nodes/core"
)

type transformFunc func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error)

// newTransformNode wraps a transform implementation with the shared image
// node plumbing: a required image input, an image output and the
// return-input-on-failure contract.
func newTransformNode(name, displayName string, extra core.InputSpec, fn transformFunc) core.Node {
	inputs := core.InputSpec{
		Required: append([]core.Param{core.ImageParam("image")}, extra.Required...),
		Optional: extra.Optional,
	}

	return core.NewFunctionNode(
		name,
		core.Info{DisplayName: displayName, Category: "Pixl/Image/Transform"},
		inputs,
		[]core.Port{{Name: "image", Kind: core.KindImage}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			img := core.ImageArg(args, "image").First()
			if img == nil {
				return nil, core.NewNodeError(name, "image input is empty", "VALIDATION_ERROR")
			}

			out, err := fn(rc, img, args)
			if err != nil {
				rc.LogError("imagetx.transform_failed", "node", name, "error", err.Error())
				return []any{img}, nil
			}
			return []any{out}, nil
		},
	)
}
