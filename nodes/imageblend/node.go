// Package imageblend provides the compositing and grading nodes: two-image
// blending, levels, color adjustment, gradient mapping and split toning.
// Grading nodes return the input image unchanged when an adjustment fails
// internally so the graph keeps rendering.
package imageblend

import (
	"github.com/pixl-sh/pixl-nodes/core"
)

type gradeFunc func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error)

// newGradeNode wraps a single-image grading implementation with the shared
// image node plumbing.
func newGradeNode(name, displayName string, extra core.InputSpec, fn gradeFunc) core.Node {
	inputs := core.InputSpec{
		Required: append([]core.Param{core.ImageParam("image")}, extra.Required...),
		Optional: extra.Optional,
	}

	return core.NewFunctionNode(
		name,
		core.Info{DisplayName: displayName, Category: "Pixl/Image/Blend"},
		inputs,
		[]core.Port{{Name: "image", Kind: core.KindImage}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			img := core.ImageArg(args, "image").First()
			if img == nil {
				return nil, core.NewNodeError(name, "image input is empty", "VALIDATION_ERROR")
			}

			out, err := fn(rc, img, args)
			if err != nil {
				rc.LogError("imageblend.grade_failed", "node", name, "error", err.Error())
				return []any{img}, nil
			}
			return []any{out}, nil
		},
	)
}

// lerpImages blends two same-sized images, t=0 returning a and t=1
// returning b.
func lerpImages(a, b *core.Image, t float32) *core.Image {
	out := core.NewImage(a.Width, a.Height)
	for i := range out.Pix {
		out.Pix[i] = a.Pix[i]*(1-t) + b.Pix[i]*t
	}
	return out
}
