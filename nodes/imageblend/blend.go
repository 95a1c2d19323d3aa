package imageblend

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// Blend mode names in menu order.
var blendModes = []string{
	"Normal", "Multiply", "Screen", "Add",
	"Subtract", "Difference", "Lighten", "Darken",
}

// NewBlend returns a node that composites two images. The second image is
// resized to the first one's dimensions when they differ. On internal
// failure the base image is passed through unchanged.
func NewBlend() core.Node {
	const name = "PixlBlend"

	inputs := core.InputSpec{
		Required: []core.Param{
			core.ImageParam("image_a"),
			core.ImageParam("image_b"),
			core.ChoiceParam("blend_mode", blendModes...),
		},
		Optional: []core.Param{
			core.FloatParam("opacity", 1.0, 0, 1),
		},
	}

	return core.NewFunctionNode(
		name,
		core.Info{DisplayName: "Pixl Blend", Category: "Pixl/Image/Blend"},
		inputs,
		[]core.Port{{Name: "image", Kind: core.KindImage}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			base := core.ImageArg(args, "image_a").First()
			if base == nil {
				return nil, core.NewNodeError(name, "image_a input is empty", "VALIDATION_ERROR")
			}
			overlay := core.ImageArg(args, "image_b").First()
			if overlay == nil {
				return nil, core.NewNodeError(name, "image_b input is empty", "VALIDATION_ERROR")
			}

			mode := core.StringArg(args, "blend_mode", "Normal")
			opacity := float32(core.FloatArg(args, "opacity", 1.0))

			if overlay.Width != base.Width || overlay.Height != base.Height {
				overlay = imaging.Resize(overlay, base.Width, base.Height, imaging.FilterLanczos)
			}

			blended := blendPixels(base, overlay, mode)
			if opacity < 1 {
				blended = lerpImages(base, blended, opacity)
			}
			return []any{blended}, nil
		},
	)
}

func blendPixels(a, b *core.Image, mode string) *core.Image {
	out := core.NewImage(a.Width, a.Height)
	for i := range out.Pix {
		va := a.Pix[i]
		vb := b.Pix[i]
		var v float32
		switch mode {
		case "Multiply":
			v = va * vb
		case "Screen":
			v = 1 - (1-va)*(1-vb)
		case "Add":
			v = core.Clamp01(va + vb)
		case "Subtract":
			v = core.Clamp01(va - vb)
		case "Difference":
			v = va - vb
			if v < 0 {
				v = -v
			}
		case "Lighten":
			v = max(va, vb)
		case "Darken":
			v = min(va, vb)
		default:
			v = vb
		}
		out.Pix[i] = v
	}
	return out
}
