package imagetx

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// NewTransform returns the combined transform node: uniform scale, then
// rotation, then translation, applied in that order on a fixed canvas.
func NewTransform() core.Node {
	extra := core.InputSpec{
		Optional: []core.Param{
			core.FloatParam("angle", 0, -360, 360),
			core.FloatParam("scale", 1.0, 0.01, 10),
			core.IntParam("translate_x", 0, -8192, 8192),
			core.IntParam("translate_y", 0, -8192, 8192),
		},
	}

	return newTransformNode("PixlTransform", "Pixl Transform", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			angle := core.FloatArg(args, "angle", 0)
			scale := core.FloatArg(args, "scale", 1.0)
			dx := core.IntArg(args, "translate_x", 0)
			dy := core.IntArg(args, "translate_y", 0)

			out := img
			if scale != 1.0 {
				width := max(int(float64(img.Width)*scale), 1)
				height := max(int(float64(img.Height)*scale), 1)
				out = imaging.Resize(out, width, height, imaging.FilterLanczos)
			}
			if angle != 0 {
				out = imaging.Rotate(out, angle, false, imaging.FilterBicubic)
			}
			if dx != 0 || dy != 0 {
				out = translate(out, dx, dy, "Black")
			}
			return out, nil
		},
	)
}
