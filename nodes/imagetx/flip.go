package imagetx

import (
	"github.com/pixl-sh/pixl-nodes/core"
)

// NewFlip returns a node that mirrors the image horizontally, vertically or
// both at once.
func NewFlip() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{
			core.ChoiceParam("flip_mode", "Horizontal", "Vertical", "Both"),
		},
	}

	return newTransformNode("PixlFlip", "Pixl Flip", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			mode := core.StringArg(args, "flip_mode", "Horizontal")

			horizontal := mode == "Horizontal" || mode == "Both"
			vertical := mode == "Vertical" || mode == "Both"

			out := core.NewImage(img.Width, img.Height)
			for y := 0; y < img.Height; y++ {
				sy := y
				if vertical {
					sy = img.Height - 1 - y
				}
				for x := 0; x < img.Width; x++ {
					sx := x
					if horizontal {
						sx = img.Width - 1 - x
					}
					r, g, b := img.RGB(sx, sy)
					out.SetRGB(x, y, r, g, b)
				}
			}
			return out, nil
		},
	)
}
