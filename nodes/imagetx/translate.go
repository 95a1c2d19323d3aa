package imagetx

import (
	"github.com/pixl-sh/pixl-nodes/core"
)

// NewTranslate returns a node that shifts the image by a pixel offset.
// Exposed pixels are filled per the fill mode: black, wrapped around from
// the opposite side, or repeated from the nearest edge.
func NewTranslate() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{
			core.IntParam("x_offset", 0, -8192, 8192),
			core.IntParam("y_offset", 0, -8192, 8192),
		},
		Optional: []core.Param{
			core.ChoiceParam("fill_mode", "Black", "Wrap", "Edge"),
		},
	}

	return newTransformNode("PixlTranslate", "Pixl Translate", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			dx := core.IntArg(args, "x_offset", 0)
			dy := core.IntArg(args, "y_offset", 0)
			if dx == 0 && dy == 0 {
				return img, nil
			}

			fill := core.StringArg(args, "fill_mode", "Black")
			return translate(img, dx, dy, fill), nil
		},
	)
}

func translate(img *core.Image, dx, dy int, fill string) *core.Image {
	out := core.NewImage(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			sx := x - dx
			sy := y - dy
			switch fill {
			case "Wrap":
				sx = wrap(sx, img.Width)
				sy = wrap(sy, img.Height)
			case "Edge":
				sx = min(max(sx, 0), img.Width-1)
				sy = min(max(sy, 0), img.Height-1)
			default:
				if sx < 0 || sx >= img.Width || sy < 0 || sy >= img.Height {
					continue
				}
			}
			r, g, b := img.RGB(sx, sy)
			out.SetRGB(x, y, r, g, b)
		}
	}
	return out
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
