package imagefx

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// NewPixelate builds the PixlPixelate node: downsample to a coarse grid with
// nearest-neighbor, then upsample back to the original size.
func NewPixelate() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{core.IntParam("pixel_size", 10, 1, 100)},
		Optional: []core.Param{
			core.ChoiceParam("sampling", "Nearest", "Bilinear"),
		},
	}

	return newEffectNode("PixlPixelate", "Pixl Pixelate", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			size := core.IntArg(args, "pixel_size", 10)
			if size <= 1 {
				return img, nil
			}

			smallW := img.Width / size
			if smallW < 1 {
				smallW = 1
			}
			smallH := img.Height / size
			if smallH < 1 {
				smallH = 1
			}

			small := imaging.Resize(img, smallW, smallH, imaging.FilterNearest)

			up := imaging.FilterNearest
			if core.StringArg(args, "sampling", "Nearest") == "Bilinear" {
				up = imaging.FilterBilinear
			}
			return imaging.Resize(small, img.Width, img.Height, up), nil
		})
}
