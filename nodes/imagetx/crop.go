package imagetx

import (
	"github.com/pixl-sh/pixl-nodes/core"
)

// NewCrop returns a node that cuts a rectangular region out of the image.
// The region is clamped to the image bounds; with from_center set the x and
// y inputs name the region center instead of its top-left corner.
func NewCrop() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{
			core.IntParam("x", 0, 0, 8192),
			core.IntParam("y", 0, 0, 8192),
			core.IntParam("width", 512, 1, 8192),
			core.IntParam("height", 512, 1, 8192),
		},
		Optional: []core.Param{
			core.BoolParam("from_center", false),
		},
	}

	return newTransformNode("PixlCrop", "Pixl Crop", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			x := core.IntArg(args, "x", 0)
			y := core.IntArg(args, "y", 0)
			width := core.IntArg(args, "width", 512)
			height := core.IntArg(args, "height", 512)

			if core.BoolArg(args, "from_center", false) {
				x -= width / 2
				y -= height / 2
			}

			left := max(x, 0)
			top := max(y, 0)
			right := min(x+width, img.Width)
			bottom := min(y+height, img.Height)

			if right <= left || bottom <= top {
				rc.LogWarn("crop.empty_region",
					"x", x, "y", y, "width", width, "height", height,
					"image_width", img.Width, "image_height", img.Height)
				return img, nil
			}

			out := core.NewImage(right-left, bottom-top)
			for cy := top; cy < bottom; cy++ {
				src := img.Offset(left, cy)
				dst := out.Offset(0, cy-top)
				copy(out.Pix[dst:dst+out.Width*3], img.Pix[src:src+out.Width*3])
			}
			return out, nil
		},
	)
}
