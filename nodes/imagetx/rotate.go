package imagetx

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// NewRotate returns a node that rotates the image counterclockwise by an
// arbitrary angle. With expand set the canvas grows to hold the whole
// rotated image; otherwise the corners are clipped. Uncovered areas are
// filled black.
func NewRotate() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{
			core.FloatParam("angle", 0, -360, 360),
		},
		Optional: []core.Param{
			core.BoolParam("expand", false),
			core.ChoiceParam("resampling",
				imaging.FilterNearest, imaging.FilterBilinear, imaging.FilterBicubic),
		},
	}

	return newTransformNode("PixlRotate", "Pixl Rotate", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			angle := core.FloatArg(args, "angle", 0)
			if angle == 0 {
				return img, nil
			}

			expand := core.BoolArg(args, "expand", false)
			filter := core.StringArg(args, "resampling", imaging.FilterNearest)
			return imaging.Rotate(img, angle, expand, filter), nil
		},
	)
}
