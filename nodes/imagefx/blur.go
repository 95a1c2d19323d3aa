package imagefx

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// NewBlur builds the PixlBlur node. Gaussian blur gives a smooth falloff;
// Box blur is coarser but cheaper. Radius 0 passes the image through.
func NewBlur() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{
			core.ChoiceParam("blur_type", "Gaussian", "Box"),
			core.FloatParam("radius", 5.0, 0, 100),
		},
	}

	return newEffectNode("PixlBlur", "Pixl Blur", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			radius := core.FloatArg(args, "radius", 5.0)
			if radius == 0 {
				return img, nil
			}

			if core.StringArg(args, "blur_type", "Gaussian") == "Box" {
				return imaging.BoxBlur(img, int(radius)), nil
			}
			return imaging.GaussianBlur(img, radius), nil
		})
}
