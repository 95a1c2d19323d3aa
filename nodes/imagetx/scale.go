package imagetx

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// NewScale returns a node that resizes the image by factor, percentage or
// explicit pixel dimensions.
func NewScale() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{
			core.ChoiceParam("scale_method", "Factor", "Dimensions", "Percentage"),
		},
		Optional: []core.Param{
			// scale_x/scale_y double as percentages, so the range must
			// admit values like 150 in Percentage mode.
			core.FloatParam("scale_x", 1.0, 0.01, 1000),
			core.FloatParam("scale_y", 1.0, 0.01, 1000),
			core.IntParam("width", 512, 1, 8192),
			core.IntParam("height", 512, 1, 8192),
			core.ChoiceParam("resampling", imaging.Filters...),
		},
	}

	return newTransformNode("PixlScale", "Pixl Scale", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			method := core.StringArg(args, "scale_method", "Factor")
			filter := core.StringArg(args, "resampling", imaging.FilterNearest)

			var width, height int
			switch method {
			case "Dimensions":
				width = core.IntArg(args, "width", 512)
				height = core.IntArg(args, "height", 512)
			case "Percentage":
				sx := core.FloatArg(args, "scale_x", 1.0) / 100
				sy := core.FloatArg(args, "scale_y", 1.0) / 100
				width = int(float64(img.Width) * sx)
				height = int(float64(img.Height) * sy)
			default:
				sx := core.FloatArg(args, "scale_x", 1.0)
				sy := core.FloatArg(args, "scale_y", 1.0)
				width = int(float64(img.Width) * sx)
				height = int(float64(img.Height) * sy)
			}

			width = max(width, 1)
			height = max(height, 1)
			if width == img.Width && height == img.Height {
				return img, nil
			}
			return imaging.Resize(img, width, height, filter), nil
		},
	)
}
