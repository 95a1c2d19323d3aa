package imagefx

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// NewSharpen builds the PixlSharpen node. "Sharpen" applies the fixed 3x3
// sharpening kernel; "Unsharp Mask" subtracts a Gaussian blurred copy with
// configurable radius, strength and edge threshold.
func NewSharpen() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{
			core.ChoiceParam("method", "Sharpen", "Unsharp Mask"),
		},
		Optional: []core.Param{
			core.FloatParam("radius", 2.0, 0, 10),
			core.IntParam("percent", 150, 0, 500),
			core.IntParam("threshold", 3, 0, 255),
		},
	}

	return newEffectNode("PixlSharpen", "Pixl Sharpen", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			if core.StringArg(args, "method", "Sharpen") == "Sharpen" {
				return imaging.Convolve3(img, imaging.KernelSharpen), nil
			}
			return imaging.UnsharpMask(img,
				core.FloatArg(args, "radius", 2.0),
				core.IntArg(args, "percent", 150),
				core.IntArg(args, "threshold", 3)), nil
		})
}

// NewEdgeEnhance builds the PixlEdgeEnhance node with the three classic 3x3
// edge kernels.
func NewEdgeEnhance() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{
			core.ChoiceParam("method", "Edge Enhance", "Edge Enhance More", "Find Edges"),
		},
	}

	return newEffectNode("PixlEdgeEnhance", "Pixl Edge Enhance", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			switch core.StringArg(args, "method", "Edge Enhance") {
			case "Edge Enhance More":
				return imaging.Convolve3(img, imaging.KernelEdgeEnhanceMore), nil
			case "Find Edges":
				return imaging.Convolve3(img, imaging.KernelFindEdges), nil
			default:
				return imaging.Convolve3(img, imaging.KernelEdgeEnhance), nil
			}
		})
}
