package imagefx

import (
	"math/rand"

	"github.com/pixl-sh/pixl-nodes/core"
)

// NewGrain builds the PixlGrain node: additive film grain. The noise source
// is not seeded, so every execution produces a different grain pattern.
func NewGrain() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{core.FloatParam("intensity", 0.1, 0, 1)},
		Optional: []core.Param{
			core.ChoiceParam("grain_type", "Gaussian", "Uniform"),
			core.BoolParam("monochrome", true),
		},
	}

	return newEffectNode("PixlGrain", "Pixl Grain", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			intensity := float32(core.FloatArg(args, "intensity", 0.1))
			if intensity == 0 {
				return img, nil
			}

			gaussian := core.StringArg(args, "grain_type", "Gaussian") == "Gaussian"
			monochrome := core.BoolArg(args, "monochrome", true)

			sample := func() float32 {
				if gaussian {
					return float32(rand.NormFloat64()) * intensity
				}
				return (rand.Float32()*2 - 1) * intensity
			}

			out := img.Clone()
			for i := 0; i < len(out.Pix); i += 3 {
				if monochrome {
					n := sample()
					out.Pix[i] = core.Clamp01(out.Pix[i] + n)
					out.Pix[i+1] = core.Clamp01(out.Pix[i+1] + n)
					out.Pix[i+2] = core.Clamp01(out.Pix[i+2] + n)
				} else {
					out.Pix[i] = core.Clamp01(out.Pix[i] + sample())
					out.Pix[i+1] = core.Clamp01(out.Pix[i+1] + sample())
					out.Pix[i+2] = core.Clamp01(out.Pix[i+2] + sample())
				}
			}
			return out, nil
		})
}
