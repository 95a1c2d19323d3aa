package imagefx

import (
	"math"

	"github.com/pixl-sh/pixl-nodes/core"
)

// NewVignette builds the PixlVignette node: radial darkening from a
// normalized center distance, with radius controlling where the falloff
// starts and softness how wide the transition band is.
func NewVignette() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{core.FloatParam("intensity", 0.5, 0, 1)},
		Optional: []core.Param{
			core.FloatParam("radius", 0.8, 0, 1),
			core.FloatParam("softness", 0.5, 0.01, 1),
		},
	}

	return newEffectNode("PixlVignette", "Pixl Vignette", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			intensity := core.FloatArg(args, "intensity", 0.5)
			if intensity == 0 {
				return img, nil
			}
			radius := core.FloatArg(args, "radius", 0.8)
			softness := core.FloatArg(args, "softness", 0.5)

			cx := float64(img.Width) / 2
			cy := float64(img.Height) / 2
			maxDist := math.Sqrt(cx*cx + cy*cy)

			out := img.Clone()
			for y := 0; y < img.Height; y++ {
				for x := 0; x < img.Width; x++ {
					dx := float64(x) - cx
					dy := float64(y) - cy
					dist := math.Sqrt(dx*dx+dy*dy) / maxDist

					mask := (dist - radius) / softness
					if mask < 0 {
						mask = 0
					} else if mask > 1 {
						mask = 1
					}
					factor := float32(1 - mask*intensity)

					i := out.Offset(x, y)
					out.Pix[i] *= factor
					out.Pix[i+1] *= factor
					out.Pix[i+2] *= factor
				}
			}
			return out, nil
		})
}
