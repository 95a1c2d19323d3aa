package imagefx

import (
	"math"

	"github.com/pixl-sh/pixl-nodes/core"
)

// NewChromaticAberration builds the PixlChromaticAberration node: the red
// channel is shifted along the given angle, the blue channel the opposite
// way, and green stays put. Shifts wrap around the image edges.
func NewChromaticAberration() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{core.FloatParam("strength", 5.0, 0, 50)},
		Optional: []core.Param{
			core.FloatParam("angle", 0.0, 0, 360),
		},
	}

	return newEffectNode("PixlChromaticAberration", "Pixl Chromatic Aberration", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			strength := core.FloatArg(args, "strength", 5.0)
			if strength == 0 {
				return img, nil
			}

			angleRad := core.FloatArg(args, "angle", 0) * math.Pi / 180
			offsetX := int(strength * math.Cos(angleRad))
			offsetY := int(strength * math.Sin(angleRad))
			if offsetX == 0 && offsetY == 0 {
				return img, nil
			}

			out := img.Clone()
			for y := 0; y < img.Height; y++ {
				for x := 0; x < img.Width; x++ {
					i := out.Offset(x, y)

					rx := wrap(x-offsetX, img.Width)
					ry := wrap(y-offsetY, img.Height)
					out.Pix[i] = img.Pix[img.Offset(rx, ry)]

					bx := wrap(x+offsetX, img.Width)
					by := wrap(y+offsetY, img.Height)
					out.Pix[i+2] = img.Pix[img.Offset(bx, by)+2]
				}
			}
			return out, nil
		})
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
