package imagefx

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// NewGlare builds the PixlGlare node: a bloom effect. Pixels whose mean
// brightness exceeds the threshold are isolated, Gaussian blurred into a
// glow and added back on top of the original.
func NewGlare() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{core.FloatParam("intensity", 0.5, 0, 1)},
		Optional: []core.Param{
			core.FloatParam("threshold", 0.7, 0, 1),
			core.FloatParam("blur_radius", 15.0, 1, 50),
		},
	}

	return newEffectNode("PixlGlare", "Pixl Glare", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			intensity := float32(core.FloatArg(args, "intensity", 0.5))
			if intensity == 0 {
				return img, nil
			}
			threshold := float32(core.FloatArg(args, "threshold", 0.7))
			blurRadius := core.FloatArg(args, "blur_radius", 15.0)

			bright := core.NewImage(img.Width, img.Height)
			for i := 0; i < len(img.Pix); i += 3 {
				mean := (img.Pix[i] + img.Pix[i+1] + img.Pix[i+2]) / 3
				if mean > threshold {
					bright.Pix[i] = img.Pix[i]
					bright.Pix[i+1] = img.Pix[i+1]
					bright.Pix[i+2] = img.Pix[i+2]
				}
			}

			glow := imaging.GaussianBlur(bright, blurRadius)

			out := img.Clone()
			for i := range out.Pix {
				out.Pix[i] = core.Clamp01(out.Pix[i] + glow.Pix[i]*intensity)
			}
			return out, nil
		})
}
