package imageblend

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// NewColorAdjust returns a node with brightness, contrast, saturation and
// sharpness controls. Each factor is an enhancement multiplier where 1.0
// leaves the image unchanged; they are applied in that order and any factor
// at its identity value is skipped.
func NewColorAdjust() core.Node {
	extra := core.InputSpec{
		Optional: []core.Param{
			core.FloatParam("brightness", 1.0, 0, 2),
			core.FloatParam("contrast", 1.0, 0, 2),
			core.FloatParam("saturation", 1.0, 0, 2),
			core.FloatParam("sharpness", 1.0, 0, 2),
		},
	}

	return newGradeNode("PixlColorAdjust", "Pixl Color Adjust", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			brightness := float32(core.FloatArg(args, "brightness", 1.0))
			contrast := float32(core.FloatArg(args, "contrast", 1.0))
			saturation := float32(core.FloatArg(args, "saturation", 1.0))
			sharpness := float32(core.FloatArg(args, "sharpness", 1.0))

			out := img
			if brightness != 1.0 {
				out = enhance(out, brightness, func(*core.Image, int) float32 { return 0 })
			}
			if contrast != 1.0 {
				mean := meanLuminance(out)
				out = enhance(out, contrast, func(*core.Image, int) float32 { return mean })
			}
			if saturation != 1.0 {
				out = enhance(out, saturation, func(m *core.Image, i int) float32 {
					base := i - i%3
					return imaging.Luminance(m.Pix[base], m.Pix[base+1], m.Pix[base+2])
				})
			}
			if sharpness != 1.0 {
				smooth := imaging.Convolve3(out, imaging.KernelSmooth)
				out = enhance(out, sharpness, func(_ *core.Image, i int) float32 {
					return smooth.Pix[i]
				})
			}
			return out, nil
		},
	)
}

// enhance interpolates each sample between a degenerate value and the
// original, factor 0 giving the degenerate image and factor 1 the original.
// Factors above 1 extrapolate past the original.
func enhance(img *core.Image, factor float32, degenerate func(m *core.Image, i int) float32) *core.Image {
	out := core.NewImage(img.Width, img.Height)
	for i, v := range img.Pix {
		d := degenerate(img, i)
		out.Pix[i] = core.Clamp01(d + (v-d)*factor)
	}
	return out
}

func meanLuminance(img *core.Image) float32 {
	if img.Width == 0 || img.Height == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < len(img.Pix); i += 3 {
		sum += float64(imaging.Luminance(img.Pix[i], img.Pix[i+1], img.Pix[i+2]))
	}
	return float32(sum / float64(img.Width*img.Height))
}
