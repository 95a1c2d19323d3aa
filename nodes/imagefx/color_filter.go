package imagefx

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// colorMatrix maps an RGB pixel through a 3x3 matrix with clamping.
type colorMatrix [9]float32

var (
	sepiaMatrix = colorMatrix{
		0.393, 0.769, 0.189,
		0.349, 0.686, 0.168,
		0.272, 0.534, 0.131,
	}
	warmMatrix = colorMatrix{
		1.10, 0.00, 0.00,
		0.00, 1.02, 0.00,
		0.00, 0.00, 0.88,
	}
	coolMatrix = colorMatrix{
		0.88, 0.00, 0.00,
		0.00, 1.02, 0.00,
		0.00, 0.00, 1.10,
	}
	vintageMatrix = colorMatrix{
		0.62, 0.32, 0.09,
		0.22, 0.74, 0.11,
		0.24, 0.33, 0.50,
	}
)

func (m colorMatrix) apply(src *core.Image) *core.Image {
	out := core.NewImage(src.Width, src.Height)
	for i := 0; i < len(src.Pix); i += 3 {
		r, g, b := src.Pix[i], src.Pix[i+1], src.Pix[i+2]
		out.Pix[i] = core.Clamp01(m[0]*r + m[1]*g + m[2]*b)
		out.Pix[i+1] = core.Clamp01(m[3]*r + m[4]*g + m[5]*b)
		out.Pix[i+2] = core.Clamp01(m[6]*r + m[7]*g + m[8]*b)
	}
	return out
}

// NewColorFilter builds the PixlColorFilter node: named color treatments
// blended with the original by intensity.
func NewColorFilter() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{
			core.ChoiceParam("filter_type",
				"None", "Sepia", "Grayscale", "Black & White", "Warm", "Cool", "Vintage"),
		},
		Optional: []core.Param{
			core.FloatParam("intensity", 1.0, 0, 1),
		},
	}

	return newEffectNode("PixlColorFilter", "Pixl Color Filter", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			filterType := core.StringArg(args, "filter_type", "None")
			intensity := float32(core.FloatArg(args, "intensity", 1.0))
			if filterType == "None" || intensity == 0 {
				return img, nil
			}

			var filtered *core.Image
			switch filterType {
			case "Grayscale":
				filtered = imaging.Grayscale(img)
			case "Black & White":
				filtered = blackAndWhite(img)
			case "Sepia":
				filtered = sepiaMatrix.apply(img)
			case "Warm":
				filtered = warmMatrix.apply(img)
			case "Cool":
				filtered = coolMatrix.apply(img)
			case "Vintage":
				filtered = vintageMatrix.apply(img)
			default:
				filtered = img
			}

			if intensity >= 1 {
				return filtered, nil
			}
			return lerpImages(img, filtered, intensity), nil
		})
}

// blackAndWhite thresholds luminance at the 8-bit midpoint.
func blackAndWhite(src *core.Image) *core.Image {
	out := core.NewImage(src.Width, src.Height)
	for i := 0; i < len(src.Pix); i += 3 {
		v := float32(0)
		if imaging.Luminance(src.Pix[i], src.Pix[i+1], src.Pix[i+2]) >= 128.0/255.0 {
			v = 1
		}
		out.Pix[i] = v
		out.Pix[i+1] = v
		out.Pix[i+2] = v
	}
	return out
}

// lerpImages blends b over a with factor t.
func lerpImages(a, b *core.Image, t float32) *core.Image {
	out := core.NewImage(a.Width, a.Height)
	for i := range a.Pix {
		out.Pix[i] = a.Pix[i]*(1-t) + b.Pix[i]*t
	}
	return out
}
