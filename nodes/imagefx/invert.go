package imagefx

import (
	"github.com/pixl-sh/pixl-nodes/core"
)

// NewInvert builds the PixlInvert node: a per-channel negative.
func NewInvert() core.Node {
	return newEffectNode("PixlInvert", "Pixl Invert", core.InputSpec{},
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			out := img.Clone()
			for i, v := range out.Pix {
				out.Pix[i] = 1 - v
			}
			return out, nil
		})
}

// NewPosterize builds the PixlPosterize node: it keeps only the top bits of
// each 8-bit channel, reducing the palette the way PIL's posterize does.
func NewPosterize() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{core.IntParam("bits", 4, 1, 8)},
	}

	return newEffectNode("PixlPosterize", "Pixl Posterize", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			bits := core.IntArg(args, "bits", 4)
			mask := uint8(0xff << (8 - bits))

			out := img.Clone()
			for i, v := range out.Pix {
				q := uint8(core.Clamp01(v)*255 + 0.5)
				out.Pix[i] = float32(q&mask) / 255
			}
			return out, nil
		})
}
