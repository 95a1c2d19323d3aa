package imageblend

import (
	"math"

	"github.com/pixl-sh/pixl-nodes/core"
)

// NewLevels returns a node that remaps the tonal range: input black and
// white points plus midtone gamma, the classic levels adjustment.
func NewLevels() core.Node {
	extra := core.InputSpec{
		Optional: []core.Param{
			core.FloatParam("black_point", 0, 0, 0.99),
			core.FloatParam("white_point", 1.0, 0.01, 1),
			core.FloatParam("gamma", 1.0, 0.1, 3),
		},
	}

	return newGradeNode("PixlLevels", "Pixl Levels", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			black := float32(core.FloatArg(args, "black_point", 0))
			white := float32(core.FloatArg(args, "white_point", 1.0))
			gamma := core.FloatArg(args, "gamma", 1.0)

			span := white - black
			if span < 1e-6 {
				span = 1e-6
			}
			exp := 1.0 / gamma

			out := core.NewImage(img.Width, img.Height)
			for i, v := range img.Pix {
				v = core.Clamp01((v - black) / span)
				if gamma != 1.0 {
					v = float32(math.Pow(float64(v), exp))
				}
				out.Pix[i] = v
			}
			return out, nil
		},
	)
}
