package imageblend

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// Tint colors shared by the highlight and shadow pickers.
var tints = map[string][3]float32{
	"Warm":   {1, 200.0 / 255, 150.0 / 255},
	"Cool":   {150.0 / 255, 200.0 / 255, 1},
	"Yellow": {1, 1, 0},
	"Blue":   {0, 100.0 / 255, 1},
	"Red":    {1, 100.0 / 255, 100.0 / 255},
	"Green":  {100.0 / 255, 1, 100.0 / 255},
}

var tintChoices = []string{"Warm", "Cool", "Yellow", "Blue", "Red", "Green"}

// NewSplitToning returns a node that tints highlights and shadows with
// separate colors. The balance threshold on luminance decides which tint a
// pixel receives.
func NewSplitToning() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{
			core.ChoiceParam("highlight_color", tintChoices...),
			core.ChoiceParam("shadow_color", tintChoices...),
		},
		Optional: []core.Param{
			core.FloatParam("intensity", 0.3, 0, 1),
			core.FloatParam("balance", 0.5, 0, 1),
		},
	}

	return newGradeNode("PixlSplitToning", "Pixl Split Toning", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			highlight, ok := tints[core.StringArg(args, "highlight_color", "Warm")]
			if !ok {
				highlight = tints["Warm"]
			}
			shadow, ok := tints[core.StringArg(args, "shadow_color", "Cool")]
			if !ok {
				shadow = tints["Cool"]
			}
			intensity := float32(core.FloatArg(args, "intensity", 0.3))
			balance := float32(core.FloatArg(args, "balance", 0.5))

			out := core.NewImage(img.Width, img.Height)
			for i := 0; i < len(img.Pix); i += 3 {
				tint := shadow
				if imaging.Luminance(img.Pix[i], img.Pix[i+1], img.Pix[i+2]) > balance {
					tint = highlight
				}
				for c := 0; c < 3; c++ {
					out.Pix[i+c] = img.Pix[i+c]*(1-intensity) + tint[c]*intensity
				}
			}
			return out.Clamp(), nil
		},
	)
}
