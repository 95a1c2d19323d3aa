package imageblend

import (
	"github.com/pixl-sh/pixl-nodes/core"
)

type ramp struct {
	start [3]float32
	end   [3]float32
}

// Gradient presets, start to end color over rising brightness.
var ramps = map[string]ramp{
	"Cool to Warm":     {start: [3]float32{0, 100.0 / 255, 200.0 / 255}, end: [3]float32{200.0 / 255, 100.0 / 255, 0}},
	"Blue to Yellow":   {start: [3]float32{0, 50.0 / 255, 200.0 / 255}, end: [3]float32{1, 1, 0}},
	"Purple to Orange": {start: [3]float32{100.0 / 255, 0, 200.0 / 255}, end: [3]float32{1, 150.0 / 255, 0}},
	"Grayscale":        {start: [3]float32{0, 0, 0}, end: [3]float32{1, 1, 1}},
}

// NewColorRamp returns a node that maps pixel brightness onto a color
// gradient. Brightness is the plain channel mean, so the mapping tracks
// overall intensity rather than perceptual luminance.
func NewColorRamp() core.Node {
	extra := core.InputSpec{
		Required: []core.Param{
			core.ChoiceParam("preset", "Cool to Warm", "Blue to Yellow", "Purple to Orange", "Grayscale"),
		},
		Optional: []core.Param{
			core.FloatParam("intensity", 1.0, 0, 1),
		},
	}

	return newGradeNode("PixlColorRamp", "Pixl Color Ramp", extra,
		func(rc *core.RunContext, img *core.Image, args map[string]any) (*core.Image, error) {
			preset := core.StringArg(args, "preset", "Cool to Warm")
			intensity := float32(core.FloatArg(args, "intensity", 1.0))

			r, ok := ramps[preset]
			if !ok {
				r = ramps["Cool to Warm"]
			}

			out := core.NewImage(img.Width, img.Height)
			for i := 0; i < len(img.Pix); i += 3 {
				brightness := (img.Pix[i] + img.Pix[i+1] + img.Pix[i+2]) / 3
				for c := 0; c < 3; c++ {
					out.Pix[i+c] = r.start[c] + (r.end[c]-r.start[c])*brightness
				}
			}

			if intensity < 1 {
				out = lerpImages(img, out, intensity)
			}
			return out.Clamp(), nil
		},
	)
}
