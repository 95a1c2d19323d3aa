package imageblend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixl-sh/pixl-nodes/config"
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/logging"
)

func newTestContext(t *testing.T) *core.RunContext {
	t.Helper()
	return core.NewRunContext(context.Background(), config.Default(), nil, logging.NoOpLogger{})
}

func solidImage(w, h int, r, g, b float32) *core.Image {
	img := core.NewImage(w, h)
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
	}
	return img
}

func applyImage(t *testing.T, node core.Node, args map[string]any) *core.Image {
	t.Helper()
	out, err := node.Apply(newTestContext(t), args)
	require.NoError(t, err)
	require.Len(t, out, 1)
	result, ok := out[0].(*core.Image)
	require.True(t, ok)
	return result
}

func TestBlendModes(t *testing.T) {
	a := solidImage(4, 4, 0.5, 0.5, 0.5)
	b := solidImage(4, 4, 0.25, 0.25, 0.25)

	tests := []struct {
		mode string
		want float32
	}{
		{"Normal", 0.25},
		{"Multiply", 0.125},
		{"Screen", 0.625},
		{"Add", 0.75},
		{"Subtract", 0.25},
		{"Difference", 0.25},
		{"Lighten", 0.5},
		{"Darken", 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			out := applyImage(t, NewBlend(), map[string]any{
				"image_a": a, "image_b": b, "blend_mode": tt.mode,
			})
			r, _, _ := out.RGB(1, 1)
			assert.InDelta(t, tt.want, r, 1e-5)
		})
	}
}

func TestBlendOpacity(t *testing.T) {
	a := solidImage(4, 4, 0.5, 0.5, 0.5)
	b := solidImage(4, 4, 0.25, 0.25, 0.25)
	out := applyImage(t, NewBlend(), map[string]any{
		"image_a": a, "image_b": b, "blend_mode": "Normal", "opacity": 0.5,
	})
	r, _, _ := out.RGB(0, 0)
	assert.InDelta(t, 0.375, r, 1e-5)
}

func TestBlendResizesOverlay(t *testing.T) {
	a := solidImage(4, 4, 0.5, 0.5, 0.5)
	b := solidImage(2, 2, 0.25, 0.25, 0.25)
	out := applyImage(t, NewBlend(), map[string]any{
		"image_a": a, "image_b": b, "blend_mode": "Normal",
	})
	assert.Equal(t, 4, out.Width)
	assert.Equal(t, 4, out.Height)
	r, _, _ := out.RGB(2, 2)
	assert.InDelta(t, 0.25, r, 0.01)
}

func TestBlendMissingOverlay(t *testing.T) {
	a := solidImage(2, 2, 0.5, 0.5, 0.5)
	_, err := NewBlend().Apply(newTestContext(t), map[string]any{
		"image_a": a, "blend_mode": "Normal",
	})
	require.Error(t, err)

	var nodeErr *core.NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "VALIDATION_ERROR", nodeErr.Code)
}

func TestLevelsRemapsRange(t *testing.T) {
	img := solidImage(2, 2, 0.25, 0.5, 1.0)
	out := applyImage(t, NewLevels(), map[string]any{
		"image": img, "black_point": 0.25, "white_point": 0.75,
	})
	r, g, b := out.RGB(0, 0)
	assert.InDelta(t, 0, r, 1e-5)
	assert.InDelta(t, 0.5, g, 1e-5)
	assert.InDelta(t, 1, b, 1e-5)
}

func TestLevelsGamma(t *testing.T) {
	img := solidImage(2, 2, 0.25, 0.25, 0.25)
	out := applyImage(t, NewLevels(), map[string]any{
		"image": img, "gamma": 2.0,
	})
	r, _, _ := out.RGB(0, 0)
	assert.InDelta(t, 0.5, r, 1e-5)
}

func TestLevelsIdentity(t *testing.T) {
	img := solidImage(2, 2, 0.3, 0.6, 0.9)
	out := applyImage(t, NewLevels(), map[string]any{"image": img})
	assert.InDeltaSlice(t, img.Pix, out.Pix, 1e-5)
}

func TestColorAdjustBrightness(t *testing.T) {
	img := solidImage(2, 2, 0.5, 0.5, 0.5)
	out := applyImage(t, NewColorAdjust(), map[string]any{
		"image": img, "brightness": 0.5,
	})
	r, _, _ := out.RGB(0, 0)
	assert.InDelta(t, 0.25, r, 1e-5)
}

func TestColorAdjustSaturationZeroIsGrayscale(t *testing.T) {
	img := solidImage(2, 2, 1, 0, 0)
	out := applyImage(t, NewColorAdjust(), map[string]any{
		"image": img, "saturation": 0.0,
	})
	r, g, b := out.RGB(0, 0)
	assert.InDelta(t, r, g, 1e-5)
	assert.InDelta(t, g, b, 1e-5)
	assert.InDelta(t, 0.299, r, 1e-3)
}

func TestColorAdjustContrastZeroIsFlat(t *testing.T) {
	img := core.NewImage(2, 1)
	img.SetRGB(0, 0, 0.2, 0.2, 0.2)
	img.SetRGB(1, 0, 0.8, 0.8, 0.8)

	out := applyImage(t, NewColorAdjust(), map[string]any{
		"image": img, "contrast": 0.0,
	})
	r0, _, _ := out.RGB(0, 0)
	r1, _, _ := out.RGB(1, 0)
	assert.InDelta(t, r0, r1, 1e-5)
	assert.InDelta(t, 0.5, r0, 1e-5)
}

func TestColorAdjustIdentity(t *testing.T) {
	img := solidImage(2, 2, 0.3, 0.6, 0.9)
	out := applyImage(t, NewColorAdjust(), map[string]any{"image": img})
	assert.Equal(t, img.Pix, out.Pix)
}

func TestColorRampGrayscale(t *testing.T) {
	img := solidImage(2, 2, 0.5, 0.5, 0.5)
	out := applyImage(t, NewColorRamp(), map[string]any{
		"image": img, "preset": "Grayscale",
	})
	r, g, b := out.RGB(0, 0)
	assert.InDelta(t, 0.5, r, 1e-5)
	assert.InDelta(t, 0.5, g, 1e-5)
	assert.InDelta(t, 0.5, b, 1e-5)
}

func TestColorRampMapsBlackToStartColor(t *testing.T) {
	img := solidImage(2, 2, 0, 0, 0)
	out := applyImage(t, NewColorRamp(), map[string]any{
		"image": img, "preset": "Cool to Warm",
	})
	r, g, b := out.RGB(0, 0)
	assert.InDelta(t, 0, r, 1e-5)
	assert.InDelta(t, 100.0/255, g, 1e-5)
	assert.InDelta(t, 200.0/255, b, 1e-5)
}

func TestColorRampIntensityZeroKeepsOriginal(t *testing.T) {
	img := solidImage(2, 2, 0.3, 0.6, 0.9)
	out := applyImage(t, NewColorRamp(), map[string]any{
		"image": img, "preset": "Blue to Yellow", "intensity": 0.0,
	})
	assert.InDeltaSlice(t, img.Pix, out.Pix, 1e-5)
}

func TestSplitToningTintsHighlights(t *testing.T) {
	img := solidImage(2, 2, 1, 1, 1)
	out := applyImage(t, NewSplitToning(), map[string]any{
		"image":           img,
		"highlight_color": "Yellow",
		"shadow_color":    "Blue",
		"intensity":       0.3,
	})
	_, _, b := out.RGB(0, 0)
	assert.InDelta(t, 0.7, b, 1e-5)
}

func TestSplitToningTintsShadows(t *testing.T) {
	img := solidImage(2, 2, 0, 0, 0)
	out := applyImage(t, NewSplitToning(), map[string]any{
		"image":           img,
		"highlight_color": "Yellow",
		"shadow_color":    "Blue",
		"intensity":       0.3,
	})
	r, _, b := out.RGB(0, 0)
	assert.InDelta(t, 0, r, 1e-5)
	assert.InDelta(t, 0.3, b, 1e-5)
}

func TestSplitToningIntensityZeroKeepsOriginal(t *testing.T) {
	img := solidImage(2, 2, 0.3, 0.6, 0.9)
	out := applyImage(t, NewSplitToning(), map[string]any{
		"image":           img,
		"highlight_color": "Warm",
		"shadow_color":    "Cool",
		"intensity":       0.0,
	})
	assert.InDeltaSlice(t, img.Pix, out.Pix, 1e-5)
}
