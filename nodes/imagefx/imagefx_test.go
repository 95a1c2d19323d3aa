package imagefx

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

// halfImage is black on the left half and white on the right.
func halfImage(w, h int) *core.Image {
	img := core.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			img.SetRGB(x, y, 1, 1, 1)
		}
	}
	return img
}

func applyImage(t *testing.T, node core.Node, img *core.Image, args map[string]any) *core.Image {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	args["image"] = img
	out, err := node.Apply(newTestContext(t), args)
	require.NoError(t, err)
	require.Len(t, out, 1)
	result, ok := out[0].(*core.Image)
	require.True(t, ok)
	return result
}

func TestBlurZeroRadiusPassthrough(t *testing.T) {
	img := halfImage(8, 8)
	out := applyImage(t, NewBlur(), img, map[string]any{"blur_type": "Gaussian", "radius": 0.0})
	assert.Equal(t, img.Pix, out.Pix)
}

func TestBlurSoftensEdge(t *testing.T) {
	img := halfImage(16, 4)
	out := applyImage(t, NewBlur(), img, map[string]any{"blur_type": "Gaussian", "radius": 2.0})

	// The pixel just left of the edge picks up light from the white half.
	r, _, _ := out.RGB(7, 2)
	assert.Greater(t, r, float32(0))
}

func TestBlurBox(t *testing.T) {
	img := halfImage(16, 4)
	out := applyImage(t, NewBlur(), img, map[string]any{"blur_type": "Box", "radius": 3.0})
	r, _, _ := out.RGB(7, 2)
	assert.Greater(t, r, float32(0))
}

func TestSharpenMethods(t *testing.T) {
	img := halfImage(8, 8)
	for _, method := range []string{"Sharpen", "Unsharp Mask"} {
		out := applyImage(t, NewSharpen(), img, map[string]any{"method": method})
		assert.Equal(t, img.Width, out.Width, method)
		assert.Equal(t, img.Height, out.Height, method)
	}
}

func TestEdgeEnhanceFindEdgesFlat(t *testing.T) {
	img := solidImage(6, 6, 0.5, 0.5, 0.5)
	out := applyImage(t, NewEdgeEnhance(), img, map[string]any{"method": "Find Edges"})

	// Interior of a flat image has no edges.
	r, g, b := out.RGB(3, 3)
	assert.InDelta(t, 0, r, 1e-4)
	assert.InDelta(t, 0, g, 1e-4)
	assert.InDelta(t, 0, b, 1e-4)
}

func TestInvert(t *testing.T) {
	img := solidImage(2, 2, 0.25, 0.5, 1.0)
	out := applyImage(t, NewInvert(), img, nil)

	r, g, b := out.RGB(0, 0)
	assert.InDelta(t, 0.75, r, 1e-5)
	assert.InDelta(t, 0.5, g, 1e-5)
	assert.InDelta(t, 0.0, b, 1e-5)
}

func TestPosterizeOneBit(t *testing.T) {
	img := solidImage(2, 2, 0.3, 0.6, 0.9)
	out := applyImage(t, NewPosterize(), img, map[string]any{"bits": 1})

	r, g, b := out.RGB(0, 0)
	assert.InDelta(t, 0.0, r, 1e-5)
	assert.InDelta(t, 128.0/255.0, g, 1e-5)
	assert.InDelta(t, 128.0/255.0, b, 1e-5)
}

func TestPixelateSizeOnePassthrough(t *testing.T) {
	img := halfImage(8, 8)
	out := applyImage(t, NewPixelate(), img, map[string]any{"pixel_size": 1})
	assert.Equal(t, img.Pix, out.Pix)
}

func TestPixelateBlocks(t *testing.T) {
	img := halfImage(8, 8)
	out := applyImage(t, NewPixelate(), img, map[string]any{"pixel_size": 4, "sampling": "Nearest"})

	// Pixels inside one block are identical.
	r0, g0, b0 := out.RGB(0, 0)
	r1, g1, b1 := out.RGB(3, 3)
	assert.Equal(t, r0, r1)
	assert.Equal(t, g0, g1)
	assert.Equal(t, b0, b1)
	assert.Equal(t, img.Width, out.Width)
	assert.Equal(t, img.Height, out.Height)
}

func TestGrainZeroIntensityPassthrough(t *testing.T) {
	img := solidImage(8, 8, 0.5, 0.5, 0.5)
	out := applyImage(t, NewGrain(), img, map[string]any{"intensity": 0.0})
	assert.Equal(t, img.Pix, out.Pix)
}

func TestGrainAddsNoise(t *testing.T) {
	img := solidImage(16, 16, 0.5, 0.5, 0.5)
	out := applyImage(t, NewGrain(), img, map[string]any{"intensity": 0.5, "grain_type": "Gaussian"})

	changed := 0
	for i := range out.Pix {
		if out.Pix[i] != img.Pix[i] {
			changed++
		}
	}
	assert.Greater(t, changed, 0)
}

func TestGrainMonochromeSameAcrossChannels(t *testing.T) {
	img := solidImage(8, 8, 0.5, 0.5, 0.5)
	out := applyImage(t, NewGrain(), img, map[string]any{
		"intensity":  0.2,
		"grain_type": "Uniform",
		"monochrome": true,
	})

	for i := 0; i < len(out.Pix); i += 3 {
		assert.Equal(t, out.Pix[i], out.Pix[i+1])
		assert.Equal(t, out.Pix[i+1], out.Pix[i+2])
	}
}

func TestVignetteDarkensCorners(t *testing.T) {
	img := solidImage(16, 16, 1, 1, 1)
	out := applyImage(t, NewVignette(), img, map[string]any{
		"intensity": 1.0,
		"radius":    0.2,
		"softness":  0.3,
	})

	corner, _, _ := out.RGB(0, 0)
	center, _, _ := out.RGB(8, 8)
	assert.Less(t, corner, center)
	assert.Less(t, corner, float32(1))
}

func TestGlareSpreadsBrightness(t *testing.T) {
	img := core.NewImage(16, 16)
	img.SetRGB(8, 8, 1, 1, 1)

	out := applyImage(t, NewGlare(), img, map[string]any{
		"intensity":   1.0,
		"threshold":   0.5,
		"blur_radius": 3.0,
	})

	// A dark neighbor of the bright spot gains some glow.
	r, _, _ := out.RGB(10, 8)
	assert.Greater(t, r, float32(0))
}

func TestChromaticAberrationShiftsRed(t *testing.T) {
	img := core.NewImage(8, 1)
	img.SetRGB(4, 0, 1, 1, 1)

	out := applyImage(t, NewChromaticAberration(), img, map[string]any{
		"strength": 2.0,
		"angle":    0.0,
	})

	// Red moves +2 in x, blue moves -2, green stays.
	r, _, _ := out.RGB(6, 0)
	assert.Equal(t, float32(1), r)
	_, g, _ := out.RGB(4, 0)
	assert.Equal(t, float32(1), g)
	_, _, b := out.RGB(2, 0)
	assert.Equal(t, float32(1), b)
}

func TestColorFilterGrayscale(t *testing.T) {
	img := solidImage(2, 2, 0.9, 0.3, 0.1)
	out := applyImage(t, NewColorFilter(), img, map[string]any{"filter_type": "Grayscale"})

	r, g, b := out.RGB(0, 0)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestColorFilterBlackAndWhite(t *testing.T) {
	img := solidImage(1, 1, 0.9, 0.9, 0.9)
	out := applyImage(t, NewColorFilter(), img, map[string]any{"filter_type": "Black & White"})
	r, _, _ := out.RGB(0, 0)
	assert.Equal(t, float32(1), r)

	dark := solidImage(1, 1, 0.2, 0.2, 0.2)
	out = applyImage(t, NewColorFilter(), dark, map[string]any{"filter_type": "Black & White"})
	r, _, _ = out.RGB(0, 0)
	assert.Equal(t, float32(0), r)
}

func TestColorFilterNonePassthrough(t *testing.T) {
	img := solidImage(2, 2, 0.9, 0.3, 0.1)
	out := applyImage(t, NewColorFilter(), img, map[string]any{"filter_type": "None"})
	assert.Equal(t, img.Pix, out.Pix)
}

func TestColorFilterIntensityBlend(t *testing.T) {
	img := solidImage(1, 1, 1.0, 0.0, 0.0)
	full := applyImage(t, NewColorFilter(), img, map[string]any{"filter_type": "Grayscale", "intensity": 1.0})
	half := applyImage(t, NewColorFilter(), img, map[string]any{"filter_type": "Grayscale", "intensity": 0.5})

	fullR, _, _ := full.RGB(0, 0)
	halfR, _, _ := half.RGB(0, 0)
	origR := float32(1.0)
	assert.InDelta(t, float64(origR+fullR)/2, float64(halfR), 1e-5)
}

func TestEffectNodeRequiresImage(t *testing.T) {
	node := NewInvert()
	_, err := node.Apply(newTestContext(t), map[string]any{})
	require.Error(t, err)
	var nodeErr *core.NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "VALIDATION_ERROR", nodeErr.Code)
}
