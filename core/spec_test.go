package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputSpecValidate_RequiredMissing(t *testing.T) {
	spec := InputSpec{
		Required: []Param{StringParam("prompt", "")},
	}

	err := spec.Validate(map[string]any{})
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "prompt", vErr.Field)
}

func TestInputSpecValidate_KindChecks(t *testing.T) {
	spec := InputSpec{
		Required: []Param{
			StringParam("text", ""),
			IntParam("radius", 5, 0, 100),
			FloatParam("strength", 0.5, 0, 1),
			BoolParam("enabled", false),
		},
	}

	ok := map[string]any{
		"text":     "hi",
		"radius":   10,
		"strength": 0.25,
		"enabled":  true,
	}
	assert.NoError(t, spec.Validate(ok))

	bad := map[string]any{
		"text":     42,
		"radius":   10,
		"strength": 0.25,
		"enabled":  true,
	}
	assert.Error(t, spec.Validate(bad))
}

func TestInputSpecValidate_JSONNumbers(t *testing.T) {
	spec := InputSpec{
		Required: []Param{IntParam("count", 1, 1, 1000)},
	}

	// JSON decoding produces float64 for all numbers.
	assert.NoError(t, spec.Validate(map[string]any{"count": float64(32)}))
	assert.Error(t, spec.Validate(map[string]any{"count": float64(32.5)}))
}

func TestInputSpecValidate_Range(t *testing.T) {
	spec := InputSpec{
		Required: []Param{IntParam("radius", 5, 0, 100)},
	}

	assert.NoError(t, spec.Validate(map[string]any{"radius": 0}))
	assert.NoError(t, spec.Validate(map[string]any{"radius": 100}))
	assert.Error(t, spec.Validate(map[string]any{"radius": 101}))
	assert.Error(t, spec.Validate(map[string]any{"radius": -1}))
}

func TestInputSpecValidate_Choices(t *testing.T) {
	spec := InputSpec{
		Required: []Param{ChoiceParam("mode", "Gaussian", "Box")},
	}

	assert.NoError(t, spec.Validate(map[string]any{"mode": "Box"}))
	assert.Error(t, spec.Validate(map[string]any{"mode": "Median"}))
}

func TestInputSpecValidate_ImageKind(t *testing.T) {
	spec := InputSpec{
		Required: []Param{ImageParam("image")},
	}

	assert.NoError(t, spec.Validate(map[string]any{"image": NewImage(2, 2)}))
	assert.NoError(t, spec.Validate(map[string]any{"image": ImageBatch{NewImage(1, 1)}}))
	assert.Error(t, spec.Validate(map[string]any{"image": "not an image"}))
}

func TestInputSpecApplyDefaults(t *testing.T) {
	spec := InputSpec{
		Optional: []Param{
			StringParam("system_prompt", "You are helpful."),
			FloatParam("temperature", 0.7, 0, 2),
		},
	}

	args := spec.ApplyDefaults(map[string]any{"temperature": 1.2})
	assert.Equal(t, "You are helpful.", args["system_prompt"])
	assert.Equal(t, 1.2, args["temperature"])

	args = spec.ApplyDefaults(nil)
	assert.Equal(t, 0.7, args["temperature"])
}

func TestChoiceParamDefaultsToFirstChoice(t *testing.T) {
	p := ChoiceParam("format", "PNG", "JPEG")
	assert.Equal(t, "PNG", p.Default)
}

func TestArgAccessors(t *testing.T) {
	args := map[string]any{
		"text":  "  padded  ",
		"count": float64(3),
		"ratio": 0.5,
		"on":    true,
	}

	assert.Equal(t, "  padded  ", StringArg(args, "text", "x"))
	assert.Equal(t, "padded", TrimmedArg(args, "text", "x"))
	assert.Equal(t, "fallback", StringArg(args, "missing", "fallback"))
	assert.Equal(t, 3, IntArg(args, "count", 0))
	assert.Equal(t, 0.5, FloatArg(args, "ratio", 0))
	assert.True(t, BoolArg(args, "on", false))
	assert.Equal(t, 9, IntArg(args, "missing", 9))
}

func TestImageArg(t *testing.T) {
	img := NewImage(2, 3)

	batch := ImageArg(map[string]any{"image": img}, "image")
	assert.Len(t, batch, 1)
	assert.Equal(t, img, batch.First())

	batch = ImageArg(map[string]any{"image": ImageBatch{img, img}}, "image")
	assert.Len(t, batch, 2)

	assert.Nil(t, ImageArg(map[string]any{}, "image"))
	assert.Nil(t, ImageArg(map[string]any{"image": "nope"}, "image"))
}
