// Package imageio provides the compression and disk output nodes.
package imageio

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
)

// NewCompressImage returns a node that compresses an image in memory and
// decodes it again, so downstream nodes see the actual compression loss.
// When encoding fails the original image is passed through unchanged.
func NewCompressImage() core.Node {
	const name = "PixlCompressImage"

	inputs := core.InputSpec{
		Required: []core.Param{
			core.ImageParam("image"),
			core.ChoiceParam("format", imaging.EncodeFormats...),
			core.ChoiceParam("preset", imaging.Presets...),
		},
		Optional: []core.Param{
			core.IntParam("quality", 85, 1, 100),
		},
	}

	return core.NewFunctionNode(
		name,
		core.Info{DisplayName: "Pixl Compress Image", Category: "Pixl/IO"},
		inputs,
		[]core.Port{{Name: "compressed_image", Kind: core.KindImage}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			img := core.ImageArg(args, "image").First()
			if img == nil {
				return nil, core.NewNodeError(name, "image input is empty", "VALIDATION_ERROR")
			}

			format := core.StringArg(args, "format", imaging.FormatPNG)
			preset := core.StringArg(args, "preset", imaging.PresetMaximumQuality)
			quality := core.IntArg(args, "quality", 85)

			rc.LogDebug("compress.start", "format", format, "preset", preset, "quality", quality)

			opts := imaging.PresetOptions(format, preset, quality)
			data, err := imaging.Encode(img, opts)
			if err != nil {
				rc.LogError("compress.encode_failed", "format", format, "error", err.Error())
				return []any{img}, nil
			}

			out, err := imaging.Decode(data)
			if err != nil {
				rc.LogError("compress.decode_failed", "format", format, "error", err.Error())
				return []any{img}, nil
			}

			rc.LogInfo("compress.done",
				"format", format, "preset", preset, "bytes", len(data),
				"width", out.Width, "height", out.Height)
			return []any{out}, nil
		},
	)
}
