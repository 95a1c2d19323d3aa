package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	_ "golang.org/x/image/webp" // register WEBP decoding

	"github.com/pixl-sh/pixl-nodes/core"
)

// Supported encode formats. WEBP is decode-only: the ecosystem has no
// maintained pure-Go encoder, so encode formats stop at PNG and JPEG.
const (
	FormatPNG  = "PNG"
	FormatJPEG = "JPEG"
)

// EncodeFormats lists the formats Encode accepts, in menu order.
var EncodeFormats = []string{FormatPNG, FormatJPEG}

// EncodeOptions selects the output format and its quality knobs.
type EncodeOptions struct {
	Format string
	// PNGLevel is the 0-9 compression level (zlib convention).
	PNGLevel int
	// JPEGQuality is the 1-100 encoder quality.
	JPEGQuality int
}

// Quality presets shared by the compression nodes.
const (
	PresetMaximumQuality     = "Maximum Quality"
	PresetHighQuality        = "High Quality"
	PresetBalanced           = "Balanced"
	PresetMaximumCompression = "Maximum Compression"
	PresetCustom             = "Custom"
)

// Presets lists the quality presets in menu order.
var Presets = []string{
	PresetMaximumQuality,
	PresetHighQuality,
	PresetBalanced,
	PresetMaximumCompression,
	PresetCustom,
}

// PresetOptions maps a format and quality preset to encoder options.
// customQuality only applies when preset is Custom.
func PresetOptions(format, preset string, customQuality int) EncodeOptions {
	opts := EncodeOptions{Format: format}

	switch preset {
	case PresetMaximumQuality:
		opts.PNGLevel, opts.JPEGQuality = 6, 95
	case PresetHighQuality:
		opts.PNGLevel, opts.JPEGQuality = 6, 85
	case PresetBalanced:
		opts.PNGLevel, opts.JPEGQuality = 9, 75
	case PresetMaximumCompression:
		opts.PNGLevel, opts.JPEGQuality = 9, 60
	case PresetCustom:
		opts.PNGLevel, opts.JPEGQuality = 9, customQuality
	default:
		opts.PNGLevel, opts.JPEGQuality = 6, 85
	}

	return opts
}

// QualityToPNGLevel maps a 1-100 quality slider to the 0-9 PNG compression
// level: higher quality means less compression.
func QualityToPNGLevel(quality int) int {
	level := (100 - quality) / 11
	if level < 0 {
		level = 0
	}
	if level > 9 {
		level = 9
	}
	return level
}

// Encode serializes the image to the requested format.
func Encode(img *core.Image, opts EncodeOptions) ([]byte, error) {
	nrgba := ToNRGBA(img)
	var buf bytes.Buffer

	switch opts.Format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: pngCompression(opts.PNGLevel)}
		if err := enc.Encode(&buf, nrgba); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case FormatJPEG:
		q := opts.JPEGQuality
		if q < 1 || q > 100 {
			q = 85
		}
		if err := jpeg.Encode(&buf, nrgba, &jpeg.Options{Quality: q}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported encode format %q", opts.Format)
	}

	return buf.Bytes(), nil
}

// Decode sniffs and decodes PNG, JPEG or WEBP bytes into a float image.
func Decode(data []byte) (*core.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img), nil
}

func pngCompression(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

// Extension returns the lowercase file extension for an encode format.
func Extension(format string) string {
	if format == FormatJPEG {
		return "jpg"
	}
	return "png"
}
