package imaging

import (
	"image"
	"image/color"

	"github.com/pixl-sh/pixl-nodes/core"
)

// ToNRGBA quantizes a float image to 8-bit RGBA with full opacity. Samples
// are scaled by 255 and clipped to [0, 255].
func ToNRGBA(src *core.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, src.Width, src.Height))
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			r, g, b := src.RGB(x, y)
			i := dst.PixOffset(x, y)
			dst.Pix[i] = quantize(r)
			dst.Pix[i+1] = quantize(g)
			dst.Pix[i+2] = quantize(b)
			dst.Pix[i+3] = 0xff
		}
	}
	return dst
}

// FromNRGBA converts an 8-bit image back to the float representation,
// discarding alpha.
func FromNRGBA(src *image.NRGBA) *core.Image {
	b := src.Bounds()
	dst := core.NewImage(b.Dx(), b.Dy())
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			dst.SetRGB(x, y,
				float32(src.Pix[i])/255,
				float32(src.Pix[i+1])/255,
				float32(src.Pix[i+2])/255,
			)
		}
	}
	return dst
}

// FromImage converts any image.Image, going through NRGBA when needed.
func FromImage(src image.Image) *core.Image {
	if n, ok := src.(*image.NRGBA); ok {
		return FromNRGBA(n)
	}
	b := src.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n.Set(x-b.Min.X, y-b.Min.Y, color.NRGBAModel.Convert(src.At(x, y)))
		}
	}
	return FromNRGBA(n)
}

func quantize(v float32) uint8 {
	s := v * 255
	if s <= 0 {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return uint8(s)
}
