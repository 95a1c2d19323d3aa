package imaging

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"

	xdraw "golang.org/x/image/draw"

	"github.com/pixl-sh/pixl-nodes/core"
)

// Rotate rotates the image counterclockwise by the given angle in degrees.
// When expand is true the canvas grows to hold the full rotated image,
// otherwise the corners are clipped. Uncovered areas are filled black.
func Rotate(src *core.Image, degrees float64, expand bool, filter string) *core.Image {
	deg := math.Mod(degrees, 360)
	if deg == 0 {
		return src.Clone()
	}

	rad := deg * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	dstW, dstH := src.Width, src.Height
	if expand {
		w := float64(src.Width)
		h := float64(src.Height)
		dstW = extent(math.Abs(w*cos) + math.Abs(h*sin))
		dstH = extent(math.Abs(w*sin) + math.Abs(h*cos))
	}

	srcCX := float64(src.Width) / 2
	srcCY := float64(src.Height) / 2
	dstCX := float64(dstW) / 2
	dstCY := float64(dstH) / 2

	// Counterclockwise in screen coordinates, pivoting around the center.
	aff := f64.Aff3{
		cos, sin, dstCX - cos*srcCX - sin*srcCY,
		-sin, cos, dstCY + sin*srcCX - cos*srcCY,
	}

	in := ToNRGBA(src)
	out := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	scaler(filter).Transform(out, aff, in, in.Bounds(), xdraw.Src, nil)
	return FromNRGBA(out)
}

// extent ceils a rotated bounding box dimension, snapping away the
// floating-point residue of right-angle trig so 90 degree steps swap
// dimensions exactly.
func extent(v float64) int {
	if r := math.Round(v); math.Abs(v-r) < 1e-9 {
		return int(r)
	}
	return int(math.Ceil(v))
}
