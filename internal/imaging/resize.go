package imaging

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/pixl-sh/pixl-nodes/core"
)

// Resampling filter names exposed by the transform nodes.
const (
	FilterNearest  = "Nearest"
	FilterBilinear = "Bilinear"
	FilterBicubic  = "Bicubic"
	FilterLanczos  = "Lanczos"
)

// Filters lists the resampling filters in menu order.
var Filters = []string{FilterNearest, FilterBilinear, FilterBicubic, FilterLanczos}

// Resize resamples the image to the target dimensions with the named filter.
// Lanczos requests use the Catmull-Rom kernel, the sharpest scaler the
// x/image package provides. Unknown filter names fall back to bilinear.
func Resize(src *core.Image, width, height int, filter string) *core.Image {
	if width <= 0 || height <= 0 {
		return src.Clone()
	}
	if width == src.Width && height == src.Height {
		return src.Clone()
	}

	in := ToNRGBA(src)
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	scaler(filter).Scale(out, out.Bounds(), in, in.Bounds(), xdraw.Over, nil)
	return FromNRGBA(out)
}

func scaler(filter string) xdraw.Interpolator {
	switch filter {
	case FilterNearest:
		return xdraw.NearestNeighbor
	case FilterBicubic, FilterLanczos:
		return xdraw.CatmullRom
	case FilterBilinear:
		return xdraw.BiLinear
	default:
		return xdraw.BiLinear
	}
}
