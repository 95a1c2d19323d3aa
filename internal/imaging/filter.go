package imaging

import (
	"math"

	"github.com/pixl-sh/pixl-nodes/core"
)

// Rec.601 luminance coefficients used by grayscale and threshold math.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Luminance returns the Rec.601 luma for one pixel.
func Luminance(r, g, b float32) float32 {
	return LumaR*r + LumaG*g + LumaB*b
}

// Grayscale replaces every pixel with its luma.
func Grayscale(src *core.Image) *core.Image {
	dst := core.NewImage(src.Width, src.Height)
	for i := 0; i < len(src.Pix); i += 3 {
		l := Luminance(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = l, l, l
	}
	return dst
}

// Kernel3 is a 3x3 convolution kernel with divisor and offset, the shape the
// fixed-filter effects use.
type Kernel3 struct {
	K      [9]float32
	Scale  float32
	Offset float32
}

// Fixed 3x3 kernels for the sharpen and edge effects.
var (
	KernelSharpen         = Kernel3{K: [9]float32{-2, -2, -2, -2, 32, -2, -2, -2, -2}, Scale: 16}
	KernelEdgeEnhance     = Kernel3{K: [9]float32{-1, -1, -1, -1, 10, -1, -1, -1, -1}, Scale: 2}
	KernelEdgeEnhanceMore = Kernel3{K: [9]float32{-1, -1, -1, -1, 9, -1, -1, -1, -1}, Scale: 1}
	KernelFindEdges       = Kernel3{K: [9]float32{-1, -1, -1, -1, 8, -1, -1, -1, -1}, Scale: 1}
	KernelEmboss          = Kernel3{K: [9]float32{-1, 0, 0, 0, 1, 0, 0, 0, 0}, Scale: 1, Offset: 0.5}
	KernelSmooth          = Kernel3{K: [9]float32{1, 1, 1, 1, 5, 1, 1, 1, 1}, Scale: 13}
)

// Convolve3 applies a 3x3 kernel with clamped edges and clips the result to
// [0, 1].
func Convolve3(src *core.Image, k Kernel3) *core.Image {
	dst := core.NewImage(src.Width, src.Height)
	scale := k.Scale
	if scale == 0 {
		scale = 1
	}

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var r, g, b float32
			ki := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sx := clampIndex(x+dx, src.Width)
					sy := clampIndex(y+dy, src.Height)
					sr, sg, sb := src.RGB(sx, sy)
					w := k.K[ki]
					r += sr * w
					g += sg * w
					b += sb * w
					ki++
				}
			}
			dst.SetRGB(x, y,
				core.Clamp01(r/scale+k.Offset),
				core.Clamp01(g/scale+k.Offset),
				core.Clamp01(b/scale+k.Offset),
			)
		}
	}
	return dst
}

// BoxBlur averages each pixel over a (2r+1) square window using two
// separable passes with clamped edges. A radius of zero is a copy.
func BoxBlur(src *core.Image, radius int) *core.Image {
	if radius <= 0 {
		return src.Clone()
	}
	tmp := boxPass(src, radius, true)
	return boxPass(tmp, radius, false)
}

func boxPass(src *core.Image, radius int, horizontal bool) *core.Image {
	dst := core.NewImage(src.Width, src.Height)
	window := float32(2*radius + 1)

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var r, g, b float32
			for d := -radius; d <= radius; d++ {
				sx, sy := x, y
				if horizontal {
					sx = clampIndex(x+d, src.Width)
				} else {
					sy = clampIndex(y+d, src.Height)
				}
				sr, sg, sb := src.RGB(sx, sy)
				r += sr
				g += sg
				b += sb
			}
			dst.SetRGB(x, y, r/window, g/window, b/window)
		}
	}
	return dst
}

// GaussianBlur applies a separable Gaussian with standard deviation radius.
// A non-positive radius is a copy.
func GaussianBlur(src *core.Image, radius float64) *core.Image {
	if radius <= 0 {
		return src.Clone()
	}

	kernel := gaussianKernel(radius)
	tmp := gaussPass(src, kernel, true)
	return gaussPass(tmp, kernel, false)
}

func gaussianKernel(sigma float64) []float32 {
	half := int(math.Ceil(sigma * 3))
	if half < 1 {
		half = 1
	}
	kernel := make([]float32, 2*half+1)
	var sum float64
	for i := -half; i <= half; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+half] = float32(v)
		sum += v
	}
	for i := range kernel {
		kernel[i] /= float32(sum)
	}
	return kernel
}

func gaussPass(src *core.Image, kernel []float32, horizontal bool) *core.Image {
	dst := core.NewImage(src.Width, src.Height)
	half := len(kernel) / 2

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var r, g, b float32
			for i, w := range kernel {
				d := i - half
				sx, sy := x, y
				if horizontal {
					sx = clampIndex(x+d, src.Width)
				} else {
					sy = clampIndex(y+d, src.Height)
				}
				sr, sg, sb := src.RGB(sx, sy)
				r += sr * w
				g += sg * w
				b += sb * w
			}
			dst.SetRGB(x, y, r, g, b)
		}
	}
	return dst
}

// UnsharpMask sharpens by amplifying the difference from a Gaussian-blurred
// copy. percent scales the difference; threshold (0-255 scale) suppresses
// low-contrast changes.
func UnsharpMask(src *core.Image, radius float64, percent, threshold int) *core.Image {
	blurred := GaussianBlur(src, radius)
	dst := core.NewImage(src.Width, src.Height)

	amount := float32(percent) / 100
	thresh := float32(threshold) / 255

	for i := range src.Pix {
		diff := src.Pix[i] - blurred.Pix[i]
		if diff < 0 {
			if -diff <= thresh {
				dst.Pix[i] = src.Pix[i]
				continue
			}
		} else if diff <= thresh {
			dst.Pix[i] = src.Pix[i]
			continue
		}
		dst.Pix[i] = core.Clamp01(src.Pix[i] + diff*amount)
	}
	return dst
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
