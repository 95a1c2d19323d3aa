package testutil

import (
	"github.com/pixl-sh/pixl-nodes/core"
)

// ImageBuilder provides a fluent helper for constructing test images.
// Example:
//
//	img := NewImageBuilder().Size(8, 8).Fill(0.5, 0.5, 0.5).Marker(3, 0).Build()
//
// Chain only the parts you need; the default is a 4x4 black image.
type ImageBuilder struct {
	width, height int
	fill          *[3]float32
	gradient      bool
	markers       [][2]int
}

// NewImageBuilder creates a builder for a 4x4 black image.
func NewImageBuilder() *ImageBuilder { return &ImageBuilder{width: 4, height: 4} }

// Size sets the image dimensions (chainable).
func (b *ImageBuilder) Size(w, h int) *ImageBuilder { b.width, b.height = w, h; return b }

// Fill sets every pixel to the given color (chainable).
func (b *ImageBuilder) Fill(r, g, bl float32) *ImageBuilder {
	b.fill = &[3]float32{r, g, bl}
	return b
}

// Gradient fills the image with coordinate-derived colors so every pixel is
// distinct (chainable).
func (b *ImageBuilder) Gradient() *ImageBuilder { b.gradient = true; return b }

// Marker paints a single white pixel, handy for tracking where a transform
// moves things (chainable).
func (b *ImageBuilder) Marker(x, y int) *ImageBuilder {
	b.markers = append(b.markers, [2]int{x, y})
	return b
}

// Build materializes the image.
func (b *ImageBuilder) Build() *core.Image {
	img := core.NewImage(b.width, b.height)
	switch {
	case b.fill != nil:
		for i := 0; i < len(img.Pix); i += 3 {
			img.Pix[i] = b.fill[0]
			img.Pix[i+1] = b.fill[1]
			img.Pix[i+2] = b.fill[2]
		}
	case b.gradient:
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				img.SetRGB(x, y, float32(x)/float32(b.width), float32(y)/float32(b.height), 0.5)
			}
		}
	}
	for _, m := range b.markers {
		img.SetRGB(m[0], m[1], 1, 1, 1)
	}
	return img
}

// BuildBatch materializes a batch of n copies of the image.
func (b *ImageBuilder) BuildBatch(n int) core.ImageBatch {
	batch := make(core.ImageBatch, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, b.Build())
	}
	return batch
}
