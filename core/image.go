package core

// Image is the pack's image value: interleaved RGB float32 samples in the
// [0, 1] range, matching the host's tensor convention. Pix holds
// Width*Height*3 samples in row-major order.
type Image struct {
	Width  int
	Height int
	Pix    []float32
}

// NewImage allocates a black image of the given dimensions.
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height*3),
	}
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	c := &Image{
		Width:  m.Width,
		Height: m.Height,
		Pix:    make([]float32, len(m.Pix)),
	}
	copy(c.Pix, m.Pix)
	return c
}

// Offset returns the index of the red sample for pixel (x, y). Callers are
// responsible for staying inside the image bounds.
func (m *Image) Offset(x, y int) int {
	return (y*m.Width + x) * 3
}

// RGB returns the three samples for pixel (x, y).
func (m *Image) RGB(x, y int) (r, g, b float32) {
	i := m.Offset(x, y)
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// SetRGB stores the three samples for pixel (x, y).
func (m *Image) SetRGB(x, y int, r, g, b float32) {
	i := m.Offset(x, y)
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = r, g, b
}

// Clamp limits every sample to the [0, 1] range in place and returns the image.
func (m *Image) Clamp() *Image {
	for i, v := range m.Pix {
		if v < 0 {
			m.Pix[i] = 0
		} else if v > 1 {
			m.Pix[i] = 1
		}
	}
	return m
}

// ImageBatch is an ordered slice of frames. Nodes that operate on a single
// frame take the first one, per the host convention.
type ImageBatch []*Image

// First returns the first frame, or nil for an empty batch.
func (b ImageBatch) First() *Image {
	if len(b) == 0 {
		return nil
	}
	return b[0]
}

// Clamp01 limits a single sample to the [0, 1] range.
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
