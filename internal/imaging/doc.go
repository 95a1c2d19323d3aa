// Package imaging bridges the pack's float32 RGB image value and Go's
// standard image types: 8-bit quantization, PNG/JPEG/WEBP codecs, resampling
// and the convolution kernels shared by the effect nodes.
package imaging
