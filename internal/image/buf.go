// Package image provides the RGBA8 image buffer used by the blur and
// quantization stages, plus decoding and encoding to common file formats.
package image

import (
	"errors"

	"github.com/gogpu/posterize/internal/color"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is a row-major RGBA8 image with non-premultiplied alpha.
//
// Rows are packed: the stride is always width*4 bytes.
//
// Thread safety: ImageBuf is safe for concurrent read access. Concurrent
// writers must touch disjoint rows.
type ImageBuf struct {
	data   []byte
	width  int
	height int
}

// NewImageBuf creates a zeroed image buffer with the given dimensions.
// Returns ErrInvalidDimensions if width or height is not positive.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &ImageBuf{
		data:   make([]byte, width*height*BytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// Clone creates a deep copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)
	return &ImageBuf{
		data:   newData,
		width:  b.width,
		height: b.height,
	}
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *ImageBuf) Stride() int {
	return b.width * BytesPerPixel
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// SameSize reports whether b and o have identical dimensions.
func (b *ImageBuf) SameSize(o *ImageBuf) bool {
	return b.width == o.width && b.height == o.height
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.Stride()
	return b.data[start : start+b.Stride()]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * BytesPerPixel
}

// At returns the pixel at (x, y).
// Returns the zero color if coordinates are out of bounds.
func (b *ImageBuf) At(x, y int) color.ColorU8 {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return color.ColorU8{}
	}
	p := b.data[i : i+4 : i+4]
	return color.ColorU8{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set writes the pixel at (x, y).
// Returns ErrOutOfBounds if coordinates are outside the image.
func (b *ImageBuf) Set(x, y int, c color.ColorU8) error {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return ErrOutOfBounds
	}
	p := b.data[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	return nil
}

// Fill sets every pixel to c.
func (b *ImageBuf) Fill(c color.ColorU8) {
	for i := 0; i < len(b.data); i += BytesPerPixel {
		b.data[i+0] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// Equal reports whether b and o have the same size and identical bytes.
func (b *ImageBuf) Equal(o *ImageBuf) bool {
	if !b.SameSize(o) {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

