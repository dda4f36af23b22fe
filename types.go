package posterize

import (
	"github.com/gogpu/posterize/internal/color"
	"github.com/gogpu/posterize/internal/filter"
	"github.com/gogpu/posterize/internal/image"
)

// Image is a row-major RGBA8 image buffer with non-premultiplied alpha.
type Image = image.ImageBuf

// Color is an 8-bit RGBA color. Only R, G and B are matched and blurred.
type Color = color.ColorU8

// Palette is an ordered, non-empty, immutable list of target colors.
type Palette = color.Palette

// Shape selects the blur kernel weights.
type Shape = filter.Shape

// Kernel shapes.
const (
	ShapeBox      = filter.ShapeBox
	ShapeDisc     = filter.ShapeDisc
	ShapeGaussian = filter.ShapeGaussian
)

// EdgeMode selects how the blur treats pixels near the image border.
type EdgeMode = filter.EdgeMode

// Edge modes.
const (
	EdgeClamp       = filter.EdgeClamp
	EdgeNoOp        = filter.EdgeNoOp
	EdgeTransparent = filter.EdgeTransparent
)

// NewImage creates a zeroed image of the given size.
func NewImage(width, height int) (*Image, error) {
	img, err := image.NewImageBuf(width, height)
	if err != nil {
		return nil, invalidArg(err)
	}
	return img, nil
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return color.RGB(r, g, b)
}

// NewPalette builds a palette from colors, in order.
func NewPalette(colors ...Color) (Palette, error) {
	p, err := color.NewPalette(colors...)
	if err != nil {
		return Palette{}, invalidArg(err)
	}
	return p, nil
}

// Distance returns the Euclidean RGB distance between a and b.
func Distance(a, b Color) float64 {
	return color.Distance(a, b)
}

// Closest returns the entry of colors nearest to c. Ties resolve to the
// earliest entry. Returns an error wrapping ErrInvalidArgument when colors
// is empty.
func Closest(c Color, colors []Color) (Color, error) {
	m, err := color.Closest(c, colors)
	if err != nil {
		return Color{}, invalidArg(err)
	}
	return m, nil
}
