// Package color provides the pixel type, colour distance and nearest
// palette matching used by the quantizer.
package color

// ColorU8 represents a color with uint8 components in [0,255].
// Only R, G and B take part in matching and blurring; A is carried
// through every stage unchanged.
type ColorU8 struct {
	R, G, B, A uint8
}

// RGB returns an opaque color with the given components.
func RGB(r, g, b uint8) ColorU8 {
	return ColorU8{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha replaced by a.
func (c ColorU8) WithAlpha(a uint8) ColorU8 {
	c.A = a
	return c
}

// SameRGB reports whether a and b have identical color channels,
// ignoring alpha.
func SameRGB(a, b ColorU8) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}
