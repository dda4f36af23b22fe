package color

import "errors"

// ErrEmptyPalette is returned when a palette with no colors is used.
var ErrEmptyPalette = errors.New("color: palette must have 1+ colors")

// Palette is an ordered, non-empty, immutable list of target colors.
//
// The zero value is an empty palette and is rejected by every consumer;
// build palettes with NewPalette.
//
// Thread safety: a Palette is never mutated after construction and may be
// shared freely between goroutines.
type Palette struct {
	colors []ColorU8
}

// NewPalette creates a palette from the given colors. The slice is copied.
// Returns ErrEmptyPalette if no colors are given.
func NewPalette(colors ...ColorU8) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	c := make([]ColorU8, len(colors))
	copy(c, colors)
	return Palette{colors: c}, nil
}

// Len returns the number of colors in the palette.
func (p Palette) Len() int {
	return len(p.colors)
}

// IsEmpty reports whether the palette has no colors.
func (p Palette) IsEmpty() bool {
	return len(p.colors) == 0
}

// At returns the i-th palette color.
func (p Palette) At(i int) ColorU8 {
	return p.colors[i]
}

// Colors returns a copy of the palette colors in order.
func (p Palette) Colors() []ColorU8 {
	c := make([]ColorU8, len(p.colors))
	copy(c, p.colors)
	return c
}

// Index returns the index of the palette entry closest to c.
// It panics on an empty palette; callers validate with IsEmpty first.
//
// Ties resolve to the lowest index: the scan only replaces the current
// best on a strictly smaller distance. Palette order is therefore part of
// the result and changing the comparison to <= changes outputs.
func (p Palette) Index(c ColorU8) int {
	return closestIndex(c, p.colors)
}

// Closest returns the palette entry closest to c, keeping the alpha of c.
func (p Palette) Closest(c ColorU8) ColorU8 {
	return p.colors[closestIndex(c, p.colors)].WithAlpha(c.A)
}

// Closest returns the color in colors nearest to toMatch by Distance.
// The first minimal entry wins ties. The returned color is the palette
// entry as stored, including its alpha.
func Closest(toMatch ColorU8, colors []ColorU8) (ColorU8, error) {
	if len(colors) == 0 {
		return ColorU8{}, ErrEmptyPalette
	}
	return colors[closestIndex(toMatch, colors)], nil
}

func closestIndex(c ColorU8, colors []ColorU8) int {
	best := 0
	bestDist := DistanceSq(c, colors[0])
	for i := 1; i < len(colors); i++ {
		if d := DistanceSq(c, colors[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
