package color

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHex is returned when a string is not a 6-digit hex color.
var ErrInvalidHex = errors.New("color: hex code must be in the form '#Abc123' or '1aB2C3'")

// ParseHex parses a color of the form "#rrggbb" or "rrggbb".
// Digits are case-insensitive. The result is opaque.
func ParseHex(s string) (ColorU8, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return ColorU8{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	var v [3]uint8
	for i := range v {
		hi, ok1 := hexDigit(h[i*2])
		lo, ok2 := hexDigit(h[i*2+1])
		if !ok1 || !ok2 {
			return ColorU8{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		v[i] = hi<<4 | lo
	}
	return RGB(v[0], v[1], v[2]), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for compile-time constant palettes.
func MustParseHex(s string) ColorU8 {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParsePalette parses each hex string and builds a palette in the given
// order.
func ParsePalette(hexes []string) (Palette, error) {
	colors := make([]ColorU8, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(strings.TrimSpace(h))
		if err != nil {
			return Palette{}, err
		}
		colors = append(colors, c)
	}
	return NewPalette(colors...)
}

// Hex formats c as "#rrggbb".
func (c ColorU8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
