package posterize

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/posterize/internal/color"
)

// builtinPalettes maps folded names to palette constructors.
var builtinPalettes = map[string]func() Palette{
	"monokai":    color.Monokai,
	"monochrome": color.Monochrome,
}

// Monokai returns the built-in 12-color Monokai palette.
func Monokai() Palette { return color.Monokai() }

// Monochrome returns the built-in black and white palette.
func Monochrome() Palette { return color.Monochrome() }

// PaletteByName returns a built-in palette. Names are matched
// case-insensitively with Unicode case folding.
func PaletteByName(name string) (Palette, error) {
	// A Caser keeps state and must not be shared between goroutines.
	key := cases.Fold().String(strings.TrimSpace(name))
	if mk, ok := builtinPalettes[key]; ok {
		return mk(), nil
	}
	return Palette{}, invalidArg(fmt.Errorf("%w: %q (known: %s)",
		ErrUnknownPalette, name, strings.Join(PaletteNames(), ", ")))
}

// PaletteNames lists the built-in palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(builtinPalettes))
	for n := range builtinPalettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseHexColor parses "#rrggbb" or "rrggbb".
func ParseHexColor(s string) (Color, error) {
	c, err := color.ParseHex(s)
	if err != nil {
		return Color{}, invalidArg(err)
	}
	return c, nil
}

// ParsePalette builds a palette from hex color strings, in order.
func ParsePalette(hexes []string) (Palette, error) {
	p, err := color.ParsePalette(hexes)
	if err != nil {
		return Palette{}, invalidArg(err)
	}
	return p, nil
}
