package color

// Monokai returns a 12-color palette based on the Monokai editor theme.
// A new Palette is built on every call; there is no shared global.
func Monokai() Palette {
	p, _ := NewPalette(
		MustParseHex("#1e1f1c"),
		MustParseHex("#EAE9E1"),
		MustParseHex("#272822"),
		MustParseHex("#f92672"),
		MustParseHex("#A6E22E"),
		MustParseHex("#E6DB74"),
		MustParseHex("#6A7EC8"),
		MustParseHex("#AE81FF"),
		MustParseHex("#66D9EF"),
		MustParseHex("#f8f8f2"),
		MustParseHex("#414339"),
		MustParseHex("#CECCC0"),
	)
	return p
}

// Monochrome returns the two-color black and white palette.
func Monochrome() Palette {
	p, _ := NewPalette(RGB(0, 0, 0), RGB(255, 255, 255))
	return p
}
