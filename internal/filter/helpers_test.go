package filter

import (
	"math"
	"testing"

	"github.com/gogpu/posterize/internal/color"
	"github.com/gogpu/posterize/internal/image"
)

// Test helper functions shared across filter tests.

// createTestImage creates an image filled with the given color.
func createTestImage(t testing.TB, w, h int, c color.ColorU8) *image.ImageBuf {
	t.Helper()
	buf, err := image.NewImageBuf(w, h)
	if err != nil {
		t.Fatal(err)
	}
	buf.Fill(c)
	return buf
}

// createGradientImage creates an image whose channels vary with position.
func createGradientImage(t testing.TB, w, h int) *image.ImageBuf {
	t.Helper()
	buf, err := image.NewImageBuf(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_ = buf.Set(x, y, color.ColorU8{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x * y) % 256),
				A: uint8(255 - x%7),
			})
		}
	}
	return buf
}

// approxEqual compares two floats with tolerance.
func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
