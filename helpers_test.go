package posterize

import "testing"

// solidImage creates an image filled with c.
func solidImage(t testing.TB, w, h int, c Color) *Image {
	t.Helper()
	img, err := NewImage(w, h)
	if err != nil {
		t.Fatal(err)
	}
	img.Fill(c)
	return img
}

// noiseImage fills an image with a deterministic xorshift pattern.
func noiseImage(t testing.TB, w, h int) *Image {
	t.Helper()
	img, err := NewImage(w, h)
	if err != nil {
		t.Fatal(err)
	}
	seed := uint32(88172645)
	data := img.Data()
	for i := range data {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		data[i] = byte(seed)
	}
	return img
}
