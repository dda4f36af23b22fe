package color

import "math"

// Distance returns the Euclidean distance between a and b over the
// R, G and B channels. Alpha is ignored.
func Distance(a, b ColorU8) float64 {
	return math.Sqrt(float64(DistanceSq(a, b)))
}

// DistanceSq returns the squared Euclidean distance between a and b.
// It orders colors exactly like Distance and is exact in integers, so
// the matcher uses it to avoid the square root per palette entry.
func DistanceSq(a, b ColorU8) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
