package filter

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Kernel errors.
var (
	// ErrInvalidRadius is returned for a negative radius.
	ErrInvalidRadius = errors.New("filter: radius must be >= 0")

	// ErrDegenerateKernel is returned when a shape and radius select no cells.
	ErrDegenerateKernel = errors.New("filter: kernel has no filled cells")

	// ErrUnknownShape is returned for a Shape outside the defined set.
	ErrUnknownShape = errors.New("filter: unknown kernel shape")
)

// Shape selects how kernel weights are distributed.
type Shape uint8

const (
	// ShapeBox weights every cell of the square equally.
	ShapeBox Shape = iota

	// ShapeDisc weights cells with distance < radius from the center
	// equally and leaves the rest at zero.
	ShapeDisc

	// ShapeGaussian weights cells by a 2D Gaussian with sigma = radius/3.
	ShapeGaussian
)

// String returns the lowercase shape name.
func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapeDisc:
		return "disc"
	case ShapeGaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// ParseShape converts a shape name to a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "box":
		return ShapeBox, nil
	case "disc", "disk", "circle":
		return ShapeDisc, nil
	case "gaussian", "gauss":
		return ShapeGaussian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

// Kernel is a square grid of weights with side 2*radius+1, stored row-major.
// Weights sum to 1.
type Kernel struct {
	radius  int
	weights []float64
}

// NewKernel builds the kernel for shape at the given radius.
//
// Radius 0 is the identity for box and gaussian. A disc needs radius >= 1
// because the center cell is only included when 0 < radius; radius 0
// returns ErrDegenerateKernel.
func NewKernel(shape Shape, radius int) (*Kernel, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	switch shape {
	case ShapeBox:
		return BoxKernel(radius), nil
	case ShapeDisc:
		return DiscKernel(radius)
	case ShapeGaussian:
		return GaussianKernel(radius), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
	}
}

// BoxKernel generates a box (uniform) kernel for the given radius.
// All (2r+1)² values are equal: 1/(2r+1)².
// For radius <= 0, returns the 1x1 identity.
func BoxKernel(radius int) *Kernel {
	radius = max(radius, 0)
	size := radius*2 + 1
	k := newKernel(radius)
	val := 1.0 / float64(size*size)

	for i := range k.weights {
		k.weights[i] = val
	}

	return k
}

// DiscKernel generates a disc kernel: offsets (dx, dy) with
// sqrt(dx²+dy²) < radius get weight 1/filled, all others 0.
// Returns ErrDegenerateKernel when no offset qualifies (radius <= 0).
func DiscKernel(radius int) (*Kernel, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: disc radius %d", ErrDegenerateKernel, radius)
	}

	k := newKernel(radius)
	size := k.Size()
	r := float64(radius)
	filled := 0

	for y := 0; y < size; y++ {
		dy := float64(y - radius)
		for x := 0; x < size; x++ {
			dx := float64(x - radius)
			if math.Sqrt(dx*dx+dy*dy) < r {
				k.weights[y*size+x] = 1
				filled++
			}
		}
	}

	if filled == 0 {
		return nil, fmt.Errorf("%w: disc radius %d", ErrDegenerateKernel, radius)
	}

	w := 1.0 / float64(filled)
	for i, v := range k.weights {
		if v != 0 {
			k.weights[i] = w
		}
	}

	return k, nil
}

// GaussianKernel generates a 2D Gaussian kernel of side 2r+1.
// Sigma is radius/3, so the square covers three standard deviations.
// The kernel is normalized so all values sum to 1.0.
//
// For radius <= 0, returns the 1x1 identity.
func GaussianKernel(radius int) *Kernel {
	radius = max(radius, 0)
	k := newKernel(radius)
	if radius == 0 {
		k.weights[0] = 1
		return k
	}

	size := k.Size()
	sigma := float64(radius) / 3
	twoSigmaSq := 2 * sigma * sigma

	// G(x, y) = g(x) * g(y); normalization constants cancel out.
	row := make([]float64, size)
	for i := range row {
		x := float64(i - radius)
		row[i] = math.Exp(-(x * x) / twoSigmaSq)
	}

	sum := 0.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := row[x] * row[y]
			k.weights[y*size+x] = v
			sum += v
		}
	}

	inv := 1.0 / sum
	for i := range k.weights {
		k.weights[i] *= inv
	}

	return k
}

func newKernel(radius int) *Kernel {
	size := radius*2 + 1
	return &Kernel{
		radius:  radius,
		weights: make([]float64, size*size),
	}
}

// Radius returns the kernel radius.
func (k *Kernel) Radius() int {
	return k.radius
}

// Size returns the side length 2*radius+1.
func (k *Kernel) Size() int {
	return k.radius*2 + 1
}

// At returns the weight at offset (dx, dy) from the center.
// Offsets outside the kernel return 0.
func (k *Kernel) At(dx, dy int) float64 {
	if dx < -k.radius || dx > k.radius || dy < -k.radius || dy > k.radius {
		return 0
	}
	return k.weights[(dy+k.radius)*k.Size()+dx+k.radius]
}

// Sum returns the total of all weights.
func (k *Kernel) Sum() float64 {
	s := 0.0
	for _, v := range k.weights {
		s += v
	}
	return s
}

// Filled returns the number of non-zero weights.
func (k *Kernel) Filled() int {
	n := 0
	for _, v := range k.weights {
		if v != 0 {
			n++
		}
	}
	return n
}

