package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/posterize/internal/image"
)

// Convolution errors.
var (
	// ErrUnknownEdgeMode is returned for an EdgeMode outside the defined set.
	ErrUnknownEdgeMode = errors.New("filter: unknown edge mode")

	// ErrSizeMismatch is returned when src and dst dimensions differ.
	ErrSizeMismatch = errors.New("filter: source and destination sizes differ")

	// ErrNilInput is returned when the image or kernel is nil.
	ErrNilInput = errors.New("filter: nil image or kernel")
)

// EdgeMode decides how the kernel footprint is handled where it extends
// past the image border.
type EdgeMode uint8

const (
	// EdgeClamp reads the nearest in-bounds pixel for out-of-range samples.
	// Every pixel is convolved.
	EdgeClamp EdgeMode = iota

	// EdgeNoOp copies pixels within radius of any edge unchanged.
	EdgeNoOp

	// EdgeTransparent treats out-of-range samples as transparent black,
	// as if the image were padded by radius on every side.
	// Every pixel is convolved; borders darken.
	EdgeTransparent
)

// String returns the lowercase edge mode name.
func (m EdgeMode) String() string {
	switch m {
	case EdgeClamp:
		return "clamp"
	case EdgeNoOp:
		return "noop"
	case EdgeTransparent:
		return "transparent"
	default:
		return fmt.Sprintf("EdgeMode(%d)", uint8(m))
	}
}

// ParseEdgeMode converts an edge mode name to an EdgeMode.
func ParseEdgeMode(name string) (EdgeMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "clamp", "extend":
		return EdgeClamp, nil
	case "noop", "no-op", "none":
		return EdgeNoOp, nil
	case "transparent", "zero", "pad":
		return EdgeTransparent, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEdgeMode, name)
	}
}

// tap is one non-zero kernel weight at an offset from the center.
type tap struct {
	dx, dy int
	w      float64
}

// taps returns the non-zero weights of k. Zero cells of a disc kernel
// are skipped.
func (k *Kernel) taps() []tap {
	size := k.Size()
	t := make([]tap, 0, k.Filled())
	for i, w := range k.weights {
		if w == 0 {
			continue
		}
		t = append(t, tap{dx: i%size - k.radius, dy: i/size - k.radius, w: w})
	}
	return t
}

// Convolve applies k to src and returns a newly allocated buffer of the
// same size. src is not modified. A radius-0 kernel is the identity and
// returns a copy of src.
func Convolve(src *image.ImageBuf, k *Kernel, mode EdgeMode) (*image.ImageBuf, error) {
	if src == nil || k == nil {
		return nil, ErrNilInput
	}
	if mode > EdgeTransparent {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEdgeMode, mode)
	}
	if k.radius == 0 {
		return src.Clone(), nil
	}
	dst, err := image.NewImageBuf(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	if err := ConvolveRows(src, dst, k, mode, 0, src.Height()); err != nil {
		return nil, err
	}
	return dst, nil
}

// ConvolveRows convolves rows [y0, y1) of src into the same rows of dst.
// Bands over disjoint row ranges may run concurrently against the same
// src and dst; the combined result equals Convolve.
func ConvolveRows(src, dst *image.ImageBuf, k *Kernel, mode EdgeMode, y0, y1 int) error {
	if src == nil || dst == nil || k == nil {
		return ErrNilInput
	}
	if !src.SameSize(dst) {
		return ErrSizeMismatch
	}
	if mode > EdgeTransparent {
		return fmt.Errorf("%w: %v", ErrUnknownEdgeMode, mode)
	}

	width, height := src.Bounds()
	y0 = clampInt(y0, 0, height)
	y1 = clampInt(y1, 0, height)

	taps := k.taps()
	r := k.radius
	srcData := src.Data()
	dstData := dst.Data()

	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 4

			if mode == EdgeNoOp && (x < r || y < r || x >= width-r || y >= height-r) {
				copy(dstData[idx:idx+4], srcData[idx:idx+4])
				continue
			}

			var rs, gs, bs float64
			for _, t := range taps {
				sx := x + t.dx
				sy := y + t.dy

				if sx < 0 || sx >= width || sy < 0 || sy >= height {
					if mode == EdgeTransparent {
						continue
					}
					// Clamp to source bounds (edge extension)
					sx = clampInt(sx, 0, width-1)
					sy = clampInt(sy, 0, height-1)
				}

				sIdx := (sy*width + sx) * 4
				rs += float64(srcData[sIdx+0]) * t.w
				gs += float64(srcData[sIdx+1]) * t.w
				bs += float64(srcData[sIdx+2]) * t.w
			}

			dstData[idx+0] = clampUint8(rs)
			dstData[idx+1] = clampUint8(gs)
			dstData[idx+2] = clampUint8(bs)
			dstData[idx+3] = srcData[idx+3]
		}
	}

	return nil
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
