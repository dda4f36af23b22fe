// Package quantize maps every pixel of an image to its nearest palette
// color, sequentially or split by rows across a worker pool.
//
// Pixels are independent, so each worker owns a disjoint band of output
// rows and no locking is needed. Input image and palette are only read.
package quantize

import (
	"errors"
	"fmt"
	stdimage "image"

	"github.com/gogpu/posterize/internal/color"
	"github.com/gogpu/posterize/internal/image"
	"github.com/gogpu/posterize/internal/parallel"
)

// ErrSizeMismatch is returned when source and destination sizes differ.
var ErrSizeMismatch = errors.New("quantize: source and destination sizes differ")

// Rect quantizes the pixels of src inside r into dst, clipped to the image.
// The right and bottom edges of r are exclusive. Alpha is copied from src.
func Rect(src, dst *image.ImageBuf, pal color.Palette, r stdimage.Rectangle) {
	r = r.Intersect(stdimage.Rect(0, 0, src.Width(), src.Height()))
	if r.Empty() {
		return
	}

	width := src.Width()
	srcData := src.Data()
	dstData := dst.Data()

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := (y*width + x) * image.BytesPerPixel
			c := pal.Closest(color.ColorU8{R: srcData[i], G: srcData[i+1], B: srcData[i+2], A: srcData[i+3]})
			dstData[i+0] = c.R
			dstData[i+1] = c.G
			dstData[i+2] = c.B
			dstData[i+3] = c.A
		}
	}
}

// Rows quantizes the full-width band rr of src into dst.
func Rows(src, dst *image.ImageBuf, pal color.Palette, rr parallel.RowRange) {
	Rect(src, dst, pal, stdimage.Rect(0, rr.StartY, src.Width(), rr.EndY))
}

// Image returns a new image with every pixel of src replaced by its
// nearest palette color. It runs on the calling goroutine.
func Image(src *image.ImageBuf, pal color.Palette) (*image.ImageBuf, error) {
	if pal.IsEmpty() {
		return nil, color.ErrEmptyPalette
	}
	dst, err := image.NewImageBuf(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	Rect(src, dst, pal, stdimage.Rect(0, 0, src.Width(), src.Height()))
	return dst, nil
}

// Parallel quantizes src into dst using workers goroutines.
//
// Rows are split with parallel.SplitRows and each band runs on a pool
// created for this call and closed before returning. workers <= 0 uses
// GOMAXPROCS; a single worker or single row runs sequentially without a
// pool. dst is fully written when Parallel returns nil. On error its
// contents are undefined and must be discarded.
func Parallel(src, dst *image.ImageBuf, pal color.Palette, workers int) error {
	if err := validate(src, dst, pal); err != nil {
		return err
	}

	workers = parallel.EffectiveWorkers(workers)
	if workers == 1 || src.Height() == 1 {
		Rows(src, dst, pal, parallel.RowRange{StartY: 0, EndY: src.Height()})
		return nil
	}

	pool := parallel.NewWorkerPool(min(workers, src.Height()))
	defer pool.Close()

	return WithPool(pool, src, dst, pal)
}

// WithPool is Parallel on an existing pool. The pool is not closed.
func WithPool(pool *parallel.WorkerPool, src, dst *image.ImageBuf, pal color.Palette) error {
	if err := validate(src, dst, pal); err != nil {
		return err
	}
	return pool.ForRows(src.Height(), func(rr parallel.RowRange) error {
		Rows(src, dst, pal, rr)
		return nil
	})
}

func validate(src, dst *image.ImageBuf, pal color.Palette) error {
	if pal.IsEmpty() {
		return color.ErrEmptyPalette
	}
	if src == nil || dst == nil {
		return fmt.Errorf("%w: nil image", ErrSizeMismatch)
	}
	if !src.SameSize(dst) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch,
			src.Width(), src.Height(), dst.Width(), dst.Height())
	}
	return nil
}
