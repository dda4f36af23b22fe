package posterize

import (
	"fmt"
	"time"

	"github.com/gogpu/posterize/internal/color"
	"github.com/gogpu/posterize/internal/filter"
	"github.com/gogpu/posterize/internal/image"
	"github.com/gogpu/posterize/internal/parallel"
	"github.com/gogpu/posterize/internal/quantize"
)

// BlurAndQuantize blurs img and maps every pixel of the result to its
// nearest color in pal. img is not modified; a new image is returned.
//
// Settings default to DefaultConfig and are changed with opts. On any
// error the result is nil: validation failures wrap ErrInvalidArgument,
// a failing worker aborts the whole call.
func BlurAndQuantize(img *Image, pal Palette, opts ...Option) (*Image, error) {
	return NewConfig(opts...).BlurAndQuantize(img, pal)
}

// BlurAndQuantize runs the pipeline with the settings in c.
func (c Config) BlurAndQuantize(img *Image, pal Palette) (*Image, error) {
	if img == nil {
		return nil, invalidArg(ErrNilImage)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if pal.IsEmpty() {
		return nil, invalidArg(color.ErrEmptyPalette)
	}
	k, err := filter.NewKernel(c.Shape, c.Radius)
	if err != nil {
		return nil, invalidArg(err)
	}

	log := Logger()
	workers := min(c.workers(), img.Height())
	log.Debug("posterize: start",
		"width", img.Width(),
		"height", img.Height(),
		"shape", c.Shape.String(),
		"radius", c.Radius,
		"kernel_size", k.Size(),
		"kernel_cells", k.Filled(),
		"edge", c.Edge.String(),
		"palette", pal.Len(),
		"workers", workers,
	)

	var pool *parallel.WorkerPool
	if workers > 1 {
		pool = parallel.NewWorkerPool(workers)
		defer pool.Close()
	}

	start := time.Now()
	blurPool := pool
	if !c.ParallelBlur {
		blurPool = nil
	}
	blurred, err := convolve(img, k, c.Edge, blurPool)
	if err != nil {
		return nil, fmt.Errorf("posterize: blur: %w", err)
	}
	log.Debug("posterize: blur done", "elapsed", time.Since(start))

	start = time.Now()
	out, err := image.NewImageBuf(img.Width(), img.Height())
	if err != nil {
		return nil, invalidArg(err)
	}
	if pool != nil {
		err = quantize.WithPool(pool, blurred, out, pal)
	} else {
		quantize.Rows(blurred, out, pal, parallel.RowRange{StartY: 0, EndY: img.Height()})
	}
	if err != nil {
		return nil, fmt.Errorf("posterize: quantize: %w", err)
	}
	log.Debug("posterize: quantize done", "elapsed", time.Since(start))

	return out, nil
}

// Blur returns img convolved with the kernel for shape and radius.
func Blur(img *Image, shape Shape, radius int, edge EdgeMode) (*Image, error) {
	if img == nil {
		return nil, invalidArg(ErrNilImage)
	}
	k, err := filter.NewKernel(shape, radius)
	if err != nil {
		return nil, invalidArg(err)
	}
	out, err := filter.Convolve(img, k, edge)
	if err != nil {
		return nil, invalidArg(err)
	}
	return out, nil
}

// Quantize returns a copy of img with every pixel replaced by its nearest
// palette color, using workers goroutines (0 = one per CPU).
func Quantize(img *Image, pal Palette, workers int) (*Image, error) {
	if img == nil {
		return nil, invalidArg(ErrNilImage)
	}
	if pal.IsEmpty() {
		return nil, invalidArg(color.ErrEmptyPalette)
	}
	out, err := image.NewImageBuf(img.Width(), img.Height())
	if err != nil {
		return nil, invalidArg(err)
	}
	if err := quantize.Parallel(img, out, pal, workers); err != nil {
		return nil, fmt.Errorf("posterize: quantize: %w", err)
	}
	return out, nil
}

// convolve runs the blur, spreading rows over pool when it is not nil.
func convolve(img *Image, k *filter.Kernel, edge EdgeMode, pool *parallel.WorkerPool) (*Image, error) {
	if pool == nil {
		return filter.Convolve(img, k, edge)
	}

	dst, err := image.NewImageBuf(img.Width(), img.Height())
	if err != nil {
		return nil, err
	}
	err = pool.ForRows(img.Height(), func(r parallel.RowRange) error {
		return filter.ConvolveRows(img, dst, k, edge, r.StartY, r.EndY)
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}
