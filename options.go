package posterize

import (
	"fmt"

	"github.com/gogpu/posterize/internal/filter"
	"github.com/gogpu/posterize/internal/image"
	"github.com/gogpu/posterize/internal/parallel"
)

// Default pipeline settings.
const (
	// DefaultRadius is the blur radius used when none is given.
	DefaultRadius = 2
)

// Config holds the pipeline settings. Build one with DefaultConfig and
// Options; the zero value is a box blur of radius 0 (no blur).
type Config struct {
	// Radius is the blur radius in pixels. Must be >= 0.
	Radius int

	// Shape is the blur kernel shape.
	Shape Shape

	// Edge is the border handling of the blur.
	Edge EdgeMode

	// Workers is the number of goroutines. 0 means runtime.GOMAXPROCS(0).
	Workers int

	// ParallelBlur spreads blur rows across the workers as well.
	ParallelBlur bool

	// Quality is the JPEG quality used by ProcessFile, clamped to [1, 100].
	Quality int
}

// Option configures a Config.
//
// Example:
//
//	out, err := posterize.BlurAndQuantize(img, posterize.Monokai(),
//	    posterize.WithRadius(5),
//	    posterize.WithShape(posterize.ShapeDisc),
//	)
type Option func(*Config)

// DefaultConfig returns the default pipeline settings: box blur of radius 2
// with clamped edges, one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Radius:       DefaultRadius,
		Shape:        ShapeBox,
		Edge:         EdgeClamp,
		Workers:      0,
		ParallelBlur: true,
		Quality:      image.DefaultJPEGQuality,
	}
}

// NewConfig applies opts to DefaultConfig.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithRadius sets the blur radius. Radius 0 disables the box and gaussian
// blur; a disc needs at least 1.
func WithRadius(r int) Option {
	return func(c *Config) {
		c.Radius = r
	}
}

// WithShape sets the blur kernel shape.
func WithShape(s Shape) Option {
	return func(c *Config) {
		c.Shape = s
	}
}

// WithEdgeMode sets how the blur treats the image border.
func WithEdgeMode(m EdgeMode) Option {
	return func(c *Config) {
		c.Edge = m
	}
}

// WithWorkers sets the number of worker goroutines.
// 0 or negative uses runtime.GOMAXPROCS(0); 1 runs sequentially.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithParallelBlur enables or disables running the blur on the worker pool.
func WithParallelBlur(enabled bool) Option {
	return func(c *Config) {
		c.ParallelBlur = enabled
	}
}

// WithQuality sets the JPEG quality for files written by ProcessFile.
func WithQuality(q int) Option {
	return func(c *Config) {
		c.Quality = q
	}
}

// Validate reports configuration errors. The returned error wraps
// ErrInvalidArgument.
func (c Config) Validate() error {
	if c.Radius < 0 {
		return invalidArg(fmt.Errorf("%w: got %d", filter.ErrInvalidRadius, c.Radius))
	}
	if c.Shape > ShapeGaussian {
		return invalidArg(fmt.Errorf("%w: %v", filter.ErrUnknownShape, c.Shape))
	}
	if c.Edge > EdgeTransparent {
		return invalidArg(fmt.Errorf("%w: %v", filter.ErrUnknownEdgeMode, c.Edge))
	}
	return nil
}

// workers returns the resolved worker count.
func (c Config) workers() int {
	return parallel.EffectiveWorkers(c.Workers)
}
