package posterize

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every validation error returned from
// this package: empty palettes, negative radii, kernels with no filled
// cells, unknown shapes or edge modes and mismatched image sizes.
// The specific cause is wrapped as well, so errors.Is matches both.
var ErrInvalidArgument = errors.New("posterize: invalid argument")

// invalidArg wraps err with ErrInvalidArgument. nil stays nil.
func invalidArg(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidArgument) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

// ErrUnknownPalette is returned by PaletteByName for names it does not know.
var ErrUnknownPalette = errors.New("posterize: unknown palette")

// ErrNilImage is returned when a nil image is passed to the pipeline.
var ErrNilImage = errors.New("posterize: nil image")
