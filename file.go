package posterize

import (
	"context"
	"fmt"

	"github.com/gogpu/posterize/internal/image"
)

// DecodeFile reads an image file. PNG, JPEG, GIF, BMP, TIFF and WebP are
// recognized by content.
func DecodeFile(path string) (*Image, error) {
	return image.LoadImage(path)
}

// EncodeFile writes img to path. The format is chosen from the extension:
// .png, .jpg/.jpeg, .bmp, .tif/.tiff.
func EncodeFile(img *Image, path string) error {
	if img == nil {
		return invalidArg(ErrNilImage)
	}
	return img.Save(path)
}

// ProcessFile reads in, runs BlurAndQuantize and writes the result to out.
// The output extension is checked before any work is done. ctx is checked
// between stages; the stages themselves are not interruptible.
func ProcessFile(ctx context.Context, in, out string, pal Palette, opts ...Option) error {
	if _, err := image.FormatFromPath(out); err != nil {
		return invalidArg(err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	log := Logger()

	img, err := DecodeFile(in)
	if err != nil {
		return fmt.Errorf("posterize: read %s: %w", in, err)
	}
	log.Info("posterize: read image", "path", in, "width", img.Width(), "height", img.Height())

	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := NewConfig(opts...)
	res, err := cfg.BlurAndQuantize(img, pal)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := res.SaveQuality(out, cfg.Quality); err != nil {
		return fmt.Errorf("posterize: write %s: %w", out, err)
	}
	log.Info("posterize: wrote image", "path", out)
	return nil
}
