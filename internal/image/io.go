package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrUnsupportedFormat is returned when the image format is not supported.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// DefaultJPEGQuality is used by Save for .jpg outputs.
const DefaultJPEGQuality = 90

// EncodeFormat identifies an output file format.
type EncodeFormat uint8

const (
	// EncodePNG writes lossless PNG.
	EncodePNG EncodeFormat = iota
	// EncodeJPEG writes baseline JPEG.
	EncodeJPEG
	// EncodeBMP writes uncompressed BMP.
	EncodeBMP
	// EncodeTIFF writes deflate-compressed TIFF.
	EncodeTIFF
)

// String returns the canonical file extension without the dot.
func (f EncodeFormat) String() string {
	switch f {
	case EncodePNG:
		return "png"
	case EncodeJPEG:
		return "jpeg"
	case EncodeBMP:
		return "bmp"
	case EncodeTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// FormatFromPath picks an encoder from the file extension of path.
func FormatFromPath(path string) (EncodeFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return EncodePNG, nil
	case ".jpg", ".jpeg":
		return EncodeJPEG, nil
	case ".bmp":
		return EncodeBMP, nil
	case ".tif", ".tiff":
		return EncodeTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadImage loads an image from the given file path, detecting the format
// from its content. Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// Save writes the image to path, choosing the encoder from the extension.
func (b *ImageBuf) Save(path string) error {
	return b.SaveQuality(path, DefaultJPEGQuality)
}

// SaveQuality is like Save with an explicit JPEG quality.
func (b *ImageBuf) SaveQuality(path string, quality int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.Encode(f, format, quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes the image to w in the given format. Quality applies to
// JPEG only and is clamped to [1, 100].
func (b *ImageBuf) Encode(w io.Writer, format EncodeFormat, quality int) error {
	img := b.ToStdImage()

	var err error
	switch format {
	case EncodePNG:
		err = png.Encode(w, img)
	case EncodeJPEG:
		quality = max(1, min(quality, 100))
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case EncodeBMP:
		err = bmp.Encode(w, img)
	case EncodeTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", format, err)
	}
	return nil
}

// FromStdImage creates an ImageBuf from a standard library image.Image.
// Any color model is converted to non-premultiplied RGBA8.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf, err := NewImageBuf(width, height)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*BytesPerPixel])
		}
		return buf, nil
	}

	dst := &image.NRGBA{
		Pix:    buf.data,
		Stride: buf.Stride(),
		Rect:   image.Rect(0, 0, width, height),
	}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return buf, nil
}

// ToStdImage returns an *image.NRGBA that shares memory with b.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.Stride(),
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}
