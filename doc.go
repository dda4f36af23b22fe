// Package posterize turns an image into a stylized, reduced-palette version
// of itself.
//
// # Overview
//
// Processing runs in two stages:
//
//  1. Blur: the image is convolved with a normalized square kernel (box,
//     disc or gaussian) to suppress high-frequency noise.
//  2. Quantize: every pixel of the blurred image is replaced by the
//     nearest color of a fixed palette, using Euclidean RGB distance.
//
// Quantization is split into contiguous row bands, one per worker
// goroutine. Bands are disjoint, so workers share the input and palette
// read-only and write their own rows of the output without locking.
//
// # Quick Start
//
//	img, err := posterize.DecodeFile("in.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := posterize.BlurAndQuantize(img, posterize.Monokai(),
//	    posterize.WithRadius(3),
//	    posterize.WithShape(posterize.ShapeDisc),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = posterize.EncodeFile(out, "out.png")
//
// # Palette Matching
//
// The nearest palette color is found by a linear scan that only replaces
// the current best on a strictly smaller distance. When two entries are
// equally close, the one that comes first in the palette wins. Reordering a
// palette can therefore change the output.
//
// # Errors
//
// Validation failures (empty palette, negative radius, a disc of radius 0,
// unknown shape or edge mode) wrap ErrInvalidArgument. No partial image is
// ever returned.
//
// # Logging
//
// The package is silent by default. See SetLogger.
package posterize
