// Package filter provides the blur stage of the posterize pipeline.
//
// A blur is described by a square Kernel built from a Shape and a radius:
//   - Box: uniform average over the (2r+1)² square
//   - Disc: uniform average over offsets strictly inside radius r
//   - Gaussian: separable Gaussian weights, sigma = r/3
//
// Convolve applies a kernel to an ImageBuf and returns a new buffer of the
// same size. Three EdgeModes decide what happens near the borders.
//
// Alpha is never blurred; each output pixel keeps the source alpha.
package filter
