// Package dither quantizes RGBA pixel buffers to a constrained number of
// color levels per channel while preserving perceived tone.
//
// Four algorithms are provided:
//   - Ordered: Bayer-matrix threshold dithering, stateless per pixel.
//   - FloydSteinberg: raster-order error diffusion (7/16, 3/16, 5/16, 1/16).
//   - Atkinson: error diffusion at 1/8 to six neighbors; a quarter of the
//     error is discarded, which preserves highlight and shadow contrast.
//   - Noise: uniform random offsets shared across grain-sized cells.
//
// Apply never mutates its input and always produces a buffer of identical
// dimensions with alpha forced to 255. The only validated precondition is
// Config.Levels >= 2; everything else degrades silently (strength is
// clamped, scales are snapped, unknown algorithms pass the image through).
package dither
