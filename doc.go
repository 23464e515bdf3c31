// Package gdither generates animated procedural gradients and reduces them
// to constrained palettes with spatial dithering.
//
// The pipeline has three stages, each operating on a caller-owned Pixmap:
//
//  1. Gradient synthesis: a radial, linear, or conic field maps every pixel
//     to a position t in [0,1], which a Palette turns into an RGB value.
//  2. Mask compositing (optional): the gradient is blended over a background
//     color through a single-channel Mask.
//  3. Dithering: the dither subpackage quantizes each channel to a small
//     number of levels using ordered (Bayer), error-diffusion
//     (Floyd-Steinberg, Atkinson), or grain-noise algorithms.
//
// No stage retains buffers between calls; animation state (the rotation
// phase) is owned by the caller and passed in explicitly. The render and
// export subpackages provide a frame driver and PNG/GIF writers on top of
// the core.
package gdither
