// Package pixelimage defines the read-only pixel grid the rest of the
// module segments: an immutable H x W array of 8-bit RGB triples,
// indexed canonically by i = y*W + x (spec.md section 3).
//
// Decoding an on-disk image format into this grid, and any Gaussian
// pre-smoothing of it, are both deliberately out of scope here. Smoothing
// is reached only through the preprocess package's Smoother interface;
// this module has no decoding seam. pixelimage owns exactly the data
// model, nothing else.
package pixelimage
