// Package preprocess defines the pre-segmentation smoothing seam that
// spec.md's design notes call for but explicitly exclude from scope:
// implementing the actual Gaussian blur numerics is a non-goal. The
// Smoother interface exists so cmd/felzseg and config can wire a
// smoothing pass in without core packages ever depending on how one is
// implemented; Identity is the only implementation shipped here.
package preprocess
