package preprocess

import "github.com/Between-Dimensions/ImageSegmentation/pixelimage"

// Smoother applies a pre-segmentation filter to img. maskSize and sigma
// are the smoothing kernel's side length and standard deviation, in the
// same units as config.Config's GaussianMaskSize and GaussianSigma.
type Smoother interface {
	Smooth(img pixelimage.Image, maskSize int, sigma float64) pixelimage.Image
}

// Identity is a Smoother that returns img unchanged. It is the only
// Smoother this module ships: implementing the actual Gaussian
// convolution is out of scope, per spec.md's design notes. Identity
// exists so callers can wire the seam without a nil check.
type Identity struct{}

// Smooth returns img unchanged.
func (Identity) Smooth(img pixelimage.Image, maskSize int, sigma float64) pixelimage.Image {
	return img
}
