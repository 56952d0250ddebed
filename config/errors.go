package config

import "errors"

// ErrNegativeK indicates a config's K value is negative.
var ErrNegativeK = errors.New("config: k must be non-negative")

// ErrInvalidMaskSize indicates a config's GaussianMaskSize is not an
// odd number of at least 3, as required by a centered convolution kernel.
var ErrInvalidMaskSize = errors.New("config: gaussianMaskSize must be an odd number >= 3")

// ErrNonPositiveSigma indicates a config's GaussianSigma is not
// strictly positive.
var ErrNonPositiveSigma = errors.New("config: gaussianSigma must be positive")
