package segment

import "errors"

// ErrEmptyImage indicates Segment was called with an image containing no
// pixels.
var ErrEmptyImage = errors.New("segment: image has no pixels")

// ErrNegativeK indicates Segment was called with a negative merge
// threshold constant.
var ErrNegativeK = errors.New("segment: k must be non-negative")
