package felzenszwalb

import "errors"

var (
	// ErrEmptyImage indicates a zero-dimension image was passed to
	// BuildEdges. (SegmentChannel returns an empty LabelMap instead.)
	ErrEmptyImage = errors.New("felzenszwalb: image must have at least one pixel")
	// ErrNegativeK indicates a negative scale parameter k was supplied.
	// spec.md section 4.C: "k < 0 is undefined (caller constraint: k >= 0)".
	ErrNegativeK = errors.New("felzenszwalb: k must be >= 0")
)
