package pixelimage

import "errors"

var (
	// ErrEmptyImage indicates the pixel grid has zero rows or zero columns.
	ErrEmptyImage = errors.New("pixelimage: image must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pixelimage: all rows must have the same length")
)
