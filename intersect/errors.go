package intersect

import "errors"

// ErrLengthMismatch indicates the three per-channel label maps, or a
// label map and the supplied grid dimensions, disagree on pixel count.
var ErrLengthMismatch = errors.New("intersect: label maps and grid dimensions must agree on pixel count")
