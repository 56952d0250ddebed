// Package grid provides the 8-connected pixel-index arithmetic shared by
// the edge builder and the channel intersector: row-major (y,x) <-> i
// conversion, bounds checking, and the two neighbor-offset tables the
// rest of the module needs (the full 8-neighborhood, and the
// canonical-ordering "forward" half used to emit each unordered pair
// exactly once).
//
// What & Why
//
//   - What: a thin, allocation-free wrapper around a Width x Height
//     rectangle. It owns no pixel data itself.
//   - Why: both the per-channel edge enumeration (felzenszwalb.BuildEdges)
//     and the post-intersection 8-connectivity closure
//     (intersect.Intersect) need identical neighbor math; factoring it out
//     here keeps that arithmetic in exactly one place.
//
// Complexity: every method here is O(1).
package grid
