// Package felzenszwalb implements single-channel graph-based
// segmentation (Felzenszwalb & Huttenlocher, 2004) over the 8-connected
// pixel graph of one color channel: spec.md sections 4.B (EdgeBuilder)
// and 4.C (ChannelSegmenter).
//
// What & Why
//
//   - EdgeBuilder (BuildEdges) enumerates the grid's 8-neighbor edges
//     once each, weighted by the absolute difference of the chosen
//     channel's intensity between the two endpoints.
//   - ChannelSegmenter (SegmentChannel) sorts those edges and runs them
//     through a Kruskal-style union-find sweep, merging two components
//     only when the new edge's weight does not exceed the Felzenszwalb
//     merge threshold tau = min(Int(A) + k/|A|, Int(B) + k/|B|).
//
// This is a direct generalization of the teacher's
// prim_kruskal.Kruskal, which sorts a *core.Graph's edges and sweeps
// them through an inline union-find: the sort-then-sweep control flow
// is unchanged, but the acceptance test is no longer "different
// components" alone — it is spec.md's data-dependent Felzenszwalb
// predicate, so the per-component size and internal-difference
// bookkeeping in segmenter.go replaces Kruskal's plain edge-count
// termination condition.
//
// Determinism: BuildEdges enumerates pixels in row-major order and, for
// each, its four canonical-ordering neighbor directions in a fixed
// order; SegmentChannel then stable-sorts by weight, so ties break by
// that same enumeration order, deterministically, for a fixed input.
package felzenszwalb
