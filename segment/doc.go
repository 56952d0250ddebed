// Package segment implements the top-level orchestrator (spec.md section
// 4.E): running felzenszwalb.SegmentChannel over the red, green and blue
// channels concurrently, intersecting the three resulting partitions with
// intersect.Intersect, and offering post-processing helpers (Merge,
// RegionSizeHistogram) that operate on the combined label map.
//
// The three per-channel segmentations are embarrassingly parallel: each
// goroutine owns its own edge slice, its own dsu.DisjointSet and its own
// size/intDiff bookkeeping, so no locking is needed to fan them out. The
// pattern mirrors GetVolumeData in the teacher's reconstruction package,
// which divides independent per-slice work across goroutines joined by a
// single sync.WaitGroup.
package segment
