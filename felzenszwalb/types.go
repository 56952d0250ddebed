package felzenszwalb

import "github.com/Between-Dimensions/ImageSegmentation/grid"

// Edge is the packed 8-neighbor edge encoding recommended by spec.md
// section 9: (u, direction, weight) in place of a plain (u, v, w)
// triple. v is recovered from u, Dir, and the grid width via V, so an
// Edge costs 8 bytes (6 bytes of fields plus alignment padding) instead
// of 12.
type Edge struct {
	U      int32
	Dir    grid.Direction
	Weight uint8
}

// V recovers the edge's second endpoint from u, Dir, and the grid's
// width, per spec.md section 3's "space-efficient encoding" note.
// Complexity: O(1).
func (e Edge) V(g grid.Grid) int {
	x, y := g.Coordinate(int(e.U))
	dy, dx := e.Dir.Delta()
	return g.Index(x+dx, y+dy)
}

// LabelMap is a length-N array of per-pixel integer labels. The
// canonical form (as returned by SegmentChannel) sets label[i] to the
// row-major pixel index of i's component root.
type LabelMap []int
