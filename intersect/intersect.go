package intersect

import (
	"github.com/Between-Dimensions/ImageSegmentation/dsu"
	"github.com/Between-Dimensions/ImageSegmentation/grid"
)

// Intersect combines three per-channel canonical label maps (labelR,
// labelG, labelB, each length width*height) into one, per spec.md
// section 4.D. It initializes a fresh DisjointSet of width*height
// singletons and, for every pixel p and every in-bounds 8-neighbor q,
// unions p and q iff all three channels agree that p and q share a
// label. It returns the resulting canonical label map.
//
// Only the four forward (canonical-ordering) directions are walked per
// pixel: Union is symmetric and idempotent, so visiting a neighbor pair
// from both sides would be correct but redundant; walking forward-only
// halves the number of Union calls.
//
// Returns ErrLengthMismatch if the three label maps are not all exactly
// width*height long.
// Complexity: O(width*height) time and memory.
func Intersect(labelR, labelG, labelB []int, width, height int) ([]int, error) {
	n := width * height
	if len(labelR) != n || len(labelG) != n || len(labelB) != n {
		return nil, ErrLengthMismatch
	}

	g := grid.New(width, height)
	set := dsu.New(n)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := g.Index(x, y)
			for _, d := range g.ForwardDirections() {
				nx, ny, ok := g.Neighbor(x, y, d)
				if !ok {
					continue
				}
				q := g.Index(nx, ny)
				if labelR[p] == labelR[q] && labelG[p] == labelG[q] && labelB[p] == labelB[q] {
					set.Union(p, q)
				}
			}
		}
	}

	return set.Flatten(), nil
}
