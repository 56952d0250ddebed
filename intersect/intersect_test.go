package intersect_test

import (
	"errors"
	"testing"

	"github.com/Between-Dimensions/ImageSegmentation/intersect"
)

func regionsOf(labels []int) map[int][]int {
	out := make(map[int][]int)
	for i, l := range labels {
		out[l] = append(out[l], i)
	}
	return out
}

func TestIntersect_LengthMismatch(t *testing.T) {
	_, err := intersect.Intersect([]int{0}, []int{0, 0}, []int{0}, 1, 1)
	if !errors.Is(err, intersect.ErrLengthMismatch) {
		t.Fatalf("err = %v; want ErrLengthMismatch", err)
	}
}

// TestIntersect_AllAgree: when every channel already agrees on a single
// label everywhere, the intersection is one region covering the grid.
func TestIntersect_AllAgree(t *testing.T) {
	n := 9 // 3x3
	same := make([]int, n)
	labels, err := intersect.Intersect(same, same, same, 3, 3)
	if err != nil {
		t.Fatalf("Intersect: %v", err)
	}
	regions := regionsOf(labels)
	if len(regions) != 1 {
		t.Fatalf("regions = %d; want 1", len(regions))
	}
}

// TestIntersect_RefinesEachChannel checks spec.md section 8's
// intersector-soundness invariant: the combined partition refines each
// input partition (any two pixels sharing a final label must share a
// label on every channel too).
func TestIntersect_RefinesEachChannel(t *testing.T) {
	// 2x2 grid. R and G agree on everything; B splits it into two halves.
	labelR := []int{0, 0, 0, 0}
	labelG := []int{0, 0, 0, 0}
	labelB := []int{0, 0, 1, 1} // top row vs bottom row

	labels, err := intersect.Intersect(labelR, labelG, labelB, 2, 2)
	if err != nil {
		t.Fatalf("Intersect: %v", err)
	}
	regions := regionsOf(labels)
	if len(regions) != 2 {
		t.Fatalf("regions = %d; want 2 (top row, bottom row)", len(regions))
	}
	for _, members := range regions {
		bVal := labelB[members[0]]
		for _, i := range members {
			if labelB[i] != bVal {
				t.Errorf("pixel %d has B-label %d, want %d (region must refine channel B)", i, labelB[i], bVal)
			}
		}
	}
}

// TestIntersect_SpatiallyDisjointSameTriple is the regression test for
// spec.md section 9's called-out bug: two spatially separated regions
// that happen to carry the same (L_R,L_G,L_B) triple on every channel
// must NOT be merged unless they are also 8-connected.
func TestIntersect_SpatiallyDisjointSameTriple(t *testing.T) {
	// 1x5 row. Pixels 0 and 4 share triple (0,0,0) on every channel but
	// are separated by pixels 1..3 carrying triple (1,1,1).
	labelR := []int{0, 1, 1, 1, 0}
	labelG := []int{0, 1, 1, 1, 0}
	labelB := []int{0, 1, 1, 1, 0}

	labels, err := intersect.Intersect(labelR, labelG, labelB, 5, 1)
	if err != nil {
		t.Fatalf("Intersect: %v", err)
	}
	if labels[0] == labels[4] {
		t.Errorf("pixels 0 and 4 share a final label despite not being 8-connected")
	}
}

// TestIntersect_EightConnectedClosure verifies a diagonal-only bridge
// between two triple-agreeing pixels still counts as connected.
func TestIntersect_EightConnectedClosure(t *testing.T) {
	// 2x2 grid, all four pixels share the same triple. (0,0) and (1,1)
	// are only diagonally adjacent; they must still end up in one region.
	same := make([]int, 4)
	labels, err := intersect.Intersect(same, same, same, 2, 2)
	if err != nil {
		t.Fatalf("Intersect: %v", err)
	}
	if labels[0] != labels[3] { // index 0 = (0,0), index 3 = (1,1)
		t.Errorf("diagonal neighbors (0,0) and (1,1) were not connected")
	}
}
