package dsu

// DisjointSet is a union-find forest over [0, N). The zero value is not
// usable; construct with New.
type DisjointSet struct {
	parent []int32
	rank   []uint8
}

// New allocates a DisjointSet of n singleton sets, {0}, {1}, ..., {n-1}.
// Complexity: O(n).
func New(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int32, n),
		rank:   make([]uint8, n),
	}
	for i := range ds.parent {
		ds.parent[i] = int32(i)
	}
	return ds
}

// Len returns the number of elements the DisjointSet was constructed
// with (N, not the current number of sets).
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Find returns the current representative (root) of x's set, compressing
// every node on the path to the root so subsequent Find calls on any of
// them are O(1). x must be in [0, Len()); Find does not bounds-check,
// per spec.md section 4.A's "find of an out-of-range index is undefined"
// policy.
// Complexity: O(alpha(N)) amortized.
func (ds *DisjointSet) Find(x int) int {
	root := x
	for ds.parent[root] != int32(root) {
		root = int(ds.parent[root])
	}
	for ds.parent[x] != int32(root) {
		next := int(ds.parent[x])
		ds.parent[x] = int32(root)
		x = next
	}
	return root
}

// Union merges the sets containing a and b using union-by-rank: the
// shorter tree attaches under the taller. When the two roots have equal
// rank, a's root becomes the surviving root and its rank increments —
// a deterministic left-side tie-break, not an arbitrary one, so that
// repeated runs over the same edge order always union the same way.
// Union(x, x), and Union of two elements already in the same set, are
// no-ops.
//
// Union returns the new root, letting a caller that tracks per-root
// auxiliary state (size, internal difference, ...) update it without a
// redundant Find.
// Complexity: O(alpha(N)) amortized.
func (ds *DisjointSet) Union(a, b int) int {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return ra
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = int32(rb)
		return rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = int32(ra)
		return ra
	default:
		ds.parent[rb] = int32(ra)
		ds.rank[ra]++
		return ra
	}
}

// Flatten sets parent[i] := Find(i) for every i and returns the
// resulting canonical label map, where label[i] is the root pixel index
// of i's component. It leaves the DisjointSet in a state where every
// element points directly at its root.
// Complexity: O(N*alpha(N)).
func (ds *DisjointSet) Flatten() []int {
	labels := make([]int, len(ds.parent))
	for i := range labels {
		labels[i] = ds.Find(i)
	}
	for i, root := range labels {
		ds.parent[i] = int32(root)
	}
	return labels
}
