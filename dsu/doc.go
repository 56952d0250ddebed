// Package dsu implements a disjoint-set (union-find) forest over the
// dense integer domain [0, N), with path compression and union by rank
// (spec.md section 4.A).
//
// What & Why
//
//   - What: N elements start in their own singleton set. Find locates a
//     set's current representative; Union merges two sets; Flatten
//     produces the canonical label map (label[i] = root of i's set).
//   - Why it looks the way it does: size and "internal difference"
//     bookkeeping for Felzenszwalb-style segmentation are deliberately
//     *not* stored here. They live in sibling arrays the caller (package
//     felzenszwalb) indexes by root; felzenszwalb writes the merged values
//     to both old roots rather than using the root Union returns.
//     This keeps Union's cost independent of how many auxiliary
//     quantities a caller wants to track per component — grounded on the
//     same parent/rank split used by prim_kruskal.Kruskal's inline DSU,
//     generalized here to a reusable package and an int domain instead
//     of string vertex IDs, since pixel indices are dense integers.
//
// Complexity: Find and Union are O(alpha(N)) amortized; Flatten is
// O(N*alpha(N)).
package dsu
