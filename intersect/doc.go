// Package intersect implements the channel intersector (spec.md section
// 4.D): combining three per-channel label maps into one, where two
// pixels share a final label iff they share a label on every channel
// *and* are connected by a path of 8-neighbor steps that each satisfy
// that same all-three-channels equality.
//
// spec.md section 9 calls out two strategies seen in the wild: hashing
// the (L_R, L_G, L_B) triple into a new id, or an 8-connected union pass
// requiring equality on all three channels. The first is a bug — it
// merges spatially disjoint regions that happen to share a triple. This
// package implements only the second, mandated, strategy, built on the
// same dsu.DisjointSet and grid.Grid primitives felzenszwalb uses, so a
// spatially-disjoint same-triple pair can never end up union'd: Union is
// only ever called between actual 8-neighbors.
package intersect
