package felzenszwalb

import (
	"sort"

	"github.com/Between-Dimensions/ImageSegmentation/dsu"
	"github.com/Between-Dimensions/ImageSegmentation/pixelimage"
)

// SegmentChannel runs Felzenszwalb-Huttenlocher segmentation over one
// color channel of img (spec.md section 4.C):
//
//  1. Build the channel's 8-connected edge set (BuildEdges) and sort it
//     ascending by weight with a stable sort, so ties break by the
//     edges' original (deterministic) enumeration order.
//  2. Initialize a DisjointSet of N singletons, size[i]=1, intDiff[i]=0.
//  3. Sweep the sorted edges. For edge (u,v,w) with roots ru, rv: skip
//     if ru==rv; otherwise accept the merge iff w does not exceed
//     tau = min(intDiff[ru]+k/size[ru], intDiff[rv]+k/size[rv]),
//     evaluated in float32 per spec.md's numerical-semantics note. On
//     acceptance, union(ru,rv) and write max(w,intDiff[ru],intDiff[rv])
//     and size[ru]+size[rv] to *both* old-root indices — regardless of
//     which one union-by-rank promoted — so the caller never needs to
//     guess which root survived.
//  4. Flatten and return the canonical label map.
//
// Returns an empty LabelMap and no error if img has zero pixels, and
// ErrNegativeK if k < 0.
// Complexity: O(E log E) for the sort, O(E*alpha(N)) for the sweep,
// where E <= 4*Width*Height.
func SegmentChannel(img pixelimage.Image, c pixelimage.Channel, k float64) (LabelMap, error) {
	if img.N() == 0 {
		return LabelMap{}, nil
	}
	if k < 0 {
		return nil, ErrNegativeK
	}

	edges, err := BuildEdges(img, c)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	g := gridFor(img)
	n := img.N()
	set := dsu.New(n)
	size := make([]uint32, n)
	intDiff := make([]float32, n) // intDiff[i]=0 for all i is the zero value already
	for i := range size {
		size[i] = 1
	}

	kf := float32(k)
	for _, e := range edges {
		u := int(e.U)
		v := e.V(g)
		ru, rv := set.Find(u), set.Find(v)
		if ru == rv {
			continue
		}

		tauU := intDiff[ru] + kf/float32(size[ru])
		tauV := intDiff[rv] + kf/float32(size[rv])
		tau := tauU
		if tauV < tau {
			tau = tauV
		}

		if float32(e.Weight) > tau {
			continue
		}

		merged := intDiff[ru]
		if intDiff[rv] > merged {
			merged = intDiff[rv]
		}
		if float32(e.Weight) > merged {
			merged = float32(e.Weight)
		}
		mergedSize := size[ru] + size[rv]

		set.Union(ru, rv)
		intDiff[ru], intDiff[rv] = merged, merged
		size[ru], size[rv] = mergedSize, mergedSize
	}

	return LabelMap(set.Flatten()), nil
}
