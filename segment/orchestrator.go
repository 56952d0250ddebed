package segment

import (
	"sync"

	"github.com/Between-Dimensions/ImageSegmentation/felzenszwalb"
	"github.com/Between-Dimensions/ImageSegmentation/intersect"
	"github.com/Between-Dimensions/ImageSegmentation/pixelimage"
)

var channels = [3]pixelimage.Channel{pixelimage.R, pixelimage.G, pixelimage.B}

// Segment runs the Felzenszwalb-Huttenlocher segmentation independently
// on each of the red, green and blue channels of img, then intersects
// the three resulting partitions per spec.md section 4.D so that a
// returned region is homogeneous, within tolerance k, on every channel
// at once.
//
// The three per-channel segmentations run in separate goroutines joined
// by a single sync.WaitGroup; each goroutine writes only to its own
// slot in a fixed-size results array, so no synchronization beyond the
// WaitGroup is required.
//
// Returns ErrEmptyImage if img has no pixels, ErrNegativeK if k is
// negative, and otherwise propagates the first per-channel error
// encountered (channels are joined before errors are inspected, so all
// three always run to completion).
func Segment(img pixelimage.Image, k float64) ([]int, error) {
	if img.N() == 0 {
		return nil, ErrEmptyImage
	}
	if k < 0 {
		return nil, ErrNegativeK
	}

	var results [3]channelResult
	var wg sync.WaitGroup
	wg.Add(len(channels))
	for i, c := range channels {
		go func(i int, c pixelimage.Channel) {
			defer wg.Done()
			labels, err := felzenszwalb.SegmentChannel(img, c, k)
			results[i] = channelResult{labels: labels, err: err}
		}(i, c)
	}
	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
	}

	return intersect.Intersect(
		toIntLabels(results[0].labels),
		toIntLabels(results[1].labels),
		toIntLabels(results[2].labels),
		img.Width, img.Height,
	)
}

func toIntLabels(l felzenszwalb.LabelMap) []int {
	return []int(l)
}
