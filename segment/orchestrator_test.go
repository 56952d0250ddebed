package segment_test

import (
	"testing"

	"github.com/Between-Dimensions/ImageSegmentation/pixelimage"
	"github.com/Between-Dimensions/ImageSegmentation/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gray(v uint8) pixelimage.Pixel { return pixelimage.Pixel{R: v, G: v, B: v} }

func countRegions(labels []int) (regions int, sizes map[int]int) {
	sizes = make(map[int]int)
	for _, l := range labels {
		sizes[l]++
	}
	return len(sizes), sizes
}

func TestSegment_UniformImage(t *testing.T) {
	rows := make([][]pixelimage.Pixel, 4)
	for y := range rows {
		rows[y] = []pixelimage.Pixel{gray(10), gray(10), gray(10), gray(10)}
	}
	img, err := pixelimage.New(rows)
	require.NoError(t, err)

	labels, err := segment.Segment(img, 1)
	require.NoError(t, err)

	regions, _ := countRegions(labels)
	assert.Equal(t, 1, regions)
}

func TestSegment_EmptyImage(t *testing.T) {
	// pixelimage.New itself rejects an empty grid, so the zero Image is
	// what reaches Segment's own empty-image check.
	_, err := pixelimage.New(nil)
	require.ErrorIs(t, err, pixelimage.ErrEmptyImage)

	_, err = segment.Segment(pixelimage.Image{}, 1)
	assert.ErrorIs(t, err, segment.ErrEmptyImage)
}

func TestSegment_NegativeK(t *testing.T) {
	img, err := pixelimage.New([][]pixelimage.Pixel{{gray(1)}})
	require.NoError(t, err)

	_, err = segment.Segment(img, -1)
	assert.ErrorIs(t, err, segment.ErrNegativeK)
}

// TestSegment_RefinesAllThreeChannels: a color-only boundary (channels
// disagree pairwise but each is internally consistent) must still split
// into separate regions in the final combined map, since Segment
// intersects all three channel partitions.
func TestSegment_RefinesAllThreeChannels(t *testing.T) {
	rows := [][]pixelimage.Pixel{
		{{R: 0, G: 255, B: 0}, {R: 0, G: 255, B: 0}},
		{{R: 255, G: 0, B: 255}, {R: 255, G: 0, B: 255}},
	}
	img, err := pixelimage.New(rows)
	require.NoError(t, err)

	labels, err := segment.Segment(img, 0)
	require.NoError(t, err)

	regions, sizes := countRegions(labels)
	require.Equal(t, 2, regions)
	for _, sz := range sizes {
		assert.Equal(t, 2, sz)
	}
}

// TestSegment_Deterministic checks repeated runs over the same input
// yield an identical label map, since the concurrent per-channel fan-out
// must not introduce nondeterminism into the result.
func TestSegment_Deterministic(t *testing.T) {
	rows := make([][]pixelimage.Pixel, 6)
	for y := 0; y < 6; y++ {
		row := make([]pixelimage.Pixel, 6)
		for x := 0; x < 6; x++ {
			row[x] = pixelimage.Pixel{R: uint8(x * 20), G: uint8(y * 20), B: uint8((x + y) * 10)}
		}
		rows[y] = row
	}
	img, err := pixelimage.New(rows)
	require.NoError(t, err)

	first, err := segment.Segment(img, 50)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := segment.Segment(img, 50)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
