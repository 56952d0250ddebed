package segment_test

import (
	"testing"

	"github.com/Between-Dimensions/ImageSegmentation/segment"
	"github.com/stretchr/testify/assert"
)

func TestMerge_CollapsesToMinLabel(t *testing.T) {
	labels := []int{0, 1, 2, 2, 3}
	merged := segment.Merge(labels, []int{1, 3})
	assert.Equal(t, []int{0, 1, 2, 2, 1}, merged)
}

func TestMerge_NoOpBelowTwoSelected(t *testing.T) {
	labels := []int{0, 1, 2}
	assert.Equal(t, labels, segment.Merge(labels, nil))
	assert.Equal(t, labels, segment.Merge(labels, []int{1}))
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	labels := []int{0, 1, 1, 2}
	original := append([]int(nil), labels...)
	_ = segment.Merge(labels, []int{0, 2})
	assert.Equal(t, original, labels)
}

func TestMerge_SelectedOrderIndependent(t *testing.T) {
	labels := []int{5, 7, 9}
	a := segment.Merge(labels, []int{9, 5, 7})
	b := segment.Merge(labels, []int{7, 9, 5})
	assert.Equal(t, a, b)
	assert.Equal(t, []int{5, 5, 5}, a)
}
