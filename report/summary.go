package report

import (
	"gonum.org/v1/gonum/stat"

	"github.com/Between-Dimensions/ImageSegmentation/segment"
)

// Summary holds descriptive statistics over a region-size histogram,
// supplemental to the stable report contract in WriteRegionSizeReport.
type Summary struct {
	RegionCount  int
	MeanSize     float64
	StdDevSize   float64
	LargestSize  int
	SmallestSize int
}

// Summarize computes descriptive statistics over hist's region sizes
// using gonum.org/v1/gonum/stat. It returns the zero Summary if hist is
// empty.
func Summarize(hist []segment.HistogramEntry) Summary {
	if len(hist) == 0 {
		return Summary{}
	}

	sizes := make([]float64, len(hist))
	largest, smallest := hist[0].Count, hist[0].Count
	for i, entry := range hist {
		sizes[i] = float64(entry.Count)
		if entry.Count > largest {
			largest = entry.Count
		}
		if entry.Count < smallest {
			smallest = entry.Count
		}
	}

	return Summary{
		RegionCount:  len(hist),
		MeanSize:     stat.Mean(sizes, nil),
		StdDevSize:   stat.PopStdDev(sizes, nil),
		LargestSize:  largest,
		SmallestSize: smallest,
	}
}
