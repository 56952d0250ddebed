package report

import (
	"fmt"
	"io"

	"github.com/Between-Dimensions/ImageSegmentation/segment"
)

// WriteRegionSizeReport writes hist to w as the stable text report
// described in spec.md's external interfaces section: the first line is
// the number of distinct regions, and each following line is one
// region's pixel count, in hist's order (non-increasing by count, per
// segment.RegionSizeHistogram). Region labels are not part of this
// contract and are not printed.
func WriteRegionSizeReport(w io.Writer, hist []segment.HistogramEntry) error {
	if _, err := fmt.Fprintln(w, len(hist)); err != nil {
		return err
	}
	for _, entry := range hist {
		if _, err := fmt.Fprintln(w, entry.Count); err != nil {
			return err
		}
	}
	return nil
}
