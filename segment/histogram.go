package segment

import "sort"

// RegionSizeHistogram tallies pixel counts per region label and returns
// the tallies sorted by count descending. Labels are guaranteed to be
// unique across entries; ties in count are broken by ascending label so
// that the ordering is deterministic across calls.
func RegionSizeHistogram(labels []int) []HistogramEntry {
	counts := make(map[int]int)
	for _, l := range labels {
		counts[l]++
	}

	entries := make([]HistogramEntry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, HistogramEntry{Label: label, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})

	return entries
}
