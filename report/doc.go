// Package report renders a region-size histogram produced by the
// segment package. WriteRegionSizeReport is the stable, dependency-free
// contract described in spec.md's external interfaces section; Summarize
// is a supplemental diagnostic built on gonum.org/v1/gonum/stat and is
// not part of that stable contract, callers that only need the counts
// should use WriteRegionSizeReport.
package report
