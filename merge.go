package main

import (
	"sort"
)

// MergeZipRanges validates the bracketed ranges in text and merges the
// overlapping ones. Nothing is returned with a failure.
func MergeZipRanges(text string) ([]ZipRange, error) {
	if len(text) == 0 {
		return nil, newInvalidRangeError(EmptyInput, "")
	}
	var tokens = extractRanges(text)
	logger.Debug("extracted", len(tokens), "range tokens")

	ranges, err := parseRanges(tokens)
	if err != nil {
		return nil, err
	}
	var merged = mergeRanges(ranges)
	logger.Debug("merged", len(ranges), "ranges into", len(merged))
	return merged, nil
}

// merge overlapping and touching ranges. the result is sorted by lower bound,
// and the passed in slice is left as it was.
func mergeRanges(ranges []ZipRange) []ZipRange {
	var sorted = make([]ZipRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Lower < sorted[j].Lower
	})

	var merged = make([]ZipRange, 0, len(sorted))
	for _, r := range sorted {
		// a gap of at least one zip code, start a new range
		if len(merged) == 0 || merged[len(merged)-1].Upper < r.Lower {
			merged = append(merged, r)
			continue
		}
		var last = &merged[len(merged)-1]
		if r.Upper > last.Upper {
			last.Upper = r.Upper
		}
	}
	return merged
}
