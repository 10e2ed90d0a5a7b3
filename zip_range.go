package main

import (
	"strconv"
	"strings"
)

// Range of zip codes
type ZipRange struct {
	Lower int // inclusive
	Upper int // inclusive
}

// Create new zip code range
func NewZipRange(lower int, upper int) ZipRange {
	return ZipRange{
		Lower: lower,
		Upper: upper,
	}
}

// If this range contains the zip code
func (r ZipRange) Contains(zip int) bool {
	return zip >= r.Lower && zip <= r.Upper
}

// implement Stringer, as [lower, upper]
func (r ZipRange) String() string {
	var sb strings.Builder
	sb.WriteRune('[')
	sb.WriteString(strconv.Itoa(r.Lower))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(r.Upper))
	sb.WriteRune(']')
	return sb.String()
}

// A set of zip code ranges, in the order they were added
type RangeSet struct {
	ranges []ZipRange
}

// Create new RangeSet
func NewRangeSet(ranges ...ZipRange) *RangeSet {
	return &RangeSet{
		ranges: ranges,
	}
}

// Ranges returns the ranges of this set
func (s *RangeSet) Ranges() []ZipRange {
	return s.ranges
}

// implement Stringer
func (s *RangeSet) String() string {
	var sb strings.Builder
	for index, r := range s.ranges {
		if index > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}

// If this set contains the zip code
func (s *RangeSet) Contains(zip int) bool {
	for _, r := range s.ranges {
		if r.Contains(zip) {
			return true
		}
	}
	return false
}
