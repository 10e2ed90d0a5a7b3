package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidRange is matched by every validation failure of the pipeline.
	ErrInvalidRange = errors.New("invalid zip code range")
	// ErrExtractRanges is returned if the raw range text could not be obtained.
	ErrExtractRanges = errors.New("failed to extract zip code ranges")
)

// RangeErrorKind tells which check a range failed.
type RangeErrorKind int

const (
	EmptyInput RangeErrorKind = iota
	MalformedToken
	InvertedBounds
)

func (k RangeErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case MalformedToken:
		return "malformed token"
	case InvertedBounds:
		return "inverted bounds"
	default:
		return "unknown"
	}
}

// InvalidRangeError carries the offending values of a rejected range.
// For InvertedBounds, Values holds the lower then the upper bound text.
type InvalidRangeError struct {
	Kind   RangeErrorKind
	Values []string
}

func newInvalidRangeError(kind RangeErrorKind, values ...string) *InvalidRangeError {
	return &InvalidRangeError{Kind: kind, Values: values}
}

func (e *InvalidRangeError) Error() string {
	if e.Kind == InvertedBounds && len(e.Values) == 2 {
		return fmt.Sprintf("lower bound zip code \"%s\" cannot be greater than upper bound zip code \"%s\"",
			e.Values[0], e.Values[1])
	}
	var value string
	if len(e.Values) > 0 {
		value = e.Values[0]
	}
	return fmt.Sprintf("invalid zip code range \"%s\"", value)
}

// Unwrap lets errors.Is match ErrInvalidRange.
func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}
