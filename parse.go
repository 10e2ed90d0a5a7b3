package main

import (
	"regexp"
	"strconv"
	"strings"
)

// exactly five decimal digits
var zipCodePattern = regexp.MustCompile(`^[0-9]{5}$`)

// parse tokens to zip ranges, stopping at the first invalid one
func parseRanges(tokens []string) ([]ZipRange, error) {
	var ranges = make([]ZipRange, 0, len(tokens))
	for _, token := range tokens {
		r, err := parseRange(token)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseRange(token string) (ZipRange, error) {
	var fields = splitFields(token)
	if len(fields) != 2 {
		return ZipRange{}, newInvalidRangeError(MalformedToken, token)
	}
	var lowerStr = trimBlank(fields[0])
	var upperStr = trimBlank(fields[1])

	lower, err := parseZipCode(lowerStr)
	if err != nil {
		return ZipRange{}, err
	}
	upper, err := parseZipCode(upperStr)
	if err != nil {
		return ZipRange{}, err
	}
	if lower > upper {
		return ZipRange{}, newInvalidRangeError(InvertedBounds, lowerStr, upperStr)
	}
	return NewZipRange(lower, upper), nil
}

// split by comma; trailing empty fields are dropped, so "95746," has only one field
func splitFields(token string) []string {
	var fields = strings.Split(token, ",")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// only ascii space and tab are trimmed
func trimBlank(str string) string {
	return strings.Trim(str, " \t")
}

func parseZipCode(str string) (int, error) {
	if !zipCodePattern.MatchString(str) {
		return 0, newInvalidRangeError(MalformedToken, str)
	}
	zip, err := strconv.Atoi(str)
	if err != nil {
		return 0, newInvalidRangeError(MalformedToken, str)
	}
	return zip, nil
}
