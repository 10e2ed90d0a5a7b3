package main

import (
	"regexp"
)

// one token per bracket pair, non-greedy so that "[a] [b]" yields two tokens
var rangeTokenPattern = regexp.MustCompile(`\[(.*?)\]`)

// extract the content of each [...] token, in order of appearance
func extractRanges(text string) []string {
	var matches = rangeTokenPattern.FindAllStringSubmatch(text, -1)
	var tokens = make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

