package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Package-level compiled regex patterns for performance. Amounts are limited
// to 1-6 digits to bound matching on pathological input.
var (
	groupedDigitsRegex = regexp.MustCompile(`(\d),(\d)`)

	betweenRangeRegex = regexp.MustCompile(`(?:between|from)\s+(\d{1,6})\s*(?:and|to|-)\s*(\d{1,6})`)
	bareRangeRegex    = regexp.MustCompile(`(\d{1,6})\s*(?:to|-)\s*(\d{1,6})`)
	lowerBoundRegex   = regexp.MustCompile(`(?:above|over|greater than|more than|>)\s*(\d{1,6})`)
	upperBoundRegex   = regexp.MustCompile(`(?:below|under|less than|up to|upto|<)\s*(\d{1,6})`)
)

// ParsePriceRange extracts price bounds purely from text patterns, in
// priority order: "between A and B" / "from A to B", bare "A to B",
// "above A", "under A". Either bound may be nil. This parser is fully local
// and serves as the ground-truth fallback for the probabilistic extractor.
func ParsePriceRange(text string) (min, max *float64) {
	lowered := strings.ToLower(text)
	// "1,299" style grouping commas would split amounts across tokens
	lowered = groupedDigitsRegex.ReplaceAllString(lowered, "$1$2")

	if m := betweenRangeRegex.FindStringSubmatch(lowered); m != nil {
		return amountFromMatch(m[1]), amountFromMatch(m[2])
	}
	if m := bareRangeRegex.FindStringSubmatch(lowered); m != nil {
		return amountFromMatch(m[1]), amountFromMatch(m[2])
	}
	if m := lowerBoundRegex.FindStringSubmatch(lowered); m != nil {
		return amountFromMatch(m[1]), nil
	}
	if m := upperBoundRegex.FindStringSubmatch(lowered); m != nil {
		return nil, amountFromMatch(m[1])
	}
	return nil, nil
}

func amountFromMatch(digits string) *float64 {
	f, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return nil
	}
	return &f
}
