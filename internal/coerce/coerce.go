// Package coerce converts raw element text into typed product values.
// All functions are pure and safe for concurrent use.
package coerce

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var priceNoise = regexp.MustCompile(`[^\d.,]`)

// dateLayouts are tried in order; the first exact match wins.
// ISO yyyy-MM-dd comes first, then day-first before month-first so that
// ambiguous input such as 01/02/2024 reads as 1 February.
var dateLayouts = []string{
	time.DateOnly, // yyyy-MM-dd
	"02/01/2006",  // dd/MM/yyyy
	"01/02/2006",  // MM/dd/yyyy
}

// ParsePrice cleans text down to digits and separators, treats a comma as
// the decimal separator and parses the remainder as an exact decimal.
// Thousands separators are not supported.
func ParsePrice(text string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(priceNoise.ReplaceAllString(text, ""))
	normalized := strings.ReplaceAll(cleaned, ",", ".")
	if normalized == "" {
		return decimal.Zero, false
	}

	price, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, false
	}
	return price, true
}

// ParseDate parses a calendar date in one of the supported layouts and
// returns it as midnight UTC.
func ParseDate(text string) (time.Time, bool) {
	trimmed := strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Today returns the calendar date of now as midnight UTC, comparable with
// values returned by ParseDate.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
