// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"regexp"
	"time"
)

// dateFormats is the fixed fallback list tried in order. Formats with a
// time component come first so "2024-01-02 10:30" is not truncated by
// a date-only match.
var dateFormats = []string{
	"2006-01-02 15:04",
	"2006/01/02 15:04",
	"20060102 15:04",
	"2006-01-02",
	"2006/01/02",
	"20060102",
	"2006-01",
	"2006",
}

// ParseDate parses a date string against the fallback format list and
// returns it normalized to UTC.
func ParseDate(input string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, input); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", input)
}

// Coarse-input patterns: a bare year or a year-month.
var (
	bareYearPattern  = regexp.MustCompile(`^\d{4}$`)
	yearMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// expandCoarseEnd widens an inclusive range end parsed from a bare year
// or year-month to the last minute of that period: Dec 31 23:59 for a
// year, the last calendar day 23:59 for a year-month. Detection is by
// pattern match on the original input, so "2024-01-01" is left alone.
func expandCoarseEnd(input string, t time.Time) time.Time {
	switch {
	case bareYearPattern.MatchString(input):
		return time.Date(t.Year(), time.December, 31, 23, 59, 0, 0, time.UTC)
	case yearMonthPattern.MatchString(input):
		// Day 0 of the following month is this month's last day.
		last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
		return time.Date(t.Year(), t.Month(), last.Day(), 23, 59, 0, 0, time.UTC)
	default:
		return t
	}
}
