package calendar

import (
	"fmt"
	"time"
)

const (
	// ReferenceYear is the non-leap year the day sequence is derived from.
	// Any non-leap year yields the identical 365-key set.
	ReferenceYear = 2025

	// DayCount is the number of days in the sequence.
	DayCount = 365
)

// Day is one calendar day of the reference year.
type Day struct {
	Month int
	Day   int
}

// Key returns the canonical "MM-DD" key for d.
func (d Day) Key() string {
	return Key(d.Month, d.Day)
}

// Key formats a month and day as a zero-padded "MM-DD" dataset key.
func Key(month, day int) string {
	return fmt.Sprintf("%02d-%02d", month, day)
}

// MMDD formats a month and day as the zero-padded "MMDD" request path segment.
func MMDD(month, day int) string {
	return fmt.Sprintf("%02d%02d", month, day)
}

// Days returns the 365 days of the reference year in chronological order,
// starting at January 1. The slice is freshly allocated on each call, so the
// sequence can be ranged over any number of times.
func Days() []Day {
	days := make([]Day, 0, DayCount)
	for d := time.Date(ReferenceYear, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == ReferenceYear; d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Month: int(d.Month()), Day: d.Day()})
	}
	return days
}
