package model

import (
	"sort"
	"time"
)

const (
	// DateLayout is the canonical storage format for date keys
	DateLayout = "2006-01-02"

	// displayLayout is used when naming dates in issue strings
	displayLayout = "2 Jan 2006"

	// FortnightDays is the length of a scheduling window
	FortnightDays = 14
)

// DateKey is a calendar date in "2006-01-02" form, the key for all
// per-date maps
type DateKey string

// NewDateKey builds a DateKey from a time, dropping the time-of-day part
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(DateLayout))
}

// Time parses the key back into a UTC midnight time. Malformed keys parse
// to the zero time; callers treat those dates as non-weekend weekdays.
func (d DateKey) Time() time.Time {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the key for the date n days after d
func (d DateKey) AddDays(n int) DateKey {
	return NewDateKey(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of week for the key
func (d DateKey) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsSaturday reports whether the date is a Saturday
func (d DateKey) IsSaturday() bool {
	return d.Weekday() == time.Saturday
}

// IsSunday reports whether the date is a Sunday
func (d DateKey) IsSunday() bool {
	return d.Weekday() == time.Sunday
}

// IsWeekend reports whether the date is a Saturday or Sunday
func (d DateKey) IsWeekend() bool {
	return d.IsSaturday() || d.IsSunday()
}

// Display formats the date for human-readable issue strings
func (d DateKey) Display() string {
	return d.Time().Format(displayLayout)
}

// DaysBetween returns the number of calendar days from a to b (negative if
// b is before a)
func DaysBetween(a, b DateKey) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}

// MondayOnOrBefore returns the Monday that starts the week containing t
func MondayOnOrBefore(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
}

// FortnightWindow returns the 14 consecutive date keys starting on the
// Monday on or before the anchor date
func FortnightWindow(anchor time.Time) []DateKey {
	start := MondayOnOrBefore(anchor)
	window := make([]DateKey, FortnightDays)
	for i := range window {
		window[i] = NewDateKey(start.AddDate(0, 0, i))
	}
	return window
}

// FormatDateRanges merges consecutive dates into human-readable ranges,
// e.g. ["2025-12-18".."2025-12-26"] becomes "18 Dec 2025 - 26 Dec 2025".
// Isolated dates are formatted on their own. Input order does not matter.
func FormatDateRanges(dates []DateKey) []string {
	if len(dates) == 0 {
		return nil
	}

	sorted := make([]DateKey, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var ranges []string
	start := sorted[0]
	end := sorted[0]
	for _, d := range sorted[1:] {
		if d == end {
			continue
		}
		if DaysBetween(end, d) == 1 {
			end = d
			continue
		}
		ranges = append(ranges, formatRange(start, end))
		start, end = d, d
	}
	ranges = append(ranges, formatRange(start, end))
	return ranges
}

func formatRange(start, end DateKey) string {
	if start == end {
		return start.Display()
	}
	return start.Display() + " - " + end.Display()
}
