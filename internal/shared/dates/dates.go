// Package dates renders optional calendar dates for the catalog pages.
// Absent dates always render as the empty string.
package dates

import (
	"fmt"
	"time"
)

// FormatISO renders the ISO-8601 date portion, e.g. "1980-01-05".
func FormatISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

// FormatLong renders a human date such as "Jan 5th, 1980".
func FormatLong(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%s %d%s, %d", t.Format("Jan"), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

// ordinalSuffix follows English ordinal rules: 11, 12 and 13 take "th"
// despite ending in 1, 2 and 3.
func ordinalSuffix(day int) string {
	if day == 11 || day == 12 || day == 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
