// Package datetime provides the date arithmetic shared by status derivation and import.
// Stored dates are ISO 8601; derived values are computed relative to an injected "now".
package datetime

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Standard date formats used throughout the application.
const (
	// DateFormat is the standard date-only format (YYYY-MM-DD).
	DateFormat = "2006-01-02"

	// DateTimeFormat is the standard datetime format (ISO 8601 / RFC3339).
	DateTimeFormat = time.RFC3339

	// DisplayDateFormat is for human-readable dates.
	DisplayDateFormat = "Jan 2, 2006"
)

// Day is the length of a calendar day as used by every "days until" computation.
const Day = 24 * time.Hour

// layouts accepted by ParseFlexible, most specific first.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DateFormat,
}

// DaysCeil converts a duration to whole days, rounding up.
// Time of day is not truncated: 6.2 days is 7, -0.5 days is 0.
func DaysCeil(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(Day)))
}

// DaysUntil returns DaysCeil(t - now).
func DaysUntil(t, now time.Time) int {
	return DaysCeil(t.Sub(now))
}

// OccurrenceInMonth returns midnight of the given day in the month of ref.
// Days past the end of the month roll into the following month (day 31 in April is May 1).
func OccurrenceInMonth(ref time.Time, day int) time.Time {
	return time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, ref.Location())
}

// AddMonths adds n calendar months, normalising day overflow the same way time.Date does.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// MonthIndex returns a monotonically increasing index for the calendar month of t.
func MonthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// StartOfDay returns t at 00:00:00 in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns the first day of the month at 00:00:00 in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ParseFlexible parses the date shapes found in exported files: RFC3339 with or
// without fractional seconds, local datetimes without zone, date-only strings and
// millisecond epoch numbers. The boolean is false when nothing matched.
func ParseFlexible(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), true
	}

	return time.Time{}, false
}
