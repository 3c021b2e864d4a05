package dateutil

import (
	"fmt"
	"time"
)

// MonthKeyLayout is the layout of month keys such as "2025-05".
const MonthKeyLayout = "2006-01"

// MonthStart returns midnight on the first day of the month containing date.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// NextMonth returns the start of the month following date.
func NextMonth(date time.Time) time.Time {
	return MonthStart(date).AddDate(0, 1, 0)
}

// PreviousMonth returns the start of the month preceding date.
func PreviousMonth(date time.Time) time.Time {
	return MonthStart(date).AddDate(0, -1, 0)
}

// InMonth reports whether date falls in the half-open window [month, month+1).
func InMonth(date, month time.Time) bool {
	start := MonthStart(month)
	return !date.Before(start) && date.Before(NextMonth(start))
}

// MonthKey formats date as "YYYY-MM".
func MonthKey(date time.Time) string {
	return date.Format(MonthKeyLayout)
}

// MonthLabel formats date as e.g. "May 2025".
func MonthLabel(date time.Time) string {
	return date.Format("January 2006")
}

// ParseMonth parses a "YYYY-MM" key into the start of that month (UTC).
func ParseMonth(key string) (time.Time, error) {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", key, err)
	}
	return t, nil
}

// MonthsBetween returns the number of whole calendar months from one month to another.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// YearsUntil returns the number of calendar years from date until year; it
// is negative when year is already in the past.
func YearsUntil(date time.Time, year int) int {
	return year - date.Year()
}
