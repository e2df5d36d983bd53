package utils

import (
	"time"

	"github.com/tareas/task-lifecycle-api/internal/constants"
)

// ParseCalendarDate parses a YYYY-MM-DD value as midnight UTC.
func ParseCalendarDate(value string) (time.Time, error) {
	return time.ParseInLocation(constants.DateLayout, value, time.UTC)
}

// DayBounds returns [start, end) covering the UTC calendar day of t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// TruncateRunes shortens s to at most n runes.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
