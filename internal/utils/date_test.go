package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseCalendarDate("14/03/2025")
	assert.Error(t, err)

	_, err = ParseCalendarDate("2025-02-30")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(time.Date(2025, time.March, 14, 17, 45, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), end)
}

func TestDayBounds_ConvertsToUTC(t *testing.T) {
	tz := time.FixedZone("UTC-5", -5*60*60)
	start, _ := DayBounds(time.Date(2025, time.March, 14, 22, 0, 0, 0, tz))

	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", TruncateRunes("abc", 5))
	assert.Equal(t, "ab", TruncateRunes("abc", 2))
	assert.Equal(t, "cañ", TruncateRunes("cañón", 3))
	assert.Equal(t, "", TruncateRunes("abc", 0))
}
