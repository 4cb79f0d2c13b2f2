package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocalTimeToronto(t *testing.T) {
	// 05:15 UTC on March 2nd is 00:15 on March 2nd in Toronto (UTC-5).
	at := time.Date(2024, 3, 2, 5, 15, 0, 0, time.UTC)

	lt := ResolveLocalTime("America/Toronto", at, time.UTC)

	assert.Equal(t, 0, lt.Hour)
	assert.Equal(t, 15, lt.Minute)
	assert.Equal(t, "2024-03-02", lt.Date)
	assert.Equal(t, "2024-03-01", lt.PreviousDate())
}

func TestResolveLocalTimeAheadOfUTC(t *testing.T) {
	// 15:30 UTC is already the next day in Tokyo (UTC+9).
	at := time.Date(2024, 3, 2, 15, 30, 0, 0, time.UTC)

	lt := ResolveLocalTime("Asia/Tokyo", at, time.UTC)

	assert.Equal(t, 0, lt.Hour)
	assert.Equal(t, 30, lt.Minute)
	assert.Equal(t, "2024-03-03", lt.Date)
	assert.Equal(t, "2024-03-02", lt.PreviousDate())
}

func TestResolveLocalTimeInvalidZoneFallsBack(t *testing.T) {
	fallback, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	at := time.Date(2024, 3, 2, 5, 15, 0, 0, time.UTC)

	for _, zone := range []string{"", "Not/AZone", "garbage"} {
		lt := ResolveLocalTime(zone, at, fallback)
		assert.Equal(t, "2024-03-02", lt.Date, "zone %q", zone)
		assert.Equal(t, 0, lt.Hour, "zone %q", zone)
	}
}

func TestPreviousDateCrossesMonthBoundary(t *testing.T) {
	at := time.Date(2024, 3, 1, 0, 5, 0, 0, time.UTC)

	lt := ResolveLocalTime("UTC", at, time.UTC)

	assert.Equal(t, "2024-03-01", lt.Date)
	assert.Equal(t, "2024-02-29", lt.PreviousDate())
}
