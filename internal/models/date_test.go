package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyTruncatesToCalendarDay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 6, 15, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, "2025-03-10", DateKey(morning))
	assert.Equal(t, DateKey(morning), DateKey(evening))
}

func TestParseDateKeyRoundTrips(t *testing.T) {
	parsed, err := ParseDateKey("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", DateKey(parsed))

	_, err = ParseDateKey("10/03/2025")
	assert.Error(t, err)
}

func TestGoalCompletionForDate(t *testing.T) {
	goal := Goal{CompletedDates: map[string]float64{"2025-03-10": 5}}

	assert.Equal(t, float64(5), goal.CompletionForDate(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, float64(0), goal.CompletionForDate(time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)))
}
