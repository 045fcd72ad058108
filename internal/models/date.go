package models

import "time"

const dateKeyLayout = "2006-01-02"

// DateKey truncates a timestamp to calendar-day precision and returns the
// canonical key used for per-day buckets (completed dates, mood samples,
// stack days). Timezone handling is the caller's concern.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a calendar-day key back into a time.Time.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(dateKeyLayout, key)
}
