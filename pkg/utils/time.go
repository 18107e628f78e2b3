package utils

import "time"

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatISO8601 formats a time as an ISO-8601 / RFC3339 string
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
