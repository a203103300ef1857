// Package clock produces the timestamps written by the store.
package clock

import "time"

// ISOFormat is the ISO-8601 layout used at the storage boundary (millisecond precision, UTC).
const ISOFormat = "2006-01-02T15:04:05.000Z07:00"

// Now returns the current UTC time truncated to milliseconds so values survive a database round-trip.
func Now() time.Time {
	return Normalize(time.Now())
}

// Normalize converts t to UTC with millisecond precision.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// FormatISO renders t as an ISO-8601 string.
func FormatISO(t time.Time) string {
	return Normalize(t).Format(ISOFormat)
}
