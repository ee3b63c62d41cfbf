// Package biztime centralizes time handling so all business timestamps
// are produced in UTC with millisecond precision, matching the persisted
// unix-milli columns.
package biztime

import "time"

// NowUTC returns the current time in UTC truncated to millisecond precision.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// FromMillis converts a unix-milli timestamp to time.Time.
func FromMillis(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}

// ToMillis converts a time.Time to a unix-milli timestamp.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}
