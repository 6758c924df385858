// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// IsPastDate reports whether a YYYY-MM-DD date is before today. Unparseable
// dates are treated as past so stale records drop out of customer lookups.
func IsPastDate(date string, now time.Time) bool {
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return true
	}
	return d.Before(BeginningOfDay(now))
}
