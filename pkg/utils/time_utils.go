package utils

import "time"

// WholeDaysUntil returns the number of whole days between now and a later
// time, truncated toward zero. Negative when until is in the past.
func WholeDaysUntil(now, until time.Time) int {
	return int(until.Sub(now).Hours() / 24)
}
