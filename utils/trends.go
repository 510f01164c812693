package utils

import "time"

// DayStarts returns windowDays+1 local-midnight boundaries, oldest
// first, so that [i, i+1) brackets one day of the trailing window
// ending today. windowDays must be >= 1.
func DayStarts(now time.Time, windowDays int) []time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	starts := make([]time.Time, windowDays+1)
	for i := 0; i <= windowDays; i++ {
		starts[i] = today.AddDate(0, 0, i-windowDays+1)
	}
	return starts
}
