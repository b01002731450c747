package notes

import "time"

// Week boundary arithmetic. Weeks start Sunday 00:00:00 and end Saturday
// 23:59:59, in the location of the argument — no timezone conversion.

// StartOfWeek returns the most recent Sunday at 00:00:00 on or before now.
// A Sunday maps to its own midnight.
func StartOfWeek(now time.Time) time.Time {
	daysBack := int(now.Weekday())
	d := now.AddDate(0, 0, -daysBack)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
}

// EndOfWeek returns the upcoming Saturday at 23:59:59 on or after now.
// A Saturday maps to its own 23:59:59.
func EndOfWeek(now time.Time) time.Time {
	daysAhead := int(time.Saturday - now.Weekday())
	d := now.AddDate(0, 0, daysAhead)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, now.Location())
}

// InCurrentWeek reports whether date falls strictly between the current
// week's start and end boundaries.
func InCurrentWeek(date, now time.Time) bool {
	return date.After(StartOfWeek(now)) && date.Before(EndOfWeek(now))
}

// DaysRemainingInWeek returns the number of days until the next Sunday,
// 0 through 6. It is 0 exactly when now falls on a Sunday: the purge day
// counts as the boundary in both directions.
func DaysRemainingInWeek(now time.Time) int {
	return (7 - int(now.Weekday())) % 7
}
