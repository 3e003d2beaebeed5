package dateutil

import (
	"time"
)

// AddMonths advances a date by whole calendar months, clamping the day to
// the last day of the target month (Jan 31 + 1 month = Feb 28/29 rather than
// the Mar 2/3 that AddDate would produce).
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	shifted := first.AddDate(0, months, 0)
	if last := DaysInMonth(shifted.Year(), shifted.Month()); day > last {
		day = last
	}
	return time.Date(shifted.Year(), shifted.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthsBetween returns the number of whole calendar months from one date to
// a later one. It is zero when 'to' is not after 'from'.
func MonthsBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
