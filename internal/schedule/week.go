package schedule

import "time"

// WeekDates returns the Sunday-to-Saturday span containing ref, as 7
// consecutive calendar dates truncated to midnight in ref's location.
func WeekDates(ref time.Time) [7]time.Time {
	sunday := ref.AddDate(0, 0, -int(ref.Weekday()))
	sunday = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, ref.Location())

	var week [7]time.Time
	for i := range week {
		week[i] = sunday.AddDate(0, 0, i)
	}
	return week
}

// PrevWeek and NextWeek shift the reference date by exactly seven days;
// AddDate handles month and year rollover.
func PrevWeek(ref time.Time) time.Time { return ref.AddDate(0, 0, -7) }

func NextWeek(ref time.Time) time.Time { return ref.AddDate(0, 0, 7) }

// SameDay reports whether a and b fall on the same calendar date,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
