package dashboard

import "time"

// Calendar helpers pinned to the location of the timestamp they receive.
// Callers control the timezone by choosing the location of "now"; nothing in
// this package reads ambient local time.

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay returns 23:59:59.999 of t's day, the inclusive upper boundary used
// by every window comparison.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, t.Location())
}

// weekStart returns the Monday of the week containing t, at start of day.
// Weeks run Monday to Sunday, so a Sunday belongs to the week that started
// six days earlier.
func weekStart(t time.Time) time.Time {
	offset := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		offset = -6
	}
	return startOfDay(t).AddDate(0, 0, offset)
}

func formatYMD(t time.Time) string {
	return t.Format("2006-01-02")
}

// within reports whether t falls in [from, to], inclusive on both ends.
func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
