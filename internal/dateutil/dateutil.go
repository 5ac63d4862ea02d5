package dateutil

import (
	"time"
)

// Layout is the canonical date key format used throughout the store.
const Layout = "2006-01-02"

// Horizon is the fixed end-of-tracking date used when a habit has no
// explicit end date.
const Horizon = "2026-12-31"

type WeekStart string

const (
	WeekStartMonday WeekStart = "monday"
	WeekStartSunday WeekStart = "sunday"
)

var dayHeaders = map[WeekStart][7]string{
	WeekStartMonday: {"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	WeekStartSunday: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

// Format renders a time as a YYYY-MM-DD key using its local calendar fields.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads a YYYY-MM-DD key and anchors it to local midnight.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.Local)
}

// MustParse is Parse for dates known to be well-formed; it panics otherwise.
func MustParse(s string) time.Time {
	t, err := Parse(s)
	if err != nil {
		panic("dateutil: malformed date " + s)
	}
	return t
}

// Midnight truncates a time to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsFuture reports whether date is strictly after now's local midnight.
// Malformed dates are treated as not future.
func IsFuture(date string, now time.Time) bool {
	d, err := Parse(date)
	if err != nil {
		return false
	}
	return d.After(Midnight(now))
}

// InRange reports whether start <= date <= end. An empty end falls back
// to the tracking horizon.
func InRange(date, start, end string) bool {
	d, err := Parse(date)
	if err != nil {
		return false
	}
	s, err := Parse(start)
	if err != nil {
		return false
	}
	if end == "" {
		end = Horizon
	}
	e, err := Parse(end)
	if err != nil {
		return false
	}
	return !d.Before(s) && !d.After(e)
}

// DaysBetween returns the number of civil days from a to b. The inputs'
// clock times and DST shifts are irrelevant; only calendar dates count.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// DaysInMonth returns the day count of the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset returns the number of leading blank cells a month
// grid needs before day 1, in [0,6]. Monday-start weeks remap Sunday to
// the last column.
func FirstWeekdayOffset(year int, month time.Month, ws WeekStart) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	if ws == WeekStartMonday {
		if wd == time.Sunday {
			return 6
		}
		return int(wd) - 1
	}
	return int(wd)
}

// WeekDates returns the seven date keys of the week containing anchor,
// beginning on the configured week start.
func WeekDates(anchor time.Time, ws WeekStart) [7]string {
	day := anchor.Weekday()
	var diff int
	if ws == WeekStartMonday {
		if day == time.Sunday {
			diff = -6
		} else {
			diff = 1 - int(day)
		}
	} else {
		diff = -int(day)
	}

	var dates [7]string
	start := Midnight(anchor).AddDate(0, 0, diff)
	for i := 0; i < 7; i++ {
		dates[i] = Format(start.AddDate(0, 0, i))
	}
	return dates
}

// DayHeaders returns the short weekday names in grid order.
func DayHeaders(ws WeekStart) [7]string {
	if h, ok := dayHeaders[ws]; ok {
		return h
	}
	return dayHeaders[WeekStartMonday]
}
