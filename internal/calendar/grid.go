package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/models"
)

// DayStatus classifies a grid cell for display styling. It is derived on
// every build and never stored.
type DayStatus string

const (
	StatusBlank      DayStatus = "blank" // leading cell before day 1
	StatusEmpty      DayStatus = "empty" // no habits active that day
	StatusFuture     DayStatus = "future"
	StatusCompleted  DayStatus = "completed" // all active habits done
	StatusPartial    DayStatus = "partial"   // some done
	StatusIncomplete DayStatus = "incomplete"
)

// Cell is one day of the unified month grid.
type Cell struct {
	Day       int // 0 for leading blanks
	Date      string
	Completed int
	Total     int
	Status    DayStatus
}

// MonthGrid builds the unified month view: per-day counts across all
// habits active on that day, preceded by the leading blanks the week
// start demands.
func MonthGrid(habits []models.Habit, year int, month time.Month, ws dateutil.WeekStart, now time.Time) []Cell {
	days := dateutil.DaysInMonth(year, month)
	offset := dateutil.FirstWeekdayOffset(year, month, ws)

	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{Status: StatusBlank})
	}

	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		cell := Cell{Day: day, Date: date}

		for _, h := range habits {
			if !dateutil.InRange(date, h.StartDate, h.EndDate) {
				continue
			}
			cell.Total++
			if h.Completions[date] {
				cell.Completed++
			}
		}

		switch {
		case cell.Total == 0:
			cell.Status = StatusEmpty
		case dateutil.IsFuture(date, now):
			cell.Status = StatusFuture
		case cell.Completed == cell.Total:
			cell.Status = StatusCompleted
		case cell.Completed > 0:
			cell.Status = StatusPartial
		default:
			cell.Status = StatusIncomplete
		}

		cells = append(cells, cell)
	}

	return cells
}

// HabitCell is one day of a single habit's month grid.
type HabitCell struct {
	Day       int // 0 for leading blanks
	Date      string
	InRange   bool
	Completed bool
	Future    bool
}

// HabitMonthGrid builds the per-habit month view used by the yearly
// habit calendar.
func HabitMonthGrid(h models.Habit, year int, month time.Month, ws dateutil.WeekStart, now time.Time) []HabitCell {
	days := dateutil.DaysInMonth(year, month)
	offset := dateutil.FirstWeekdayOffset(year, month, ws)

	cells := make([]HabitCell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, HabitCell{})
	}

	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		cells = append(cells, HabitCell{
			Day:       day,
			Date:      date,
			InRange:   dateutil.InRange(date, h.StartDate, h.EndDate),
			Completed: h.Completions[date],
			Future:    dateutil.IsFuture(date, now),
		})
	}

	return cells
}

// HabitDay pairs a habit with its completion state on a particular day.
type HabitDay struct {
	Habit     models.Habit
	Completed bool
}

// DayDetail lists the habits active on one date.
type DayDetail struct {
	Date      string
	Future    bool
	Habits    []HabitDay
	Completed int
	Total     int
}

// Day collects the habits active on a date with their completion flags.
func Day(habits []models.Habit, date string, now time.Time) DayDetail {
	detail := DayDetail{
		Date:   date,
		Future: dateutil.IsFuture(date, now),
	}

	for _, h := range habits {
		if !dateutil.InRange(date, h.StartDate, h.EndDate) {
			continue
		}
		done := h.Completions[date]
		detail.Habits = append(detail.Habits, HabitDay{Habit: h, Completed: done})
		detail.Total++
		if done {
			detail.Completed++
		}
	}

	return detail
}

// Week builds seven day details for the week containing anchor, honoring
// the configured week start.
func Week(habits []models.Habit, anchor time.Time, ws dateutil.WeekStart, now time.Time) [7]DayDetail {
	dates := dateutil.WeekDates(anchor, ws)

	var days [7]DayDetail
	for i, date := range dates {
		days[i] = Day(habits, date, now)
	}
	return days
}
