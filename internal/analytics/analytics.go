package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/models"
)

// StreakInfo holds the current and longest run of consecutive completed days.
type StreakInfo struct {
	Current int
	Longest int
}

// Streak computes both streak values for a habit.
//
// The current streak walks backward day-by-day from today's local
// midnight and counts while each day is marked complete; the walk breaks
// on the first gap, so a habit not completed today has a current streak
// of 0. Range bounds are not consulted; plain calendar-day adjacency is
// what counts.
//
// The longest streak scans the sorted completion history: a run
// continues only while consecutive dates are exactly one day apart.
func Streak(h models.Habit, now time.Time) StreakInfo {
	dates := h.CompletionDates()
	if len(dates) == 0 {
		return StreakInfo{}
	}

	current := 0
	check := dateutil.Midnight(now)
	for h.Completions[dateutil.Format(check)] {
		current++
		check = check.AddDate(0, 0, -1)
	}

	longest := 0
	run := 1
	for i := 1; i < len(dates); i++ {
		prev := dateutil.MustParse(dates[i-1])
		curr := dateutil.MustParse(dates[i])
		if dateutil.DaysBetween(prev, curr) == 1 {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}

	return StreakInfo{Current: current, Longest: longest}
}

// Progress returns the habit's goal progress as a percentage in [0,100].
//
// daysPassed counts inclusively from the start date to today, clamped to
// the end date (or the tracking horizon) and floored at 1. The formula
// depends on the goal type:
//
//	daily:  completions / daysPassed
//	weekly: completions / (ceil(daysPassed/7) * goalValue)
//	total:  completions / goalValue
//
// Weekly and total goals without a goal value stay at 0.
func Progress(h models.Habit, now time.Time) int {
	totalDays := h.TotalCompletions()

	start, err := dateutil.Parse(h.StartDate)
	if err != nil {
		return 0
	}
	end := dateutil.MustParse(dateutil.Horizon)
	if h.EndDate != "" {
		e, err := dateutil.Parse(h.EndDate)
		if err != nil {
			return 0
		}
		end = e
	}

	today := dateutil.Midnight(now)
	actualEnd := end
	if today.Before(end) {
		actualEnd = today
	}

	daysPassed := dateutil.DaysBetween(start, actualEnd) + 1
	if daysPassed < 1 {
		daysPassed = 1
	}

	var percentage float64
	switch {
	case h.GoalType == models.GoalDaily:
		percentage = float64(totalDays) / float64(daysPassed) * 100
	case h.GoalType == models.GoalWeekly && h.GoalValue > 0:
		weeksPassed := (daysPassed + 6) / 7
		expected := weeksPassed * h.GoalValue
		percentage = float64(totalDays) / float64(expected) * 100
	case h.GoalType == models.GoalTotal && h.GoalValue > 0:
		percentage = float64(totalDays) / float64(h.GoalValue) * 100
	}

	rounded := int(math.Round(percentage))
	if rounded > 100 {
		return 100
	}
	return rounded
}

// HabitStats aggregates the per-habit numbers the views display.
type HabitStats struct {
	CurrentStreak    int
	LongestStreak    int
	TotalCompletions int
	MissedDays       int
	Progress         int
}

// Stats computes the aggregate stats for one habit. MissedDays counts
// from the start date through today without clamping to the end date,
// unlike Progress.
func Stats(h models.Habit, now time.Time) HabitStats {
	streak := Streak(h, now)
	total := h.TotalCompletions()

	missed := 0
	if start, err := dateutil.Parse(h.StartDate); err == nil {
		daysPassed := dateutil.DaysBetween(start, dateutil.Midnight(now)) + 1
		missed = daysPassed - total
		if missed < 0 {
			missed = 0
		}
	}

	return HabitStats{
		CurrentStreak:    streak.Current,
		LongestStreak:    streak.Longest,
		TotalCompletions: total,
		MissedDays:       missed,
		Progress:         Progress(h, now),
	}
}

// CategoryStats counts habits and their completions per category.
type CategoryStats struct {
	Count       int
	Completions int
}

// DashboardSummary is the at-a-glance aggregate across all habits.
type DashboardSummary struct {
	CompletedToday   int
	TotalToday       int
	RemainingToday   int
	TodayPercent     int
	TotalCompletions int
	ActiveStreaks    int
	TotalStreakDays  int
	WeekCompletions  int
	BestHabit        *models.Habit
	BestProgress     int
	Categories       map[string]CategoryStats
}

// Dashboard summarizes today's standing across all habits. The week
// completion count uses a Sunday-anchored window around today.
func Dashboard(habits []models.Habit, now time.Time) DashboardSummary {
	summary := DashboardSummary{
		Categories: make(map[string]CategoryStats),
	}

	today := dateutil.Format(now)
	for _, h := range habits {
		if dateutil.InRange(today, h.StartDate, h.EndDate) {
			summary.TotalToday++
			if h.Completions[today] {
				summary.CompletedToday++
			}
		}

		stats := Stats(h, now)
		summary.TotalCompletions += stats.TotalCompletions
		summary.TotalStreakDays += stats.CurrentStreak
		if stats.CurrentStreak > 0 {
			summary.ActiveStreaks++
		}

		cs := summary.Categories[h.Category]
		cs.Count++
		cs.Completions += stats.TotalCompletions
		summary.Categories[h.Category] = cs

		if summary.BestHabit == nil || stats.Progress > summary.BestProgress {
			habit := h
			summary.BestHabit = &habit
			summary.BestProgress = stats.Progress
		}
	}

	summary.RemainingToday = summary.TotalToday - summary.CompletedToday
	if summary.TotalToday > 0 {
		summary.TodayPercent = int(math.Round(float64(summary.CompletedToday) / float64(summary.TotalToday) * 100))
	}

	weekDates := dateutil.WeekDates(now, dateutil.WeekStartSunday)
	for _, date := range weekDates {
		for _, h := range habits {
			if h.Completions[date] {
				summary.WeekCompletions++
			}
		}
	}

	return summary
}

// DayCompletion is one day's completion counts within a week overview.
type DayCompletion struct {
	Date      string
	Completed int
	Total     int
	Percent   int
}

// WeekOverview summarizes one week for the analytics view. weekOffset
// shifts whole weeks into the past (negative) or future (positive).
// The window always anchors on Monday, independent of the configured
// week start; the other weekly views honor the setting instead.
type WeekOverview struct {
	Days              [7]DayCompletion
	AverageCompletion int
	TotalCompleted    int
	TotalTasks        int
	BestDayPercent    int
}

func Week(habits []models.Habit, now time.Time, weekOffset int) WeekOverview {
	anchor := dateutil.Midnight(now).AddDate(0, 0, weekOffset*7)
	dates := dateutil.WeekDates(anchor, dateutil.WeekStartMonday)

	var overview WeekOverview
	for i, date := range dates {
		day := DayCompletion{Date: date}
		for _, h := range habits {
			if !dateutil.InRange(date, h.StartDate, h.EndDate) {
				continue
			}
			day.Total++
			if h.Completions[date] {
				day.Completed++
			}
		}
		if day.Total > 0 {
			day.Percent = int(math.Round(float64(day.Completed) / float64(day.Total) * 100))
		}
		overview.Days[i] = day
		overview.TotalCompleted += day.Completed
		overview.TotalTasks += day.Total
		if day.Percent > overview.BestDayPercent {
			overview.BestDayPercent = day.Percent
		}
	}

	if overview.TotalTasks > 0 {
		overview.AverageCompletion = int(math.Round(float64(overview.TotalCompleted) / float64(overview.TotalTasks) * 100))
	}

	return overview
}

// PriorityTotals sums all-time completions per priority band.
func PriorityTotals(habits []models.Habit) map[models.Priority]int {
	totals := map[models.Priority]int{
		models.PriorityHigh:   0,
		models.PriorityMedium: 0,
		models.PriorityLow:    0,
	}
	for _, h := range habits {
		totals[h.Priority] += h.TotalCompletions()
	}
	return totals
}

// TopPerformers returns the n habits with the highest progress, best first.
func TopPerformers(habits []models.Habit, now time.Time, n int) []models.Habit {
	ranked := make([]models.Habit, len(habits))
	copy(ranked, habits)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Progress(ranked[i], now) > Progress(ranked[j], now)
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// SortKey selects the ordering for habit lists.
type SortKey string

const (
	SortByPriority SortKey = "priority"
	SortByProgress SortKey = "progress"
	SortByStreak   SortKey = "streak"
	SortByName     SortKey = "name"
)

// SortHabits orders habits in place by the given key.
func SortHabits(habits []models.Habit, by SortKey, now time.Time) {
	sort.SliceStable(habits, func(i, j int) bool {
		switch by {
		case SortByProgress:
			return Progress(habits[i], now) > Progress(habits[j], now)
		case SortByStreak:
			return Streak(habits[i], now).Current > Streak(habits[j], now).Current
		case SortByName:
			return habits[i].Name < habits[j].Name
		default:
			return habits[i].Priority.Rank() < habits[j].Priority.Rank()
		}
	})
}
