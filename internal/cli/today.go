package cli

import (
	"fmt"

	"github.com/julianstephens/habitrack/internal/analytics"
	"github.com/julianstephens/habitrack/internal/calendar"
	"github.com/julianstephens/habitrack/internal/dateutil"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return err
	}

	now := ctx.Tracker.Now()
	today := dateutil.Format(now)
	summary := analytics.Dashboard(habits, now)

	fmt.Printf("Today, %s\n\n", now.Format("Monday, Jan 2 2006"))

	if summary.TotalToday == 0 {
		fmt.Println("No habits active today")
		return nil
	}

	detail := calendar.Day(habits, today, now)
	for _, hd := range detail.Habits {
		mark := "·"
		if hd.Completed {
			mark = "✓"
		}
		fmt.Printf("  %s [%s] %s\n", mark, priorityBadge(hd.Habit.Priority), hd.Habit.Name)
	}

	fmt.Printf("\n%d/%d done (%d%%), %d remaining\n",
		summary.CompletedToday, summary.TotalToday, summary.TodayPercent, summary.RemainingToday)
	fmt.Printf("Active streaks: %d (%d total streak days), %d completions this week\n",
		summary.ActiveStreaks, summary.TotalStreakDays, summary.WeekCompletions)
	if summary.BestHabit != nil {
		fmt.Printf("Best habit: %s (%d%%)\n", summary.BestHabit.Name, summary.BestProgress)
	}

	if note, err := ctx.Store.GetNote(today); err == nil && note != "" {
		fmt.Printf("\nNote: %s\n", note)
	}

	return nil
}
