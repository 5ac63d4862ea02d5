package cli

import (
	"fmt"

	"github.com/julianstephens/habitrack/internal/analytics"
)

type StatsCmd struct {
	Habit string `arg:"" optional:"" help:"Habit ID or name; omit for all habits."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	now := ctx.Tracker.Now()

	if c.Habit != "" {
		habit, err := resolveHabit(ctx, c.Habit)
		if err != nil {
			return err
		}
		stats := analytics.Stats(habit, now)

		fmt.Printf("%s\n", habit.Name)
		if habit.Description != "" {
			fmt.Printf("  %s\n", habit.Description)
		}
		fmt.Printf("  Category:       %s\n", habit.Category)
		fmt.Printf("  Priority:       %s\n", habit.Priority)
		fmt.Printf("  Goal:           %s", habit.GoalType)
		if habit.GoalValue > 0 {
			fmt.Printf(" (%d)", habit.GoalValue)
		}
		fmt.Println()
		fmt.Printf("  Range:          %s → %s\n", habit.StartDate, orOpenEnded(habit.EndDate))
		fmt.Printf("  Progress:       %s %d%%\n", progressBar(stats.Progress, 20), stats.Progress)
		fmt.Printf("  Current streak: %d day(s)\n", stats.CurrentStreak)
		fmt.Printf("  Longest streak: %d day(s)\n", stats.LongestStreak)
		fmt.Printf("  Completions:    %d\n", stats.TotalCompletions)
		fmt.Printf("  Missed days:    %d\n", stats.MissedDays)
		return nil
	}

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits to report on")
		return nil
	}

	analytics.SortHabits(habits, analytics.SortByProgress, now)
	for _, h := range habits {
		stats := analytics.Stats(h, now)
		fmt.Printf("%-28s %s %3d%%  streak %d/%d  done %d  missed %d\n",
			h.Name, progressBar(stats.Progress, 10), stats.Progress,
			stats.CurrentStreak, stats.LongestStreak,
			stats.TotalCompletions, stats.MissedDays)
	}
	return nil
}

func orOpenEnded(end string) string {
	if end == "" {
		return "open-ended"
	}
	return end
}
