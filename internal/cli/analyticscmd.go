package cli

import (
	"fmt"

	"github.com/julianstephens/habitrack/internal/analytics"
	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/models"
)

type AnalyticsCmd struct {
	WeekOffset int `short:"o" help:"Week offset from the current week (negative for past)."`
	Top        int `help:"How many top performers to list." default:"3"`
}

func (c *AnalyticsCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits to analyze")
		return nil
	}

	now := ctx.Tracker.Now()
	overview := analytics.Week(habits, now, c.WeekOffset)

	label := "This week"
	switch {
	case c.WeekOffset < 0:
		label = fmt.Sprintf("%d week(s) ago", -c.WeekOffset)
	case c.WeekOffset > 0:
		label = fmt.Sprintf("%d week(s) ahead", c.WeekOffset)
	}
	fmt.Printf("%s (%s to %s)\n\n", label, overview.Days[0].Date, overview.Days[6].Date)

	for _, day := range overview.Days {
		d := dateutil.MustParse(day.Date)
		fmt.Printf("  %s %s  %s %3d%%  %d/%d\n",
			d.Format("Mon"), day.Date,
			progressBar(day.Percent, 10), day.Percent,
			day.Completed, day.Total)
	}

	fmt.Printf("\nAverage completion: %d%%  (best day %d%%, %d/%d total)\n",
		overview.AverageCompletion, overview.BestDayPercent,
		overview.TotalCompleted, overview.TotalTasks)

	totals := analytics.PriorityTotals(habits)
	fmt.Printf("\nCompletions by priority: high %d, medium %d, low %d\n",
		totals[models.PriorityHigh], totals[models.PriorityMedium], totals[models.PriorityLow])

	top := analytics.TopPerformers(habits, now, c.Top)
	if len(top) > 0 {
		fmt.Println("\nTop performers:")
		for i, h := range top {
			fmt.Printf("  %d. %-28s %d%%\n", i+1, h.Name, analytics.Progress(h, now))
		}
	}
	return nil
}
