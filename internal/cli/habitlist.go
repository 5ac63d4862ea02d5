package cli

import (
	"fmt"

	"github.com/julianstephens/habitrack/internal/analytics"
	"github.com/julianstephens/habitrack/internal/models"
)

type ListCmd struct {
	Sort     string `help:"Sort order (priority|progress|streak|name)." default:"priority" enum:"priority,progress,streak,name"`
	Priority string `short:"p" help:"Only show habits with this priority." enum:",high,medium,low" default:""`
	Category string `short:"c" help:"Only show habits in this category."`
	IDs      bool   `help:"Show full habit IDs."`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return err
	}

	filtered := habits[:0]
	for _, h := range habits {
		if c.Priority != "" && h.Priority != models.Priority(c.Priority) {
			continue
		}
		if c.Category != "" && h.Category != c.Category {
			continue
		}
		filtered = append(filtered, h)
	}

	if len(filtered) == 0 {
		fmt.Println("No habits found. Add one with 'habitrack add NAME'.")
		return nil
	}

	now := ctx.Tracker.Now()
	analytics.SortHabits(filtered, analytics.SortKey(c.Sort), now)

	fmt.Printf("Habits (%d):\n\n", len(filtered))
	for _, h := range filtered {
		stats := analytics.Stats(h, now)
		id := h.ID
		if !c.IDs && len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  [%s] %-28s %s %3d%%  streak %d (best %d)  %s\n",
			priorityBadge(h.Priority), h.Name,
			progressBar(stats.Progress, 10), stats.Progress,
			stats.CurrentStreak, stats.LongestStreak, id)
	}
	return nil
}
