package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/storage"
	"github.com/julianstephens/habitrack/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
}

// load opens the store for a command. A missing store file is fatal and
// points at 'habitrack init'; a malformed JSON store is downgraded to a
// warning and the session starts empty, per the load-tolerance rules.
func (ctx *Context) load() error {
	err := ctx.Store.Load()
	if err == nil {
		return nil
	}

	if js, ok := ctx.Store.(*storage.JSONStore); ok && strings.Contains(err.Error(), "failed to parse") {
		fmt.Fprintf(os.Stderr, "Warning: %v; starting with empty data\n", err)
		js.LoadEmpty()
		return nil
	}

	return err
}

// resolveHabit finds a habit by id, or by exact name when the name is
// unambiguous.
func resolveHabit(ctx *Context, ref string) (models.Habit, error) {
	if habit, err := ctx.Tracker.Habit(ref); err == nil {
		return habit, nil
	}

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return models.Habit{}, err
	}

	var matches []models.Habit
	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			matches = append(matches, h)
		}
	}

	switch len(matches) {
	case 0:
		return models.Habit{}, fmt.Errorf("no habit matching %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Habit{}, fmt.Errorf("habit name %q is ambiguous, use the ID", ref)
	}
}

func priorityBadge(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return "high"
	case models.PriorityMedium:
		return "med "
	case models.PriorityLow:
		return "low "
	default:
		return "?   "
	}
}

// progressBar renders a fixed-width ASCII progress bar for a percentage.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func statusMark(status string) string {
	switch status {
	case "completed":
		return "✓"
	case "partial":
		return "~"
	case "incomplete":
		return "·"
	case "future":
		return " "
	default:
		return " "
	}
}
