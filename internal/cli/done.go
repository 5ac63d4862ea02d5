package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/tracker"
)

type DoneCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
	Date  string `arg:"" optional:"" help:"Date to toggle (YYYY-MM-DD, defaults to today)."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = dateutil.Format(ctx.Tracker.Now())
	} else if _, err := dateutil.Parse(date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	completed, err := ctx.Tracker.ToggleCompletion(habit.ID, date)
	switch {
	case errors.Is(err, tracker.ErrFutureDate):
		fmt.Println("Cannot mark future dates as complete")
		return nil
	case errors.Is(err, tracker.ErrDateOutOfRange):
		// Outside the habit's active window; nothing to do
		return nil
	case err != nil:
		return err
	}

	if completed {
		fmt.Printf("✓ %s marked complete for %s\n", habit.Name, date)
	} else {
		fmt.Printf("· %s unmarked for %s\n", habit.Name, date)
	}
	return nil
}
