package cli

import (
	"fmt"

	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/validation"
)

type EditCmd struct {
	Habit     string  `arg:"" help:"Habit ID or name."`
	Name      *string `help:"New name."`
	Desc      *string `short:"D" help:"New description."`
	Category  *string `short:"c" help:"New category."`
	Priority  *string `short:"p" help:"New priority (high|medium|low)."`
	Color     *string `help:"New display color."`
	Icon      *string `help:"New display icon."`
	Start     *string `short:"s" help:"New start date (YYYY-MM-DD)."`
	End       *string `short:"e" help:"New end date; empty string clears it."`
	Goal      *string `short:"g" help:"New goal type (daily|weekly|total)."`
	GoalValue *int    `short:"v" help:"New goal value."`
	Reminder  *bool   `help:"Enable or disable reminders."`
}

func (c *EditCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	upd := models.HabitUpdate{
		Name:            c.Name,
		Description:     c.Desc,
		Category:        c.Category,
		Color:           c.Color,
		Icon:            c.Icon,
		StartDate:       c.Start,
		EndDate:         c.End,
		GoalValue:       c.GoalValue,
		ReminderEnabled: c.Reminder,
	}
	if c.Priority != nil {
		p := models.Priority(*c.Priority)
		upd.Priority = &p
	}
	if c.Goal != nil {
		g := models.GoalType(*c.Goal)
		upd.GoalType = &g
	}

	// Validate the merged result, not the carrier, so cross-field rules
	// like end-before-start see the final values
	merged := habit
	upd.Apply(&merged)
	if result := validation.New().ValidateHabit(merged); result.HasConflicts() {
		for _, conflict := range result.Conflicts {
			fmt.Printf("  ✗ %s\n", conflict.Message)
		}
		return fmt.Errorf("edit would leave habit with %d validation problem(s)", len(result.Conflicts))
	}

	if err := ctx.Tracker.UpdateHabit(habit.ID, upd); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", merged.Name)
	return nil
}
