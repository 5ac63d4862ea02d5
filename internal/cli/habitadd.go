package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/tracker"
	"github.com/julianstephens/habitrack/internal/validation"
)

type AddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Desc      string `short:"D" help:"Description."`
	Category  string `short:"c" help:"Category tag (e.g. subject)." default:"general"`
	Priority  string `short:"p" help:"Priority (high|medium|low)." default:"medium"`
	Color     string `help:"Display color (opaque to habitrack)."`
	Icon      string `help:"Display icon (opaque to habitrack)."`
	Start     string `short:"s" help:"Start date (YYYY-MM-DD, defaults to today)."`
	End       string `short:"e" help:"End date (YYYY-MM-DD); omit for open-ended."`
	Goal      string `short:"g" help:"Goal type (daily|weekly|total)." default:"daily"`
	GoalValue int    `short:"v" help:"Goal value (required for weekly/total goals)."`
	Reminder  bool   `help:"Enable reminders."`
}

func (c *AddCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("habit name is required")
	}
	if !models.Priority(c.Priority).Valid() {
		return fmt.Errorf("invalid priority: %s", c.Priority)
	}
	if !models.GoalType(c.Goal).Valid() {
		return fmt.Errorf("invalid goal type: %s", c.Goal)
	}
	return nil
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	params := tracker.CreateHabitParams{
		Name:            strings.TrimSpace(c.Name),
		Description:     c.Desc,
		Category:        c.Category,
		Priority:        models.Priority(c.Priority),
		Color:           c.Color,
		Icon:            c.Icon,
		StartDate:       c.Start,
		EndDate:         c.End,
		GoalType:        models.GoalType(c.Goal),
		GoalValue:       c.GoalValue,
		ReminderEnabled: c.Reminder,
	}

	// Dry-run the validator against the would-be habit so conflicts
	// surface before anything is persisted
	candidate := models.Habit{
		ID:        "pending",
		Name:      params.Name,
		Priority:  params.Priority,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		GoalType:  params.GoalType,
		GoalValue: params.GoalValue,
	}
	if candidate.StartDate == "" {
		candidate.StartDate = ctx.Tracker.Now().Format("2006-01-02")
	}
	if result := validation.New().ValidateHabit(candidate); result.HasConflicts() {
		for _, conflict := range result.Conflicts {
			fmt.Printf("  ✗ %s\n", conflict.Message)
		}
		return fmt.Errorf("habit has %d validation problem(s)", len(result.Conflicts))
	}

	habit, err := ctx.Tracker.CreateHabit(params)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}
