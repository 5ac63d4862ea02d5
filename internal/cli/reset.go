package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitrack/internal/backup"
)

type ResetCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits to reset")
		return nil
	}

	if !c.Force {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete all %d habit(s) and their completion history?", len(habits))).
			Description("A backup is taken first. Notes and settings are kept.").
			Value(&confirmed)

		if err := prompt.Run(); err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			fmt.Println("Reset cancelled")
			return nil
		}
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if path, err := mgr.CreateBackup(); err == nil {
		fmt.Printf("Created backup: %s\n", path)
	}

	if err := ctx.Tracker.ResetData(); err != nil {
		return err
	}

	fmt.Println("All habit data reset")
	return nil
}
