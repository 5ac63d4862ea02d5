package cli

import (
	"fmt"

	"github.com/julianstephens/habitrack/internal/dateutil"
)

type ConfigCmd struct {
	WeekStart string `help:"First day of the calendar week (monday|sunday)." enum:",monday,sunday" default:""`
	Theme     string `help:"Display theme name."`
	ViewMode  string `help:"Display density (comfortable|compact)." enum:",comfortable,compact" default:""`
	List      bool   `short:"l" help:"Show current settings."`
}

func (c *ConfigCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	settings, err := ctx.Tracker.Settings()
	if err != nil {
		return err
	}

	if c.WeekStart == "" && c.Theme == "" && c.ViewMode == "" {
		fmt.Printf("week-start: %s\n", settings.WeekStart)
		fmt.Printf("theme:      %s\n", settings.Theme)
		fmt.Printf("view-mode:  %s\n", settings.ViewMode)
		return nil
	}

	if c.WeekStart != "" {
		settings.WeekStart = dateutil.WeekStart(c.WeekStart)
	}
	if c.Theme != "" {
		settings.Theme = c.Theme
	}
	if c.ViewMode != "" {
		settings.ViewMode = c.ViewMode
	}

	if err := ctx.Tracker.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Println("Settings updated")
	return nil
}
