package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitrack/internal/cli"
	"github.com/julianstephens/habitrack/internal/storage"
	"github.com/julianstephens/habitrack/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	ConfigPath string `name:"config" help:"Store file path." type:"path" default:"~/.config/habitrack/habitrack.db"`

	Init      cli.InitCmd      `cmd:"" help:"Initialize habitrack storage."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add       cli.AddCmd       `cmd:"" help:"Add a new habit."`
	Edit      cli.EditCmd      `cmd:"" help:"Edit an existing habit."`
	Rm        cli.DeleteCmd    `cmd:"" help:"Delete a habit."`
	List      cli.ListCmd      `cmd:"" help:"List habits."`
	Done      cli.DoneCmd      `cmd:"" help:"Toggle a habit's completion for a day."`
	Stats     cli.StatsCmd     `cmd:"" help:"Show habit statistics."`
	Today     cli.TodayCmd     `cmd:"" help:"Show today's dashboard."`
	Calendar  cli.CalendarCmd  `cmd:"" help:"Show a month calendar."`
	Week      cli.WeekCmd      `cmd:"" help:"Show the current week."`
	Analytics cli.AnalyticsCmd `cmd:"" help:"Show weekly analytics."`
	Note      cli.NoteCmd      `cmd:"" help:"Manage daily notes."`
	Export    cli.ExportCmd    `cmd:"" help:"Export all data as JSON."`
	Backup    cli.BackupCmd    `cmd:"" help:"Manage store backups."`
	Config    cli.ConfigCmd    `cmd:"" help:"Show or change settings."`
	Reset     cli.ResetCmd     `cmd:"" help:"Delete all habit data."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Check the store and environment."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitrack"),
		kong.Description("Habit tracker and study-routine companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	store := storage.ForPath(CLI.ConfigPath)

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
