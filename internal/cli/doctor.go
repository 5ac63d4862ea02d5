package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitrack/internal/backup"
	"github.com/julianstephens/habitrack/internal/validation"
)

type DoctorCmd struct{}

// Run checks the store, the data, and the environment, and prints one
// line per check. Problems are reported but never fixed automatically.
func (c *DoctorCmd) Run(ctx *Context) error {
	ok := func(msg string, args ...any) { fmt.Printf("  ✓ "+msg+"\n", args...) }
	warn := func(msg string, args ...any) { fmt.Printf("  ! "+msg+"\n", args...) }

	fmt.Println("habitrack doctor")

	path := ctx.Store.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		warn("store missing at %s, run 'habitrack init'", path)
		return nil
	}
	ok("store present at %s", path)

	if err := ctx.load(); err != nil {
		warn("store failed to load: %v", err)
		return nil
	}
	ok("store loads")

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		warn("failed to read habits: %v", err)
	} else {
		result := validation.New().ValidateHabits(habits)
		if result.HasConflicts() {
			warn("%d validation problem(s) in %d habit(s):", len(result.Conflicts), len(habits))
			for _, conflict := range result.Conflicts {
				fmt.Printf("      %s (%s)\n", conflict.Message, strings.Join(conflict.Items, ", "))
			}
		} else {
			ok("%d habit(s), no validation problems", len(habits))
		}
	}

	mgr := backup.NewManager(path)
	backups, err := mgr.ListBackups()
	switch {
	case err != nil:
		warn("failed to list backups: %v", err)
	case len(backups) == 0:
		warn("no backups yet, consider 'habitrack backup create'")
	case time.Since(backups[0].Timestamp) > 7*24*time.Hour:
		warn("newest backup is from %s", backups[0].Timestamp.Format("2006-01-02"))
	default:
		ok("%d backup(s), newest from %s", len(backups), backups[0].Timestamp.Format("2006-01-02"))
	}

	zone, _ := ctx.Tracker.Now().Zone()
	ok("local timezone %s, today is %s", zone, ctx.Tracker.Now().Format("2006-01-02"))

	// Concurrent writers clobber each other on the whole-file JSON store,
	// so flag other running habitrack processes
	if procs, err := ps.Processes(); err == nil {
		others := 0
		for _, p := range procs {
			if strings.HasPrefix(p.Executable(), "habitrack") && p.Pid() != os.Getpid() {
				others++
			}
		}
		if others > 0 {
			warn("%d other habitrack process(es) running, avoid concurrent writes", others)
		} else {
			ok("no other habitrack processes running")
		}
	}

	return nil
}
