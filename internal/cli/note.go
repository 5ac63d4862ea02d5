package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/habitrack/internal/dateutil"
)

type NoteCmd struct {
	Date string   `short:"d" help:"Date for the note (YYYY-MM-DD, defaults to today)."`
	Text []string `arg:"" optional:"" help:"Note text; omit to show, empty string to delete."`
	List bool     `short:"l" help:"List all notes."`
}

func (c *NoteCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	if c.List {
		notes, err := ctx.Store.GetAllNotes()
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Println("No notes")
			return nil
		}
		dates := make([]string, 0, len(notes))
		for date := range notes {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			fmt.Printf("%s: %s\n", date, notes[date])
		}
		return nil
	}

	date := c.Date
	if date == "" {
		date = dateutil.Format(ctx.Tracker.Now())
	} else if _, err := dateutil.Parse(date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	if len(c.Text) == 0 {
		note, err := ctx.Store.GetNote(date)
		if err != nil {
			return err
		}
		if note == "" {
			fmt.Printf("No note for %s\n", date)
		} else {
			fmt.Printf("%s: %s\n", date, note)
		}
		return nil
	}

	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if err := ctx.Tracker.SaveNote(date, text); err != nil {
		return err
	}
	if text == "" {
		fmt.Printf("Deleted note for %s\n", date)
	} else {
		fmt.Printf("Saved note for %s\n", date)
	}
	return nil
}
