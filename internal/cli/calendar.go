package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitrack/internal/calendar"
	"github.com/julianstephens/habitrack/internal/dateutil"
)

type CalendarCmd struct {
	Month int    `short:"m" help:"Month number (1-12, defaults to current)."`
	Year  int    `short:"y" help:"Year (defaults to current)."`
	Habit string `help:"Show a single habit's calendar instead of the unified one."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	now := ctx.Tracker.Now()
	year, month := now.Year(), now.Month()
	if c.Year != 0 {
		year = c.Year
	}
	if c.Month != 0 {
		if c.Month < 1 || c.Month > 12 {
			return fmt.Errorf("invalid month: %d", c.Month)
		}
		month = time.Month(c.Month)
	}

	settings, err := ctx.Tracker.Settings()
	if err != nil {
		return err
	}
	ws := settings.WeekStart

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return err
	}

	fmt.Printf("%s %d\n\n", month, year)
	printHeaders(ws)

	if c.Habit != "" {
		habit, err := resolveHabit(ctx, c.Habit)
		if err != nil {
			return err
		}
		cells := calendar.HabitMonthGrid(habit, year, month, ws, now)
		for i, cell := range cells {
			if cell.Day == 0 {
				fmt.Print("     ")
			} else {
				mark := " "
				switch {
				case !cell.InRange:
					mark = " "
				case cell.Completed:
					mark = "✓"
				case cell.Future:
					mark = " "
				default:
					mark = "·"
				}
				fmt.Printf(" %2d%s ", cell.Day, mark)
			}
			if (i+1)%7 == 0 {
				fmt.Println()
			}
		}
		if len(cells)%7 != 0 {
			fmt.Println()
		}
		return nil
	}

	cells := calendar.MonthGrid(habits, year, month, ws, now)
	for i, cell := range cells {
		if cell.Status == calendar.StatusBlank {
			fmt.Print("     ")
		} else {
			fmt.Printf(" %2d%s ", cell.Day, statusMark(string(cell.Status)))
		}
		if (i+1)%7 == 0 {
			fmt.Println()
		}
	}
	if len(cells)%7 != 0 {
		fmt.Println()
	}

	fmt.Println("\n ✓ all done   ~ partial   · none   (blank: no habits or future)")
	return nil
}

func printHeaders(ws dateutil.WeekStart) {
	headers := dateutil.DayHeaders(ws)
	var b strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&b, " %-4s", h)
	}
	fmt.Println(b.String())
}

type WeekCmd struct {
	Offset int `short:"o" help:"Week offset from the current week (negative for past)."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	settings, err := ctx.Tracker.Settings()
	if err != nil {
		return err
	}

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return err
	}

	now := ctx.Tracker.Now()
	anchor := dateutil.Midnight(now).AddDate(0, 0, c.Offset*7)
	days := calendar.Week(habits, anchor, settings.WeekStart, now)

	for _, day := range days {
		d := dateutil.MustParse(day.Date)
		marker := " "
		if day.Date == dateutil.Format(now) {
			marker = "*"
		}
		fmt.Printf("%s %s (%s): ", marker, day.Date, d.Format("Mon"))
		if day.Total == 0 {
			fmt.Println("no habits active")
			continue
		}
		fmt.Printf("%d/%d", day.Completed, day.Total)
		var names []string
		for _, hd := range day.Habits {
			if hd.Completed {
				names = append(names, hd.Habit.Name)
			}
		}
		if len(names) > 0 {
			fmt.Printf("  (%s)", strings.Join(names, ", "))
		}
		fmt.Println()
	}
	return nil
}
