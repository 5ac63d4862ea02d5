package calendar

import (
	"testing"
	"time"

	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/models"
)

func fixedNow(date string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		panic(err)
	}
	return t.Add(10 * time.Hour)
}

func gridHabit(id, start, end string, completions ...string) models.Habit {
	h := models.Habit{
		ID:          id,
		Name:        id,
		Priority:    models.PriorityMedium,
		StartDate:   start,
		EndDate:     end,
		GoalType:    models.GoalDaily,
		Completions: make(map[string]bool),
	}
	for _, date := range completions {
		h.Completions[date] = true
	}
	return h
}

func cellFor(cells []Cell, day int) Cell {
	for _, c := range cells {
		if c.Day == day {
			return c
		}
	}
	return Cell{}
}

func TestMonthGrid_LeadingBlanks(t *testing.T) {
	// January 2026 starts on a Thursday
	now := fixedNow("2026-01-10")

	mon := MonthGrid(nil, 2026, time.January, dateutil.WeekStartMonday, now)
	if len(mon) != 3+31 {
		t.Fatalf("monday grid has %d cells, want 34", len(mon))
	}
	for i := 0; i < 3; i++ {
		if mon[i].Status != StatusBlank {
			t.Errorf("cell %d status = %s, want blank", i, mon[i].Status)
		}
	}
	if mon[3].Day != 1 {
		t.Errorf("first day cell = %d, want 1", mon[3].Day)
	}

	sun := MonthGrid(nil, 2026, time.January, dateutil.WeekStartSunday, now)
	if len(sun) != 4+31 {
		t.Fatalf("sunday grid has %d cells, want 35", len(sun))
	}
}

func TestMonthGrid_StatusClassification(t *testing.T) {
	h1 := gridHabit("a", "2026-01-05", "2026-01-20", "2026-01-06", "2026-01-07")
	h2 := gridHabit("b", "2026-01-05", "2026-01-20", "2026-01-07")
	now := fixedNow("2026-01-10")

	cells := MonthGrid([]models.Habit{h1, h2}, 2026, time.January, dateutil.WeekStartMonday, now)

	cases := []struct {
		day  int
		want DayStatus
	}{
		{2, StatusEmpty},      // before both habits start
		{6, StatusPartial},    // one of two done
		{7, StatusCompleted},  // both done
		{8, StatusIncomplete}, // past, none done
		{11, StatusFuture},    // active but after today
		{25, StatusEmpty},     // after both habits end
	}

	for _, tc := range cases {
		if got := cellFor(cells, tc.day); got.Status != tc.want {
			t.Errorf("day %d status = %s, want %s", tc.day, got.Status, tc.want)
		}
	}
}

func TestMonthGrid_EmptyBeatsFuture(t *testing.T) {
	// A future day with no active habits reads as empty, not future
	h := gridHabit("a", "2026-01-01", "2026-01-10")
	now := fixedNow("2026-01-05")

	cells := MonthGrid([]models.Habit{h}, 2026, time.January, dateutil.WeekStartMonday, now)
	if got := cellFor(cells, 15); got.Status != StatusEmpty {
		t.Errorf("day 15 status = %s, want empty", got.Status)
	}
}

func TestHabitMonthGrid(t *testing.T) {
	h := gridHabit("a", "2026-01-05", "2026-01-20", "2026-01-06")
	now := fixedNow("2026-01-10")

	cells := HabitMonthGrid(h, 2026, time.January, dateutil.WeekStartMonday, now)
	if len(cells) != 3+31 {
		t.Fatalf("grid has %d cells, want 34", len(cells))
	}

	var day6, day2, day12 HabitCell
	for _, c := range cells {
		switch c.Day {
		case 6:
			day6 = c
		case 2:
			day2 = c
		case 12:
			day12 = c
		}
	}

	if !day6.InRange || !day6.Completed {
		t.Errorf("day 6 = %+v, want in range and completed", day6)
	}
	if day2.InRange {
		t.Error("day 2 should be out of range")
	}
	if !day12.Future || day12.Completed {
		t.Errorf("day 12 = %+v, want future and not completed", day12)
	}
}

func TestDay(t *testing.T) {
	h1 := gridHabit("a", "2026-01-01", "", "2026-01-08")
	h2 := gridHabit("b", "2026-01-01", "")
	h3 := gridHabit("c", "2026-02-01", "")
	now := fixedNow("2026-01-10")

	detail := Day([]models.Habit{h1, h2, h3}, "2026-01-08", now)
	if detail.Total != 2 {
		t.Errorf("total = %d, want 2 (c not yet started)", detail.Total)
	}
	if detail.Completed != 1 {
		t.Errorf("completed = %d, want 1", detail.Completed)
	}
	if detail.Future {
		t.Error("past day flagged future")
	}

	future := Day([]models.Habit{h1}, "2026-01-15", now)
	if !future.Future {
		t.Error("future day not flagged")
	}
}

func TestWeek_HonorsWeekStart(t *testing.T) {
	h := gridHabit("a", "2026-01-01", "")
	now := fixedNow("2026-01-07") // Wednesday

	mon := Week([]models.Habit{h}, now, dateutil.WeekStartMonday, now)
	if mon[0].Date != "2026-01-05" {
		t.Errorf("monday week starts %s, want 2026-01-05", mon[0].Date)
	}

	sun := Week([]models.Habit{h}, now, dateutil.WeekStartSunday, now)
	if sun[0].Date != "2026-01-04" {
		t.Errorf("sunday week starts %s, want 2026-01-04", sun[0].Date)
	}
}
