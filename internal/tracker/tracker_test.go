package tracker

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/storage"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "habitrack.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local)
	return New(store).WithClock(func() time.Time { return now })
}

func TestCreateHabit_Defaults(t *testing.T) {
	trk := newTestTracker(t)

	habit, err := trk.CreateHabit(CreateHabitParams{Name: "Read"})
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	if habit.ID == "" {
		t.Error("expected generated ID")
	}
	if habit.Priority != models.PriorityMedium {
		t.Errorf("priority = %s, want medium", habit.Priority)
	}
	if habit.GoalType != models.GoalDaily {
		t.Errorf("goal type = %s, want daily", habit.GoalType)
	}
	if habit.StartDate != "2026-01-10" {
		t.Errorf("start date = %s, want today", habit.StartDate)
	}
	if habit.Completions == nil || len(habit.Completions) != 0 {
		t.Errorf("completions = %v, want empty map", habit.Completions)
	}

	stored, err := trk.Habit(habit.ID)
	if err != nil {
		t.Fatalf("habit not persisted: %v", err)
	}
	if stored.Name != "Read" {
		t.Errorf("stored name = %s, want Read", stored.Name)
	}
}

func TestToggleCompletion_RoundTrip(t *testing.T) {
	trk := newTestTracker(t)
	habit, _ := trk.CreateHabit(CreateHabitParams{Name: "Read", StartDate: "2026-01-01"})

	completed, err := trk.ToggleCompletion(habit.ID, "2026-01-05")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !completed {
		t.Error("first toggle should mark complete")
	}

	completed, err = trk.ToggleCompletion(habit.ID, "2026-01-05")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if completed {
		t.Error("second toggle should unmark")
	}

	// Untoggling removes the key entirely; no false entries survive
	stored, _ := trk.Habit(habit.ID)
	if _, exists := stored.Completions["2026-01-05"]; exists {
		t.Error("untoggled date should be absent from the completion set")
	}
}

func TestToggleCompletion_RejectsFutureDate(t *testing.T) {
	trk := newTestTracker(t)
	habit, _ := trk.CreateHabit(CreateHabitParams{Name: "Read", StartDate: "2026-01-01"})

	_, err := trk.ToggleCompletion(habit.ID, "2026-01-11")
	if !errors.Is(err, ErrFutureDate) {
		t.Errorf("err = %v, want ErrFutureDate", err)
	}

	stored, _ := trk.Habit(habit.ID)
	if len(stored.Completions) != 0 {
		t.Error("rejected toggle must not mutate the habit")
	}
}

func TestToggleCompletion_RejectsOutOfRange(t *testing.T) {
	trk := newTestTracker(t)
	habit, _ := trk.CreateHabit(CreateHabitParams{
		Name:      "Read",
		StartDate: "2026-01-05",
		EndDate:   "2026-01-08",
	})

	if _, err := trk.ToggleCompletion(habit.ID, "2026-01-04"); !errors.Is(err, ErrDateOutOfRange) {
		t.Errorf("before start: err = %v, want ErrDateOutOfRange", err)
	}
	if _, err := trk.ToggleCompletion(habit.ID, "2026-01-09"); !errors.Is(err, ErrDateOutOfRange) {
		t.Errorf("after end: err = %v, want ErrDateOutOfRange", err)
	}

	// Boundary dates are allowed
	if _, err := trk.ToggleCompletion(habit.ID, "2026-01-05"); err != nil {
		t.Errorf("start boundary rejected: %v", err)
	}
	if _, err := trk.ToggleCompletion(habit.ID, "2026-01-08"); err != nil {
		t.Errorf("end boundary rejected: %v", err)
	}
}

func TestToggleCompletion_FutureBeatsOutOfRange(t *testing.T) {
	// A date both future and out of range reports the future rejection
	trk := newTestTracker(t)
	habit, _ := trk.CreateHabit(CreateHabitParams{
		Name:      "Read",
		StartDate: "2026-01-01",
		EndDate:   "2026-01-08",
	})

	_, err := trk.ToggleCompletion(habit.ID, "2026-02-01")
	if !errors.Is(err, ErrFutureDate) {
		t.Errorf("err = %v, want ErrFutureDate", err)
	}
}

func TestToggleCompletion_UnknownHabit(t *testing.T) {
	trk := newTestTracker(t)

	_, err := trk.ToggleCompletion("nope", "2026-01-05")
	if !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("err = %v, want ErrHabitNotFound", err)
	}
}

func TestUpdateHabit(t *testing.T) {
	trk := newTestTracker(t)
	habit, _ := trk.CreateHabit(CreateHabitParams{Name: "Read", StartDate: "2026-01-01"})
	trk.ToggleCompletion(habit.ID, "2026-01-05")

	name := "Read daily"
	priority := models.PriorityHigh
	if err := trk.UpdateHabit(habit.ID, models.HabitUpdate{Name: &name, Priority: &priority}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, _ := trk.Habit(habit.ID)
	if stored.Name != "Read daily" || stored.Priority != models.PriorityHigh {
		t.Errorf("update not applied: %+v", stored)
	}
	if !stored.Completions["2026-01-05"] {
		t.Error("update must not touch completions")
	}

	if err := trk.UpdateHabit("nope", models.HabitUpdate{Name: &name}); !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("unknown id err = %v, want ErrHabitNotFound", err)
	}
}

func TestDeleteHabit(t *testing.T) {
	trk := newTestTracker(t)
	habit, _ := trk.CreateHabit(CreateHabitParams{Name: "Read"})

	if err := trk.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := trk.Habit(habit.ID); !errors.Is(err, ErrHabitNotFound) {
		t.Error("habit should be gone after delete")
	}

	if err := trk.DeleteHabit(habit.ID); !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("double delete err = %v, want ErrHabitNotFound", err)
	}
}

func TestResetData_KeepsNotesAndSettings(t *testing.T) {
	trk := newTestTracker(t)
	trk.CreateHabit(CreateHabitParams{Name: "Read"})
	trk.CreateHabit(CreateHabitParams{Name: "Run"})
	trk.SaveNote("2026-01-09", "productive day")

	if err := trk.ResetData(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	habits, _ := trk.Habits()
	if len(habits) != 0 {
		t.Errorf("%d habits survive reset, want 0", len(habits))
	}

	note, _ := trk.Store().GetNote("2026-01-09")
	if note != "productive day" {
		t.Error("notes must survive reset")
	}
}

func TestSaveNote_EmptyDeletes(t *testing.T) {
	trk := newTestTracker(t)

	trk.SaveNote("2026-01-09", "review chapter 4")
	if err := trk.SaveNote("2026-01-09", ""); err != nil {
		t.Fatalf("empty save failed: %v", err)
	}

	notes, _ := trk.Store().GetAllNotes()
	if _, exists := notes["2026-01-09"]; exists {
		t.Error("empty note text should delete the note")
	}
}
