package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/models"
)

func newJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitrack.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return store
}

func sampleHabit(id string) models.Habit {
	return models.Habit{
		ID:        id,
		Name:      "Read",
		Category:  "study",
		Priority:  models.PriorityHigh,
		StartDate: "2026-01-01",
		GoalType:  models.GoalDaily,
		Completions: map[string]bool{
			"2026-01-02": true,
			"2026-01-03": true,
		},
		CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestJSONStore_InitRejectsExisting(t *testing.T) {
	store := newJSONStore(t)
	if err := store.Init(); err == nil {
		t.Error("second init should fail")
	}
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "absent.json"))
	err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("err = %v, want not-initialized error", err)
	}
}

func TestJSONStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitrack.json")
	if err := os.WriteFile(path, []byte("{nope"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("err = %v, want parse error", err)
	}

	// LoadEmpty gives a usable fresh state without touching the file
	store.LoadEmpty()
	habits, err := store.GetAllHabits()
	if err != nil || len(habits) != 0 {
		t.Errorf("after LoadEmpty: habits=%v err=%v", habits, err)
	}
}

func TestJSONStore_HabitRoundTrip(t *testing.T) {
	store := newJSONStore(t)
	habit := sampleHabit("h1")

	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// A second store instance must see the persisted habit
	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	got, err := reopened.GetHabit("h1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != habit.Name || got.Priority != habit.Priority {
		t.Errorf("got %+v, want %+v", got, habit)
	}
	if !got.Completions["2026-01-02"] || len(got.Completions) != 2 {
		t.Errorf("completions = %v", got.Completions)
	}
}

func TestJSONStore_UpdateUnknownHabit(t *testing.T) {
	store := newJSONStore(t)
	if err := store.UpdateHabit(sampleHabit("ghost")); err == nil {
		t.Error("updating unknown habit should fail")
	}
}

func TestJSONStore_DeleteHabit(t *testing.T) {
	store := newJSONStore(t)
	store.AddHabit(sampleHabit("h1"))

	if err := store.DeleteHabit("h1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.GetHabit("h1"); err == nil {
		t.Error("habit should be gone")
	}
	if err := store.DeleteHabit("h1"); err == nil {
		t.Error("double delete should fail")
	}
}

func TestJSONStore_Settings(t *testing.T) {
	store := newJSONStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}
	if settings.WeekStart != dateutil.WeekStartMonday {
		t.Errorf("default week start = %s, want monday", settings.WeekStart)
	}

	settings.WeekStart = dateutil.WeekStartSunday
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("save settings failed: %v", err)
	}

	reopened := NewJSONStore(store.GetConfigPath())
	reopened.Load()
	got, _ := reopened.GetSettings()
	if got.WeekStart != dateutil.WeekStartSunday {
		t.Errorf("persisted week start = %s, want sunday", got.WeekStart)
	}
}

func TestJSONStore_Notes(t *testing.T) {
	store := newJSONStore(t)

	if err := store.SaveNote("2026-01-05", "finished chapter 3"); err != nil {
		t.Fatalf("save note failed: %v", err)
	}
	note, err := store.GetNote("2026-01-05")
	if err != nil || note != "finished chapter 3" {
		t.Errorf("note = %q err = %v", note, err)
	}

	// Absent notes read as empty, not as errors
	note, err = store.GetNote("2026-01-06")
	if err != nil || note != "" {
		t.Errorf("absent note = %q err = %v", note, err)
	}

	if err := store.DeleteNote("2026-01-05"); err != nil {
		t.Fatalf("delete note failed: %v", err)
	}
	notes, _ := store.GetAllNotes()
	if len(notes) != 0 {
		t.Errorf("notes = %v, want empty", notes)
	}
}

func TestJSONStore_Export(t *testing.T) {
	store := newJSONStore(t)
	store.AddHabit(sampleHabit("h1"))
	store.SaveNote("2026-01-05", "note")

	var buf bytes.Buffer
	if err := store.Export(&buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var state State
	if err := json.Unmarshal(buf.Bytes(), &state); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(state.Habits) != 1 || state.Notes["2026-01-05"] != "note" {
		t.Errorf("exported state = %+v", state)
	}
}

func TestForPath(t *testing.T) {
	if _, ok := ForPath("/tmp/x.json").(*JSONStore); !ok {
		t.Error(".json should select the JSON store")
	}
	if _, ok := ForPath("/tmp/x.db").(*SQLiteStore); !ok {
		t.Error(".db should select the SQLite store")
	}
}
