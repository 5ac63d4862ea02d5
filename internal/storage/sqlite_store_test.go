package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitrack/internal/dateutil"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitrack.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_HabitRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	habit := sampleHabit("h1")

	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got, err := store.GetHabit("h1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != habit.Name || got.Priority != habit.Priority || got.GoalType != habit.GoalType {
		t.Errorf("got %+v, want %+v", got, habit)
	}
	if len(got.Completions) != 2 || !got.Completions["2026-01-03"] {
		t.Errorf("completions = %v", got.Completions)
	}
	if !got.CreatedAt.Equal(habit.CreatedAt) {
		t.Errorf("created at = %v, want %v", got.CreatedAt, habit.CreatedAt)
	}
}

func TestSQLiteStore_ReopenSeesData(t *testing.T) {
	store := newSQLiteStore(t)
	store.AddHabit(sampleHabit("h1"))
	store.Close()

	reopened := NewSQLiteStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	defer reopened.Close()

	habits, err := reopened.GetAllHabits()
	if err != nil || len(habits) != 1 {
		t.Fatalf("habits = %v err = %v", habits, err)
	}
}

func TestSQLiteStore_LoadMissingFile(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "absent.db"))
	if err := store.Load(); err == nil {
		t.Error("load of missing store should fail")
	}
}

func TestSQLiteStore_UpdateAndDelete(t *testing.T) {
	store := newSQLiteStore(t)
	habit := sampleHabit("h1")
	store.AddHabit(habit)

	habit.Name = "Read more"
	habit.Completions["2026-01-04"] = true
	if err := store.UpdateHabit(habit); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := store.GetHabit("h1")
	if got.Name != "Read more" || len(got.Completions) != 3 {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := store.UpdateHabit(sampleHabit("ghost")); err == nil {
		t.Error("updating unknown habit should fail")
	}

	if err := store.DeleteHabit("h1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.DeleteHabit("h1"); err == nil {
		t.Error("double delete should fail")
	}
}

func TestSQLiteStore_Settings(t *testing.T) {
	store := newSQLiteStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}
	if settings.Theme != "dark" || settings.WeekStart != dateutil.WeekStartMonday {
		t.Errorf("defaults = %+v", settings)
	}

	settings.WeekStart = dateutil.WeekStartSunday
	settings.Theme = "light"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("save settings failed: %v", err)
	}

	got, _ := store.GetSettings()
	if got.WeekStart != dateutil.WeekStartSunday || got.Theme != "light" {
		t.Errorf("settings = %+v", got)
	}
}

func TestSQLiteStore_Notes(t *testing.T) {
	store := newSQLiteStore(t)

	store.SaveNote("2026-01-05", "first")
	store.SaveNote("2026-01-05", "revised")

	note, err := store.GetNote("2026-01-05")
	if err != nil || note != "revised" {
		t.Errorf("note = %q err = %v", note, err)
	}

	note, err = store.GetNote("2026-01-06")
	if err != nil || note != "" {
		t.Errorf("absent note = %q err = %v", note, err)
	}

	store.DeleteNote("2026-01-05")
	notes, _ := store.GetAllNotes()
	if len(notes) != 0 {
		t.Errorf("notes = %v, want empty", notes)
	}
}

func TestSQLiteStore_ExportMatchesJSONShape(t *testing.T) {
	store := newSQLiteStore(t)
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
	if state.Habits["h1"].Name != "Read" || state.Notes["2026-01-05"] != "note" {
		t.Errorf("exported state = %+v", state)
	}

	// A JSON store can read the exported document directly
	path := filepath.Join(t.TempDir(), "imported.json")
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}
	js := NewJSONStore(path)
	if err := js.Load(); err != nil {
		t.Fatalf("JSON store rejects SQLite export: %v", err)
	}
	if _, err := js.GetHabit("h1"); err != nil {
		t.Errorf("imported habit missing: %v", err)
	}
}
