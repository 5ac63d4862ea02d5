package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS habits (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	description      TEXT NOT NULL DEFAULT '',
	category         TEXT NOT NULL DEFAULT '',
	priority         TEXT NOT NULL DEFAULT 'medium',
	color            TEXT NOT NULL DEFAULT '',
	icon             TEXT NOT NULL DEFAULT '',
	start_date       TEXT NOT NULL,
	end_date         TEXT NOT NULL DEFAULT '',
	goal_type        TEXT NOT NULL DEFAULT 'daily',
	goal_value       INTEGER NOT NULL DEFAULT 0,
	reminder_enabled INTEGER NOT NULL DEFAULT 0,
	completions      TEXT NOT NULL DEFAULT '{}',
	created_at       TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS notes (
	date TEXT PRIMARY KEY,
	text TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitrack init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// The schema is idempotent; applying it on load covers stores created
	// by older versions that predate the notes table.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "theme":
			settings.Theme = value
		case "week_start":
			settings.WeekStart = dateutil.WeekStart(value)
		case "view_mode":
			settings.ViewMode = value
		}
		count++
	}

	if count == 0 {
		return Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("theme", settings.Theme); err != nil {
		return err
	}
	if _, err := stmt.Exec("week_start", string(settings.WeekStart)); err != nil {
		return err
	}
	if _, err := stmt.Exec("view_mode", settings.ViewMode); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddHabit(habit models.Habit) error {
	return s.writeHabit(habit)
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, category, priority, color, icon,
		       start_date, end_date, goal_type, goal_value, reminder_enabled,
		       completions, created_at
		FROM habits WHERE id = ?`, id)

	habit, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, fmt.Errorf("habit not found: %s", id)
		}
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, category, priority, color, icon,
		       start_date, end_date, goal_type, goal_value, reminder_enabled,
		       completions, created_at
		FROM habits`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}

	return habits, rows.Err()
}

func (s *SQLiteStore) UpdateHabit(habit models.Habit) error {
	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM habits WHERE id = ?", habit.ID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("habit not found: %s", habit.ID)
	}
	return s.writeHabit(habit)
}

func (s *SQLiteStore) writeHabit(habit models.Habit) error {
	completionsJSON, err := json.Marshal(habit.Completions)
	if err != nil {
		return fmt.Errorf("failed to marshal completions: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO habits (
			id, name, description, category, priority, color, icon,
			start_date, end_date, goal_type, goal_value, reminder_enabled,
			completions, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Description, habit.Category, string(habit.Priority),
		habit.Color, habit.Icon, habit.StartDate, habit.EndDate, string(habit.GoalType),
		habit.GoalValue, habit.ReminderEnabled, string(completionsJSON),
		habit.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) DeleteHabit(id string) error {
	res, err := s.db.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("habit not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) GetNote(date string) (string, error) {
	var text string
	err := s.db.QueryRow("SELECT text FROM notes WHERE date = ?", date).Scan(&text)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return text, err
}

func (s *SQLiteStore) SaveNote(date, text string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO notes (date, text) VALUES (?, ?)", date, text)
	return err
}

func (s *SQLiteStore) DeleteNote(date string) error {
	_, err := s.db.Exec("DELETE FROM notes WHERE date = ?", date)
	return err
}

func (s *SQLiteStore) GetAllNotes() (map[string]string, error) {
	rows, err := s.db.Query("SELECT date, text FROM notes")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make(map[string]string)
	for rows.Next() {
		var date, text string
		if err := rows.Scan(&date, &text); err != nil {
			return nil, err
		}
		notes[date] = text
	}
	return notes, rows.Err()
}

// Export assembles the full state and writes it as the same JSON document
// the JSON store persists, so exports are interchangeable between backends.
func (s *SQLiteStore) Export(w io.Writer) error {
	state := NewState()

	settings, err := s.GetSettings()
	if err == nil {
		state.Settings = settings
	}

	habits, err := s.GetAllHabits()
	if err != nil {
		return err
	}
	for _, habit := range habits {
		state.Habits[habit.ID] = habit
	}

	notes, err := s.GetAllNotes()
	if err != nil {
		return err
	}
	state.Notes = notes

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var priority, goalType, completions, createdAt string

	err := row.Scan(
		&h.ID, &h.Name, &h.Description, &h.Category, &priority, &h.Color, &h.Icon,
		&h.StartDate, &h.EndDate, &goalType, &h.GoalValue, &h.ReminderEnabled,
		&completions, &createdAt,
	)
	if err != nil {
		return models.Habit{}, err
	}

	h.Priority = models.Priority(priority)
	h.GoalType = models.GoalType(goalType)

	h.Completions = make(map[string]bool)
	if completions != "" {
		if err := json.Unmarshal([]byte(completions), &h.Completions); err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse completions for %s: %w", h.ID, err)
		}
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		h.CreatedAt = t
	}

	return h, nil
}
