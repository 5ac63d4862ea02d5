package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitrack/internal/models"
)

type JSONStore struct {
	path  string
	state *State
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.state = NewState()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitrack init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.state = &State{}
	if err := json.Unmarshal(data, s.state); err != nil {
		s.state = nil
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.state.Habits == nil {
		s.state.Habits = make(map[string]models.Habit)
	}
	if s.state.Notes == nil {
		s.state.Notes = make(map[string]string)
	}

	return nil
}

// LoadEmpty resets the store to a fresh in-memory state without touching
// the file. Used when persisted data is absent or unreadable; the next
// mutation writes the full state back out.
func (s *JSONStore) LoadEmpty() {
	s.state = NewState()
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.state == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.state.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.Settings = settings
	return s.save()
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.state.Habits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if s.state == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	habit, ok := s.state.Habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}

	return habit, nil
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	if s.state == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, 0, len(s.state.Habits))
	for _, habit := range s.state.Habits {
		habits = append(habits, habit)
	}

	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.state.Habits[habit.ID]; !ok {
		return fmt.Errorf("habit not found: %s", habit.ID)
	}

	s.state.Habits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) DeleteHabit(id string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.state.Habits[id]; !ok {
		return fmt.Errorf("habit not found: %s", id)
	}

	// Hard delete: the habit's completions go with it
	delete(s.state.Habits, id)
	return s.save()
}

func (s *JSONStore) GetNote(date string) (string, error) {
	if s.state == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	return s.state.Notes[date], nil
}

func (s *JSONStore) SaveNote(date, text string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.Notes[date] = text
	return s.save()
}

func (s *JSONStore) DeleteNote(date string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.state.Notes, date)
	return s.save()
}

func (s *JSONStore) GetAllNotes() (map[string]string, error) {
	if s.state == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	notes := make(map[string]string, len(s.state.Notes))
	for date, text := range s.state.Notes {
		notes[date] = text
	}
	return notes, nil
}

func (s *JSONStore) Export(w io.Writer) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.state)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
