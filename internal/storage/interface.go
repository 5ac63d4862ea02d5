package storage

import (
	"io"

	"github.com/julianstephens/habitrack/internal/models"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error

	// Daily notes
	GetNote(date string) (string, error)
	SaveNote(date, text string) error
	DeleteNote(date string) error
	GetAllNotes() (map[string]string, error)

	// Export writes the full serialized state.
	Export(w io.Writer) error

	// Utils
	GetConfigPath() string
}
