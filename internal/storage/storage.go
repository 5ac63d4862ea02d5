package storage

import (
	"strings"

	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/models"
)

type Settings struct {
	Theme     string             `json:"theme"`
	WeekStart dateutil.WeekStart `json:"week_start"`
	ViewMode  string             `json:"view_mode"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:     "dark",
		WeekStart: dateutil.WeekStartMonday,
		ViewMode:  "comfortable",
	}
}

// State is the single persisted record. Every mutating operation
// re-serializes it in full; there is no incremental persistence.
type State struct {
	Version  int                     `json:"version"`
	Settings Settings                `json:"settings"`
	Habits   map[string]models.Habit `json:"habits"`
	Notes    map[string]string       `json:"notes"`
}

func NewState() *State {
	return &State{
		Version:  1,
		Settings: DefaultSettings(),
		Habits:   make(map[string]models.Habit),
		Notes:    make(map[string]string),
	}
}

// ForPath selects a store implementation by file extension: .json gets
// the whole-file JSON store, everything else SQLite.
//
// Concurrency note:
//   - Providers are not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple habitrack processes against the same config path
//     at the same time is not supported and may lead to data loss.
func ForPath(path string) Provider {
	if strings.HasSuffix(path, ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
