package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/storage"
)

// Expected validation rejections. Callers check these with errors.Is and
// decide what, if anything, to surface.
var (
	ErrHabitNotFound  = errors.New("habit not found")
	ErrFutureDate     = errors.New("cannot complete future dates")
	ErrDateOutOfRange = errors.New("date outside habit's active range")
)

// Tracker is the command surface over the habit store. It owns the
// mutation semantics: id assignment, field defaulting, and the
// completion-toggle guards.
type Tracker struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Tracker {
	return &Tracker{
		store: store,
		now:   time.Now,
	}
}

// WithClock replaces the tracker's clock. Tests use this to pin "today".
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

func (t *Tracker) Store() storage.Provider {
	return t.store
}

type CreateHabitParams struct {
	Name            string
	Description     string
	Category        string
	Priority        models.Priority
	Color           string
	Icon            string
	StartDate       string
	EndDate         string
	GoalType        models.GoalType
	GoalValue       int
	ReminderEnabled bool
}

// CreateHabit assigns a fresh id and stores the habit. Optional fields
// default silently; required-field validation is the caller's job.
func (t *Tracker) CreateHabit(params CreateHabitParams) (models.Habit, error) {
	if params.Priority == "" {
		params.Priority = models.PriorityMedium
	}
	if params.GoalType == "" {
		params.GoalType = models.GoalDaily
	}
	if params.StartDate == "" {
		params.StartDate = dateutil.Format(t.now())
	}

	habit := models.Habit{
		ID:              uuid.New().String(),
		Name:            params.Name,
		Description:     params.Description,
		Category:        params.Category,
		Priority:        params.Priority,
		Color:           params.Color,
		Icon:            params.Icon,
		StartDate:       params.StartDate,
		EndDate:         params.EndDate,
		GoalType:        params.GoalType,
		GoalValue:       params.GoalValue,
		ReminderEnabled: params.ReminderEnabled,
		Completions:     make(map[string]bool),
		CreatedAt:       t.now(),
	}

	if err := t.store.AddHabit(habit); err != nil {
		return habit, fmt.Errorf("failed to persist habit: %w", err)
	}
	return habit, nil
}

// UpdateHabit merges the carried fields into an existing habit. The id,
// completion set, and creation time cannot be changed through this path.
func (t *Tracker) UpdateHabit(id string, upd models.HabitUpdate) error {
	habit, err := t.store.GetHabit(id)
	if err != nil {
		return ErrHabitNotFound
	}

	upd.Apply(&habit)

	if err := t.store.UpdateHabit(habit); err != nil {
		return fmt.Errorf("failed to persist habit: %w", err)
	}
	return nil
}

// DeleteHabit removes a habit and its completions entirely.
func (t *Tracker) DeleteHabit(id string) error {
	if _, err := t.store.GetHabit(id); err != nil {
		return ErrHabitNotFound
	}
	return t.store.DeleteHabit(id)
}

// ToggleCompletion flips a habit's completion mark for a date and
// returns the new state. Rejections, in order of precedence: unknown
// habit, future date, date outside [start, end-or-horizon]. Only true
// entries are ever stored; untoggling removes the key.
func (t *Tracker) ToggleCompletion(id, date string) (bool, error) {
	habit, err := t.store.GetHabit(id)
	if err != nil {
		return false, ErrHabitNotFound
	}

	if dateutil.IsFuture(date, t.now()) {
		return false, ErrFutureDate
	}

	if !dateutil.InRange(date, habit.StartDate, habit.EndDate) {
		return false, ErrDateOutOfRange
	}

	if habit.Completions == nil {
		habit.Completions = make(map[string]bool)
	}

	completed := !habit.Completions[date]
	if completed {
		habit.Completions[date] = true
	} else {
		delete(habit.Completions, date)
	}

	if err := t.store.UpdateHabit(habit); err != nil {
		return completed, fmt.Errorf("failed to persist completion: %w", err)
	}
	return completed, nil
}

// SaveNote stores the daily note for a date; empty text deletes it.
func (t *Tracker) SaveNote(date, text string) error {
	if text == "" {
		return t.store.DeleteNote(date)
	}
	return t.store.SaveNote(date, text)
}

// ResetData deletes every habit. Notes and settings survive.
func (t *Tracker) ResetData() error {
	habits, err := t.store.GetAllHabits()
	if err != nil {
		return err
	}
	for _, habit := range habits {
		if err := t.store.DeleteHabit(habit.ID); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tracker) Habit(id string) (models.Habit, error) {
	habit, err := t.store.GetHabit(id)
	if err != nil {
		return models.Habit{}, ErrHabitNotFound
	}
	return habit, nil
}

func (t *Tracker) Habits() ([]models.Habit, error) {
	return t.store.GetAllHabits()
}

func (t *Tracker) Settings() (storage.Settings, error) {
	return t.store.GetSettings()
}

func (t *Tracker) SaveSettings(settings storage.Settings) error {
	return t.store.SaveSettings(settings)
}

func (t *Tracker) Now() time.Time {
	return t.now()
}
