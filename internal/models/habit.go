package models

import (
	"sort"
	"time"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank of a priority; lower ranks sort first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type GoalType string

const (
	GoalDaily  GoalType = "daily"
	GoalWeekly GoalType = "weekly"
	GoalTotal  GoalType = "total"
)

func (g GoalType) Valid() bool {
	return g == GoalDaily || g == GoalWeekly || g == GoalTotal
}

// Habit represents a recurring practice tracked over a date range
type Habit struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Category        string   `json:"category"`
	Priority        Priority `json:"priority"`
	Color           string   `json:"color,omitempty"`
	Icon            string   `json:"icon,omitempty"`
	StartDate       string   `json:"start_date"`         // YYYY-MM-DD format
	EndDate         string   `json:"end_date,omitempty"` // empty means open-ended
	GoalType        GoalType `json:"goal_type"`
	GoalValue       int      `json:"goal_value,omitempty"` // 0 means unset
	ReminderEnabled bool     `json:"reminder_enabled"`

	// Completions is a sparse set keyed by YYYY-MM-DD date. Only true
	// entries are stored; untoggling a day removes the key.
	Completions map[string]bool `json:"completions"`

	CreatedAt time.Time `json:"created_at"`
}

// CompletionDates returns the completed dates sorted ascending.
func (h Habit) CompletionDates() []string {
	dates := make([]string, 0, len(h.Completions))
	for date, done := range h.Completions {
		if done {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}

// TotalCompletions counts the completed days across the habit's history.
func (h Habit) TotalCompletions() int {
	n := 0
	for _, done := range h.Completions {
		if done {
			n++
		}
	}
	return n
}

// HabitUpdate carries a partial update. Nil fields are left untouched.
// ID, Completions, and CreatedAt cannot be changed through an update.
type HabitUpdate struct {
	Name            *string
	Description     *string
	Category        *string
	Priority        *Priority
	Color           *string
	Icon            *string
	StartDate       *string
	EndDate         *string
	GoalType        *GoalType
	GoalValue       *int
	ReminderEnabled *bool
}

// Apply merges the carried fields into the habit.
func (u HabitUpdate) Apply(h *Habit) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Description != nil {
		h.Description = *u.Description
	}
	if u.Category != nil {
		h.Category = *u.Category
	}
	if u.Priority != nil {
		h.Priority = *u.Priority
	}
	if u.Color != nil {
		h.Color = *u.Color
	}
	if u.Icon != nil {
		h.Icon = *u.Icon
	}
	if u.StartDate != nil {
		h.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		h.EndDate = *u.EndDate
	}
	if u.GoalType != nil {
		h.GoalType = *u.GoalType
	}
	if u.GoalValue != nil {
		h.GoalValue = *u.GoalValue
	}
	if u.ReminderEnabled != nil {
		h.ReminderEnabled = *u.ReminderEnabled
	}
}
