package validation

import (
	"fmt"

	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/models"
)

type ConflictType string

const (
	ConflictEmptyName            ConflictType = "empty_name"
	ConflictInvalidPriority      ConflictType = "invalid_priority"
	ConflictInvalidGoalType      ConflictType = "invalid_goal_type"
	ConflictInvalidDate          ConflictType = "invalid_date"
	ConflictEndBeforeStart       ConflictType = "end_before_start"
	ConflictInvalidGoalValue     ConflictType = "invalid_goal_value"
	ConflictMissingGoalValue     ConflictType = "missing_goal_value"
	ConflictDuplicateHabitID     ConflictType = "duplicate_habit_id"
	ConflictCompletionOutOfRange ConflictType = "completion_out_of_range"
)

// Conflict describes one validation problem found in habit data.
type Conflict struct {
	Type    ConflictType
	Message string
	Items   []string // habit IDs involved
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (r ValidationResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateHabit checks a single habit's fields. The store itself never
// enforces these; validation happens at the boundary before mutation.
func (v *Validator) ValidateHabit(h models.Habit) ValidationResult {
	var result ValidationResult
	add := func(t ConflictType, msg string) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:    t,
			Message: msg,
			Items:   []string{h.ID},
		})
	}

	if h.Name == "" {
		add(ConflictEmptyName, "habit name is required")
	}

	if !h.Priority.Valid() {
		add(ConflictInvalidPriority, fmt.Sprintf("invalid priority: %q", h.Priority))
	}

	if !h.GoalType.Valid() {
		add(ConflictInvalidGoalType, fmt.Sprintf("invalid goal type: %q", h.GoalType))
	}

	start, startErr := dateutil.Parse(h.StartDate)
	if startErr != nil {
		add(ConflictInvalidDate, fmt.Sprintf("invalid start date: %q", h.StartDate))
	}
	if h.EndDate != "" {
		end, endErr := dateutil.Parse(h.EndDate)
		if endErr != nil {
			add(ConflictInvalidDate, fmt.Sprintf("invalid end date: %q", h.EndDate))
		} else if startErr == nil && end.Before(start) {
			add(ConflictEndBeforeStart, fmt.Sprintf("end date %s is before start date %s", h.EndDate, h.StartDate))
		}
	}

	switch h.GoalType {
	case models.GoalWeekly:
		if h.GoalValue == 0 {
			add(ConflictMissingGoalValue, "weekly goal requires a goal value")
		} else if h.GoalValue < 1 || h.GoalValue > 7 {
			add(ConflictInvalidGoalValue, fmt.Sprintf("weekly goal value must be 1-7, got %d", h.GoalValue))
		}
	case models.GoalTotal:
		if h.GoalValue == 0 {
			add(ConflictMissingGoalValue, "total goal requires a goal value")
		} else if h.GoalValue < 1 {
			add(ConflictInvalidGoalValue, fmt.Sprintf("total goal value must be positive, got %d", h.GoalValue))
		}
	}

	for date := range h.Completions {
		if !dateutil.InRange(date, h.StartDate, h.EndDate) {
			add(ConflictCompletionOutOfRange, fmt.Sprintf("completion %s outside active range", date))
		}
	}

	return result
}

// ValidateHabits checks every habit plus cross-habit invariants.
func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	var result ValidationResult

	seen := make(map[string]bool)
	for _, h := range habits {
		if seen[h.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictDuplicateHabitID,
				Message: fmt.Sprintf("duplicate habit ID: %s", h.ID),
				Items:   []string{h.ID},
			})
		}
		seen[h.ID] = true

		single := v.ValidateHabit(h)
		result.Conflicts = append(result.Conflicts, single.Conflicts...)
	}

	return result
}
