package validation

import (
	"testing"

	"github.com/julianstephens/habitrack/internal/models"
)

func validHabit(id string) models.Habit {
	return models.Habit{
		ID:        id,
		Name:      "Read",
		Priority:  models.PriorityMedium,
		StartDate: "2026-01-01",
		GoalType:  models.GoalDaily,
	}
}

func hasConflict(result ValidationResult, t ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == t {
			return true
		}
	}
	return false
}

func TestValidateHabit_Valid(t *testing.T) {
	result := New().ValidateHabit(validHabit("h1"))
	if result.HasConflicts() {
		t.Errorf("valid habit has conflicts: %+v", result.Conflicts)
	}
}

func TestValidateHabit_FieldProblems(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Habit)
		want   ConflictType
	}{
		{"empty name", func(h *models.Habit) { h.Name = "" }, ConflictEmptyName},
		{"bad priority", func(h *models.Habit) { h.Priority = "urgent" }, ConflictInvalidPriority},
		{"bad goal type", func(h *models.Habit) { h.GoalType = "hourly" }, ConflictInvalidGoalType},
		{"bad start date", func(h *models.Habit) { h.StartDate = "01/01/2026" }, ConflictInvalidDate},
		{"bad end date", func(h *models.Habit) { h.EndDate = "soon" }, ConflictInvalidDate},
		{"end before start", func(h *models.Habit) { h.EndDate = "2025-12-01" }, ConflictEndBeforeStart},
		{"weekly without value", func(h *models.Habit) { h.GoalType = models.GoalWeekly }, ConflictMissingGoalValue},
		{"weekly value too high", func(h *models.Habit) {
			h.GoalType = models.GoalWeekly
			h.GoalValue = 8
		}, ConflictInvalidGoalValue},
		{"total without value", func(h *models.Habit) { h.GoalType = models.GoalTotal }, ConflictMissingGoalValue},
		{"completion out of range", func(h *models.Habit) {
			h.Completions = map[string]bool{"2025-12-25": true}
		}, ConflictCompletionOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := validHabit("h1")
			tc.mutate(&h)
			result := New().ValidateHabit(h)
			if !hasConflict(result, tc.want) {
				t.Errorf("missing conflict %s, got %+v", tc.want, result.Conflicts)
			}
		})
	}
}

func TestValidateHabit_WeeklyBounds(t *testing.T) {
	h := validHabit("h1")
	h.GoalType = models.GoalWeekly

	for value := 1; value <= 7; value++ {
		h.GoalValue = value
		if result := New().ValidateHabit(h); result.HasConflicts() {
			t.Errorf("weekly value %d rejected: %+v", value, result.Conflicts)
		}
	}
}

func TestValidateHabit_SameDayRange(t *testing.T) {
	h := validHabit("h1")
	h.EndDate = h.StartDate
	if result := New().ValidateHabit(h); result.HasConflicts() {
		t.Errorf("single-day habit rejected: %+v", result.Conflicts)
	}
}

func TestValidateHabits_DuplicateIDs(t *testing.T) {
	habits := []models.Habit{validHabit("h1"), validHabit("h1"), validHabit("h2")}

	result := New().ValidateHabits(habits)
	if !hasConflict(result, ConflictDuplicateHabitID) {
		t.Errorf("duplicate IDs not flagged: %+v", result.Conflicts)
	}

	count := 0
	for _, c := range result.Conflicts {
		if c.Type == ConflictDuplicateHabitID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate flagged %d times, want once", count)
	}
}
