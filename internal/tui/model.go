package tui

import (
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/tracker"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateHabits
	StateCalendar
	StateAddHabit
	StateConfirmDelete
)

// tabCount is the number of cycling tabs; modal states sit outside the cycle.
const tabCount = 3

var (
	errEmptyName    = errors.New("name is required")
	errBadGoalValue = errors.New("goal value must be a number")
)

type HabitFormModel struct {
	Name      string
	Category  string
	Priority  string
	GoalType  string
	GoalValue string
}

type Model struct {
	tracker       *tracker.Tracker
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	habits   []models.Habit
	selected int

	weekStart dateutil.WeekStart

	// Calendar cursor; month navigation moves it whole months at a time
	calYear  int
	calMonth time.Month

	form      *huh.Form
	habitForm *HabitFormModel

	habitToDeleteID string

	statusLine string
	quitting   bool
	width      int
	height     int
}

func NewModel(trk *tracker.Tracker) Model {
	habits, err := trk.Habits()
	if err != nil {
		habits = []models.Habit{}
	}

	ws := dateutil.WeekStartMonday
	if settings, err := trk.Settings(); err == nil {
		ws = settings.WeekStart
	}

	now := trk.Now()
	return Model{
		tracker:   trk,
		state:     StateDashboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habits:    habits,
		weekStart: ws,
		calYear:   now.Year(),
		calMonth:  now.Month(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// reloadHabits refreshes the habit list after a mutation and keeps the
// selection in bounds.
func (m *Model) reloadHabits() {
	habits, err := m.tracker.Habits()
	if err != nil {
		return
	}
	m.habits = habits
	if m.selected >= len(m.habits) {
		m.selected = len(m.habits) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) newHabitForm() {
	m.habitForm = &HabitFormModel{
		Category: "general",
		Priority: string(models.PriorityMedium),
		GoalType: string(models.GoalDaily),
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&m.habitForm.Name).
				Validate(func(s string) error {
					if s == "" {
						return errEmptyName
					}
					return nil
				}),
			huh.NewInput().
				Title("Category").
				Value(&m.habitForm.Category),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("High", string(models.PriorityHigh)),
					huh.NewOption("Medium", string(models.PriorityMedium)),
					huh.NewOption("Low", string(models.PriorityLow)),
				).
				Value(&m.habitForm.Priority),
			huh.NewSelect[string]().
				Title("Goal").
				Options(
					huh.NewOption("Daily", string(models.GoalDaily)),
					huh.NewOption("Weekly", string(models.GoalWeekly)),
					huh.NewOption("Total", string(models.GoalTotal)),
				).
				Value(&m.habitForm.GoalType),
			huh.NewInput().
				Title("Goal value (weekly: days per week, total: target count)").
				Value(&m.habitForm.GoalValue).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := strconv.Atoi(s); err != nil {
						return errBadGoalValue
					}
					return nil
				}),
		),
	)
}
