package tui

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitrack/internal/dateutil"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/tracker"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateAddHabit:
			return m.updateAddHabit(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateMain(msg)
		}
	}

	if m.state == StateAddHabit && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusLine = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.habits)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Left):
		if m.state == StateCalendar {
			m.calMonth--
			if m.calMonth < 1 {
				m.calMonth = 12
				m.calYear--
			}
		}

	case key.Matches(msg, m.keys.Right):
		if m.state == StateCalendar {
			m.calMonth++
			if m.calMonth > 12 {
				m.calMonth = 1
				m.calYear++
			}
		}

	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelectedToday()

	case key.Matches(msg, m.keys.Add):
		m.previousState = m.state
		m.state = StateAddHabit
		m.newHabitForm()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if len(m.habits) > 0 {
			m.previousState = m.state
			m.habitToDeleteID = m.habits[m.selected].ID
			m.state = StateConfirmDelete
		}
	}

	return m, nil
}

// toggleSelectedToday flips today's completion for the selected habit.
// Rejections become a status line instead of an error screen.
func (m *Model) toggleSelectedToday() {
	if len(m.habits) == 0 {
		return
	}
	habit := m.habits[m.selected]
	today := dateutil.Format(m.tracker.Now())

	completed, err := m.tracker.ToggleCompletion(habit.ID, today)
	switch {
	case errors.Is(err, tracker.ErrDateOutOfRange):
		m.statusLine = habit.Name + " is not active today"
		return
	case err != nil:
		m.statusLine = "toggle failed: " + err.Error()
		return
	}

	if completed {
		m.statusLine = "✓ " + habit.Name + " done for today"
	} else {
		m.statusLine = "· " + habit.Name + " unmarked"
	}
	m.reloadHabits()
}

func (m Model) updateAddHabit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		goalValue := 0
		if m.habitForm.GoalValue != "" {
			goalValue, _ = strconv.Atoi(m.habitForm.GoalValue)
		}
		_, err := m.tracker.CreateHabit(tracker.CreateHabitParams{
			Name:      m.habitForm.Name,
			Category:  m.habitForm.Category,
			Priority:  models.Priority(m.habitForm.Priority),
			GoalType:  models.GoalType(m.habitForm.GoalType),
			GoalValue: goalValue,
		})
		if err != nil {
			m.statusLine = "add failed: " + err.Error()
		} else {
			m.statusLine = "Added " + m.habitForm.Name
		}
		m.reloadHabits()
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.tracker.DeleteHabit(m.habitToDeleteID); err != nil {
			m.statusLine = "delete failed: " + err.Error()
		} else {
			m.statusLine = "Habit deleted"
		}
		m.reloadHabits()
		m.habitToDeleteID = ""
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.habitToDeleteID = ""
		m.state = m.previousState
	}
	return m, nil
}
