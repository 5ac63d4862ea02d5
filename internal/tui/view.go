package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitrack/internal/analytics"
	"github.com/julianstephens/habitrack/internal/calendar"
	"github.com/julianstephens/habitrack/internal/dateutil"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StateHabits:
		content = m.viewHabits()
	case StateCalendar:
		content = m.viewCalendar()
	case StateAddHabit:
		if m.form != nil {
			content = m.form.View()
		}
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.statusLine != "" {
		parts = append(parts, mutedStyle.Render(m.statusLine))
	}
	parts = append(parts, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Habits", "Calendar"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	now := m.tracker.Now()
	summary := analytics.Dashboard(m.habits, now)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", now.Format("Monday, Jan 2 2006"))

	if summary.TotalToday == 0 {
		b.WriteString(mutedStyle.Render("No habits active today. Press 'a' to add one."))
		return docStyle.Render(b.String())
	}

	detail := calendar.Day(m.habits, dateutil.Format(now), now)
	for i, hd := range detail.Habits {
		line := "· " + hd.Habit.Name
		if hd.Completed {
			line = completedStyle.Render("✓ " + hd.Habit.Name)
		}
		if m.state == StateDashboard && i == m.selected {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	fmt.Fprintf(&b, "\n%d/%d done today (%d%%)\n", summary.CompletedToday, summary.TotalToday, summary.TodayPercent)
	fmt.Fprintf(&b, "Active streaks: %d · Week completions: %d\n", summary.ActiveStreaks, summary.WeekCompletions)
	if summary.BestHabit != nil {
		fmt.Fprintf(&b, "Best habit: %s (%d%%)\n", summary.BestHabit.Name, summary.BestProgress)
	}

	return docStyle.Render(b.String())
}

func (m Model) viewHabits() string {
	if len(m.habits) == 0 {
		return docStyle.Render(mutedStyle.Render("No habits yet. Press 'a' to add one."))
	}

	now := m.tracker.Now()
	var b strings.Builder
	for i, h := range m.habits {
		stats := analytics.Stats(h, now)
		cursor := "  "
		name := h.Name
		if i == m.selected {
			cursor = selectedStyle.Render("> ")
			name = selectedStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s%-28s %3d%%  streak %d (best %d)  [%s]\n",
			cursor, name, stats.Progress, stats.CurrentStreak, stats.LongestStreak, h.Priority)
	}
	return docStyle.Render(b.String())
}

func (m Model) viewCalendar() string {
	now := m.tracker.Now()
	cells := calendar.MonthGrid(m.habits, m.calYear, m.calMonth, m.weekStart, now)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n\n", m.calMonth, m.calYear)

	for _, h := range dateutil.DayHeaders(m.weekStart) {
		fmt.Fprintf(&b, " %-4s", h)
	}
	b.WriteString("\n")

	for i, cell := range cells {
		b.WriteString(m.renderCell(cell))
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	if len(cells)%7 != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n" + mutedStyle.Render("←/→ change month"))
	return docStyle.Render(b.String())
}

func (m Model) renderCell(cell calendar.Cell) string {
	if cell.Status == calendar.StatusBlank {
		return "     "
	}
	s := fmt.Sprintf(" %2d  ", cell.Day)
	switch cell.Status {
	case calendar.StatusCompleted:
		return completedStyle.Render(s)
	case calendar.StatusPartial:
		return partialStyle.Render(s)
	case calendar.StatusIncomplete:
		return incompleteStyle.Render(s)
	case calendar.StatusFuture, calendar.StatusEmpty:
		return futureStyle.Render(s)
	}
	return s
}

func (m Model) viewConfirmDelete() string {
	name := m.habitToDeleteID
	for _, h := range m.habits {
		if h.ID == m.habitToDeleteID {
			name = h.Name
			break
		}
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete habit %q and its history?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
