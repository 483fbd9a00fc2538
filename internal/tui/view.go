package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// View renders the dashboard.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.mode {
	case ModeCreate:
		b.WriteString(m.renderCreateForm())
	case ModeConfirm:
		b.WriteString(m.renderConfirmDialog())
	case ModeAnalytics:
		b.WriteString(m.renderAnalytics())
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderNotification())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) renderHeader() string {
	title := m.styles.Title.Render("TaskDeck")
	if m.deps.Username != "" {
		title += m.styles.Counts.Render("  (" + m.deps.Username + ")")
	}

	counts := m.styles.Counts.Render(fmt.Sprintf(
		"%d tasks · %d pending · %d in progress · %d done",
		m.deps.Store.Len(),
		m.deps.Store.CountByStatus(domain.StatusPending),
		m.deps.Store.CountByStatus(domain.StatusInProgress),
		m.deps.Store.CountByStatus(domain.StatusCompleted),
	))

	line := title + "  " + counts
	if m.busy {
		line += " " + m.spin.View()
	}
	return line + "\n" + m.renderFilterLine()
}

func (m *Model) renderFilterLine() string {
	var parts []string
	if m.statusFilter != domain.StatusFilterAll {
		parts = append(parts, m.styles.FilterActive.Render("filter: "+m.statusFilter))
	}
	if m.mode == ModeSearch {
		parts = append(parts, m.searchInput.View())
	} else if q := m.searchInput.Value(); q != "" {
		parts = append(parts, m.styles.FilterActive.Render("search: "+q))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ") + "\n"
}

func (m *Model) renderList() string {
	if len(m.tasks) == 0 {
		if m.searchInput.Value() != "" || m.statusFilter != domain.StatusFilterAll {
			return m.styles.Counts.Render("No tasks match the current view.")
		}
		return m.styles.Counts.Render("No tasks yet. Press n to create one.")
	}

	now := time.Now()
	var b strings.Builder
	for i, t := range m.tasks {
		b.WriteString(m.renderTask(t, i == m.cursor, now))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderTask(t domain.Task, selected bool, now time.Time) string {
	check := "[ ]"
	if t.Status == domain.StatusCompleted {
		check = "[x]"
	}

	badge := m.styles.StatusBadge[string(t.Status)].Render(string(t.Status))

	due := ""
	if t.DueDate != nil {
		due = " due " + t.DueDate.Format("2006-01-02")
		if t.Overdue(now) {
			due = m.styles.Overdue.Render(due + " (overdue)")
		}
	}

	line := fmt.Sprintf("%s #%d %s", check, t.ID, t.Title)

	style := m.styles.Normal
	switch {
	case selected:
		style = m.styles.Selected
	case t.Status == domain.StatusCompleted:
		style = m.styles.Done
	}

	return style.Render(line) + " " + badge + m.styles.Counts.Render(" "+string(t.Priority)) + due
}

func (m *Model) renderCreateForm() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("New task"))
	b.WriteString("\n")
	b.WriteString(m.styles.InputLabel.Render("Title       ") + m.form.title.View() + "\n")
	b.WriteString(m.styles.InputLabel.Render("Description ") + m.form.description.View() + "\n")
	b.WriteString(m.styles.InputLabel.Render("Due date    ") + m.form.due.View() + "\n")

	prio := string(priorities[m.form.priority])
	if m.form.focus == 3 {
		prio = m.styles.FilterActive.Render("< " + prio + " >")
	}
	b.WriteString(m.styles.InputLabel.Render("Priority    ") + prio + "\n")

	if m.formErr != nil {
		b.WriteString(m.styles.ErrorText.Render(m.formErr.Error()) + "\n")
	}
	b.WriteString(m.styles.Counts.Render("enter: next/submit · tab: move · esc: cancel"))
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) renderConfirmDialog() string {
	p := m.pending
	var question string
	switch {
	case p.delete:
		question = fmt.Sprintf("Delete task #%d %q?", p.task.ID, p.task.Title)
	case p.task.Status == domain.StatusInProgress:
		question = fmt.Sprintf("Have you finished %q?", p.task.Title)
	default:
		question = fmt.Sprintf("Start working on %q?", p.task.Title)
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Confirm"))
	b.WriteString("\n")
	b.WriteString(question + "\n\n")
	b.WriteString(m.styles.Counts.Render("y/enter: yes · esc: no"))
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) renderAnalytics() string {
	if m.analytics == nil {
		return m.styles.Counts.Render("Loading analytics... " + m.spin.View())
	}
	a := m.analytics

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Analytics"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total %d · Completed %d · In progress %d · Pending %d · Overdue %d\n",
		a.TotalTasks, a.CompletedTasks, a.InProgressTasks, a.PendingTasks, a.OverdueTasks))
	b.WriteString(fmt.Sprintf("Completion rate %.1f%% · Productivity score %d\n",
		a.CompletionRate, a.ProductivityScore))
	if a.AvgCompletionHours > 0 {
		b.WriteString(fmt.Sprintf("Avg completion %.1fh (fastest %.1fh, slowest %.1fh)\n",
			a.AvgCompletionHours, a.FastestHours, a.SlowestHours))
	}

	if len(a.WeeklyPattern) > 0 {
		b.WriteString("\nWeekly pattern\n")
		for _, d := range a.WeeklyPattern {
			bar := strings.Repeat("█", min(d.Completed, 40))
			b.WriteString(fmt.Sprintf("  %-3s %s %d\n", d.Day, bar, d.Completed))
		}
	}

	if len(a.Insights) > 0 {
		b.WriteString("\nInsights\n")
		for _, line := range a.Insights {
			b.WriteString("  • " + line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Counts.Render("a/esc: back"))
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) renderNotification() string {
	if m.notification == nil {
		return ""
	}
	style, ok := m.styles.Notification[string(m.notification.Level)]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return style.Render(m.notification.Text)
}
