package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/tui/styles"
)

// renderDashboard renders the system-status and task-statistics regions,
// the recent-task sublist, and the task-creation form. Each region keeps
// its prior content while a refresh is in flight or after a failed fetch.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Dashboard"))
	b.WriteString("\n")

	b.WriteString(m.renderSystemStatus())
	b.WriteString("\n\n")
	b.WriteString(m.renderTaskStats())
	b.WriteString("\n\n")
	b.WriteString(m.renderRecentTasks())
	b.WriteString("\n\n")
	b.WriteString(m.renderTaskForm())

	return b.String()
}

func (m Model) renderSystemStatus() string {
	var b strings.Builder

	b.WriteString(styles.Subtitle.Render("System Status"))
	if m.dash.Loading() {
		b.WriteString(" " + m.spin.View())
	}
	b.WriteString("\n")

	status := m.dash.Status
	if status == nil {
		b.WriteString(styles.Muted.Render("Waiting for backend..."))
		return b.String()
	}

	label := styles.Secondary.Render(status.Status)
	if status.Status != "ok" && status.Status != "running" {
		label = styles.Warning.Render(status.Status)
	}
	b.WriteString(fmt.Sprintf("Backend: %s  Version: %s\n", label, status.Version))
	b.WriteString(fmt.Sprintf("Tasks: %d  Results: %d  Uptime: %s",
		status.Tasks, status.Results, formatUptime(status.UptimeSeconds)))

	return b.String()
}

func (m Model) renderTaskStats() string {
	var b strings.Builder

	b.WriteString(styles.Subtitle.Render("Task Statistics"))
	b.WriteString("\n")

	if !m.dash.HasStats {
		b.WriteString(styles.Muted.Render("No statistics yet"))
		return b.String()
	}

	s := m.dash.Stats
	b.WriteString(fmt.Sprintf("Total: %d  Active: %d  Completed: %d  Success rate: %d%%",
		s.Total, s.Active, s.Completed, s.SuccessRate))

	return b.String()
}

func (m Model) renderRecentTasks() string {
	var b strings.Builder

	b.WriteString(styles.Subtitle.Render("Recent Tasks"))
	b.WriteString("\n")

	if len(m.dash.Recent) == 0 {
		b.WriteString(styles.Muted.Render("No tasks found"))
		return b.String()
	}

	for i, task := range m.dash.Recent {
		b.WriteString(renderTaskItem(task, false))
		if i < len(m.dash.Recent)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderTaskForm() string {
	var b strings.Builder

	b.WriteString(styles.Subtitle.Render("New Task"))
	b.WriteString("\n")
	b.WriteString(m.taskInput.View())

	if m.dash.Submitting {
		b.WriteString("\n")
		b.WriteString(m.spin.View() + " Submitting...")
	}
	if m.dash.FormError != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(m.dash.FormError))
	}
	if m.dash.FormNotice != "" {
		b.WriteString("\n")
		b.WriteString(styles.SuccessMsg.Render(m.dash.FormNotice))
	}

	return b.String()
}

func formatUptime(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	d := time.Duration(seconds) * time.Second
	return d.Truncate(time.Second).String()
}
