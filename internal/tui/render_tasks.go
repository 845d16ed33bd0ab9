package tui

import (
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/tui/styles"
	"github.com/taskdeck/taskdeck/internal/util"
)

// renderTaskItem renders one task line: truncated description, creation
// timestamp, priority, and status badge. Shared between the task listing
// and the dashboard's recent-task sublist.
func renderTaskItem(task api.Task, selected bool) string {
	line := fmt.Sprintf("%-53s  %s  P%d  %s",
		util.Truncate(task.Description, descriptionMaxLen),
		util.FormatTimestamp(task.CreatedAt),
		task.Priority,
		styles.StatusBadge(task.DisplayStatus()),
	)
	if selected {
		return styles.RowSelected.Render("> " + line)
	}
	return "  " + line
}

// renderTasks renders the paginated task listing with its filter and
// pagination lines.
func (m Model) renderTasks() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Tasks"))
	b.WriteString("\n")
	b.WriteString(m.renderTaskFilters())
	b.WriteString("\n\n")

	if m.list.Loading && len(m.list.Tasks) == 0 {
		b.WriteString(m.spin.View())
		b.WriteString(" Loading tasks...")
		return b.String()
	}

	if len(m.list.Tasks) == 0 {
		b.WriteString(styles.Muted.Render("No tasks found"))
	} else {
		for i, task := range m.list.Tasks {
			b.WriteString(renderTaskItem(task, i == m.list.Selected))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderPagination())

	if m.list.ErrText != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(m.list.ErrText))
	}

	return b.String()
}

// renderTaskFilters renders the active status and tag filters, or the tag
// input while it is focused.
func (m Model) renderTaskFilters() string {
	if m.tagInput.Focused() {
		return "Tag: " + m.tagInput.View()
	}

	parts := []string{"Status: " + styles.Primary.Render(m.list.Status)}
	if m.list.Tag != "" {
		parts = append(parts, "Tag: "+styles.Primary.Render(m.list.Tag))
	}
	return styles.Subtitle.Render(strings.Join(parts, "  "))
}

// renderPagination renders the page indicator with its boundary-aware
// prev/next controls.
func (m Model) renderPagination() string {
	prev := styles.HelpKey.Render("← prev")
	if m.list.PrevDisabled() {
		prev = styles.Muted.Render("← prev")
	}
	next := styles.HelpKey.Render("next →")
	if m.list.NextDisabled() {
		next = styles.Muted.Render("next →")
	}

	indicator := fmt.Sprintf("Page %d of %d", m.list.Page, m.list.TotalPages)
	if m.list.Loading {
		indicator += " " + m.spin.View()
	}

	return fmt.Sprintf("%s  %s  %s", prev, indicator, next)
}
