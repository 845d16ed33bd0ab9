package tui

import (
	"strings"

	"github.com/taskdeck/taskdeck/internal/tui/styles"
)

// renderHeader renders the application title and the panel tab bar.
// The detail panel highlights the tasks tab it was opened from.
func (m Model) renderHeader() string {
	var b strings.Builder

	b.WriteString(styles.Header.Width(m.width).Render("Taskdeck"))
	b.WriteString("\n")

	highlighted := m.active
	if highlighted == PanelDetail {
		highlighted = PanelTasks
	}

	tabs := make([]string, 0, len(navPanels))
	for _, p := range navPanels {
		if p == highlighted {
			tabs = append(tabs, styles.TabActive.Render(p.Title()))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(p.Title()))
		}
	}
	b.WriteString(strings.Join(tabs, " "))

	return b.String()
}
