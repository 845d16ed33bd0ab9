package tui

import (
	"strings"

	"github.com/taskdeck/taskdeck/internal/tui/styles"
)

// renderHelpBar renders the key bindings for the active panel.
func (m Model) renderHelpBar() string {
	if m.taskInput.Focused() || m.tagInput.Focused() {
		return styles.HelpBar.Render(renderBindings([][2]string{
			{"enter", "submit"},
			{"esc", "cancel"},
		}))
	}

	bindings := [][2]string{
		{"1-5", "panels"},
		{"tab", "next panel"},
		{"r", "reload"},
	}

	switch m.active {
	case PanelDashboard:
		bindings = append(bindings, [2]string{"n", "new task"})
	case PanelTasks:
		bindings = append(bindings,
			[2]string{"j/k", "move"},
			[2]string{"h/l", "page"},
			[2]string{"enter", "detail"},
			[2]string{"f", "status filter"},
			[2]string{"/", "tag filter"},
			[2]string{"x", "delete"},
		)
	case PanelDetail:
		bindings = append(bindings, [2]string{"esc", "back"})
	}

	bindings = append(bindings, [2]string{"q", "quit"})

	return styles.HelpBar.Render(renderBindings(bindings))
}

func renderBindings(bindings [][2]string) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, styles.HelpKey.Render(b[0])+" "+b[1])
	}
	return strings.Join(parts, "  •  ")
}
