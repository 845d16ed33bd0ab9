package tui

import (
	"strings"

	"github.com/taskdeck/taskdeck/internal/tui/styles"
)

// renderAgents renders the registered agent roster.
func (m Model) renderAgents() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Agents"))
	b.WriteString("\n")

	switch {
	case m.agents.Loading:
		b.WriteString(m.spin.View())
		b.WriteString(" Loading agents...")
	case m.agents.ErrText != "":
		b.WriteString(styles.ErrorMsg.Render(m.agents.ErrText))
	case len(m.agents.Agents) == 0:
		b.WriteString(styles.Muted.Render("No agents registered"))
	default:
		for i, agent := range m.agents.Agents {
			b.WriteString(styles.Primary.Render(agent.Name))
			b.WriteString("\n  ")
			b.WriteString(styles.Muted.Render(agent.Description))
			if i < len(m.agents.Agents)-1 {
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// renderTools renders the registered tool roster.
func (m Model) renderTools() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Tools"))
	b.WriteString("\n")

	switch {
	case m.tools.Loading:
		b.WriteString(m.spin.View())
		b.WriteString(" Loading tools...")
	case m.tools.ErrText != "":
		b.WriteString(styles.ErrorMsg.Render(m.tools.ErrText))
	case len(m.tools.Tools) == 0:
		b.WriteString(styles.Muted.Render("No tools registered"))
	default:
		for i, tool := range m.tools.Tools {
			b.WriteString(styles.Primary.Render(tool.Name))
			b.WriteString("\n  ")
			b.WriteString(styles.Muted.Render(tool.Description))
			if i < len(m.tools.Tools)-1 {
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
