package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the active panel between the header and the help bar
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	var content string
	switch m.active {
	case PanelDashboard:
		content = m.renderDashboard()
	case PanelTasks:
		content = m.renderTasks()
	case PanelDetail:
		content = m.renderDetail()
	case PanelAgents:
		content = m.renderAgents()
	case PanelTools:
		content = m.renderTools()
	case PanelSettings:
		content = m.renderSettings()
	}

	contentHeight := m.height - 6 // header + tab bar + help bar + margins
	if contentHeight > 0 {
		content = lipgloss.NewStyle().
			MaxHeight(contentHeight).
			Render(content)
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}
