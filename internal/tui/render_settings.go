package tui

import (
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/tui/styles"
)

// renderSettings renders the local configuration. The panel performs no
// backend load; values come from the resolved config file and environment.
func (m Model) renderSettings() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Settings"))
	b.WriteString("\n")

	rows := [][2]string{
		{"Backend URL", m.cfg.Server.BaseURL},
		{"Request timeout", fmt.Sprintf("%ds", m.cfg.Server.TimeoutSeconds)},
		{"Theme", m.cfg.TUI.Theme},
		{"Recent tasks", fmt.Sprintf("%d", m.cfg.TUI.RecentTasks)},
		{"Logging", fmt.Sprintf("%t", m.cfg.Logging.Enabled)},
		{"Log level", m.cfg.Logging.Level},
		{"Log directory", m.cfg.Logging.LogDir()},
		{"Config file", config.ConfigFile()},
	}

	for i, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s", styles.Muted.Render(fmt.Sprintf("%-16s", row[0])), row[1]))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render("Edit the config file and restart to apply changes"))

	return b.String()
}
