package tui

import (
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/tui/styles"
	"github.com/taskdeck/taskdeck/internal/util"
)

// renderDetail renders the task-detail panel. Nothing is assembled until
// both halves of the fan-out have completed; after that, whichever half
// succeeded is rendered and a failed half degrades to an error line.
func (m Model) renderDetail() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Task Detail"))
	b.WriteString("\n")

	if !m.detail.Ready() {
		b.WriteString(m.spin.View())
		b.WriteString(" Loading task details...")
		return b.String()
	}

	if m.detail.TaskErr != nil {
		b.WriteString(styles.ErrorMsg.Render(
			errors.UserMessage(m.detail.TaskErr, "Failed to load task details")))
	} else {
		b.WriteString(renderTaskMetadata(m.detail.Task))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render("Results"))
	b.WriteString("\n")

	// A failed results fetch renders like an empty one; the failure was
	// already logged when the response landed.
	if m.detail.ResultsErr != nil || len(m.detail.Results) == 0 {
		b.WriteString(styles.Muted.Render("No results available yet"))
	} else {
		b.WriteString(styles.ResultBlock.Render(m.detail.Results[0].Content))
	}

	return b.String()
}

func renderTaskMetadata(task *api.Task) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("ID: %s\n", task.ID))
	b.WriteString(fmt.Sprintf("Status: %s\n", styles.StatusBadge(task.DisplayStatus())))
	b.WriteString(fmt.Sprintf("Created: %s\n", util.FormatTimestamp(task.CreatedAt)))
	if task.Metadata.CompletedAt != nil {
		b.WriteString(fmt.Sprintf("Completed: %s\n", util.FormatTimestamp(*task.Metadata.CompletedAt)))
	}
	b.WriteString(fmt.Sprintf("Priority: %d\n", task.Priority))
	b.WriteString(fmt.Sprintf("Tags: %s\n", util.JoinTags(task.Tags)))
	b.WriteString(fmt.Sprintf("Description: %s", task.Description))

	if task.Metadata.Error != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render("Error: " + task.Metadata.Error))
	}

	if len(task.Metadata.Steps) > 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.Subtitle.Render("Execution Steps"))
		for i, step := range task.Metadata.Steps {
			b.WriteString("\n")
			b.WriteString(renderStep(i+1, step))
		}
	}

	return b.String()
}

// renderStep renders one execution step with its 1-based index. Absent
// fields fall back to placeholder values.
func renderStep(index int, step api.ExecutionStep) string {
	name := step.Name
	if name == "" {
		name = "Execution"
	}
	description := step.Description
	if description == "" {
		description = "No details available"
	}
	status := api.NormalizeStatus(step.Status)

	return fmt.Sprintf("%d. %s %s - %s", index, styles.StatusIcon(status), name, description)
}
