// Package msg defines the typed messages exchanged with the update loop and
// the command factories that produce them.
//
// The factories are pure: each returns a tea.Cmd closure that performs one
// backend call and re-enters the event loop as a message. All network I/O
// lives here so the update loop never blocks.
package msg

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/api"
)

// LoadStatus returns a command that fetches the backend health report.
func LoadStatus(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		status, err := client.Status(context.Background())
		return StatusLoadedMsg{Gen: gen, Status: status, Err: err}
	}
}

// LoadOverview returns a command that fetches the unbounded task collection
// for the dashboard reductions.
func LoadOverview(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		page, err := client.ListTasks(context.Background(), api.ListOptions{})
		return OverviewLoadedMsg{Gen: gen, Page: page, Err: err}
	}
}

// LoadTaskPage returns a command that fetches one page of the task listing
// with the given filters applied.
func LoadTaskPage(client *api.Client, gen, page, pageSize int, status, tag string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.ListTasks(context.Background(), api.ListOptions{
			Limit:  pageSize,
			Offset: (page - 1) * pageSize,
			Status: status,
			Tag:    tag,
		})
		return TaskPageLoadedMsg{Gen: gen, RequestedPage: page, Page: result, Err: err}
	}
}

// LoadTaskDetail returns the two commands of a detail load: task metadata
// and task results, issued concurrently. Both carry the same generation so
// the render can gate on the pair.
func LoadTaskDetail(client *api.Client, gen int, taskID string) tea.Cmd {
	task := func() tea.Msg {
		t, err := client.GetTask(context.Background(), taskID)
		return TaskLoadedMsg{Gen: gen, Task: t, Err: err}
	}
	results := func() tea.Msg {
		r, err := client.TaskResults(context.Background(), taskID)
		return TaskResultsLoadedMsg{Gen: gen, Results: r, Err: err}
	}
	return tea.Batch(task, results)
}

// SubmitTask returns a command that creates a task on the backend.
func SubmitTask(client *api.Client, description string) tea.Cmd {
	return func() tea.Msg {
		created, err := client.CreateTask(context.Background(), api.NewTask{
			Description: description,
			Priority:    0,
			Tags:        []string{},
		})
		return TaskCreatedMsg{Created: created, Err: err}
	}
}

// DeleteTask returns a command that removes a task from the backend.
func DeleteTask(client *api.Client, taskID string) tea.Cmd {
	return func() tea.Msg {
		err := client.DeleteTask(context.Background(), taskID)
		return TaskDeletedMsg{TaskID: taskID, Err: err}
	}
}

// LoadAgents returns a command that fetches the registered agents.
func LoadAgents(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		agents, err := client.Agents(context.Background())
		return AgentsLoadedMsg{Gen: gen, Agents: agents, Err: err}
	}
}

// LoadTools returns a command that fetches the registered tools.
func LoadTools(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		tools, err := client.Tools(context.Background())
		return ToolsLoadedMsg{Gen: gen, Tools: tools, Err: err}
	}
}
