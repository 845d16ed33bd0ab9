package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/tui/msg"
)

// Update routes messages to the active panel's state
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(message)
		return m, cmd

	case panelActivatedMsg:
		cmd := m.activate(message.panel)
		return m, cmd

	case msg.StatusLoadedMsg:
		return m.handleStatusLoaded(message)

	case msg.OverviewLoadedMsg:
		return m.handleOverviewLoaded(message)

	case msg.TaskPageLoadedMsg:
		return m.handleTaskPageLoaded(message)

	case msg.TaskLoadedMsg:
		return m.handleTaskLoaded(message)

	case msg.TaskResultsLoadedMsg:
		return m.handleTaskResultsLoaded(message)

	case msg.TaskCreatedMsg:
		return m.handleTaskCreated(message)

	case msg.TaskDeletedMsg:
		return m.handleTaskDeleted(message)

	case msg.AgentsLoadedMsg:
		if message.Gen != m.agents.Gen {
			return m, nil
		}
		m.agents.Loading = false
		if message.Err != nil {
			m.logger.WithPanel("agents").Warn("agents load failed", "error", message.Err)
			m.agents.ErrText = errors.UserMessage(message.Err, "Failed to load agents")
			return m, nil
		}
		m.agents.Agents = message.Agents
		m.agents.Loaded = true
		m.agents.ErrText = ""
		return m, nil

	case msg.ToolsLoadedMsg:
		if message.Gen != m.tools.Gen {
			return m, nil
		}
		m.tools.Loading = false
		if message.Err != nil {
			m.logger.WithPanel("tools").Warn("tools load failed", "error", message.Err)
			m.tools.ErrText = errors.UserMessage(message.Err, "Failed to load tools")
			return m, nil
		}
		m.tools.Tools = message.Tools
		m.tools.Loaded = true
		m.tools.ErrText = ""
		return m, nil
	}

	return m, nil
}

// handleKeypress dispatches a key event. Focused input fields consume
// keystrokes before the panel key maps see them.
func (m Model) handleKeypress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.taskInput.Focused() {
		return m.handleTaskInputKey(key)
	}
	if m.tagInput.Focused() {
		return m.handleTagInputKey(key)
	}

	switch key.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		idx := int(key.String()[0] - '1')
		cmd := m.activate(navPanels[idx])
		return m, cmd

	case "tab":
		cmd := m.activate(m.nextNavPanel(1))
		return m, cmd

	case "shift+tab":
		cmd := m.activate(m.nextNavPanel(-1))
		return m, cmd

	case "r":
		if m.active == PanelDetail {
			cmd := m.showDetail(m.detail.TaskID)
			return m, cmd
		}
		cmd := m.activate(m.active)
		return m, cmd
	}

	switch m.active {
	case PanelDashboard:
		return m.handleDashboardKey(key)
	case PanelTasks:
		return m.handleTasksKey(key)
	case PanelDetail:
		if key.String() == "esc" {
			m.back()
			return m, nil
		}
	}

	return m, nil
}

// nextNavPanel returns the navigable panel delta steps away from the active
// one. The detail panel is not in the cycle; cycling from it continues from
// the tasks panel it was opened from.
func (m *Model) nextNavPanel(delta int) Panel {
	current := m.active
	if current == PanelDetail {
		current = PanelTasks
	}
	for i, p := range navPanels {
		if p == current {
			n := len(navPanels)
			return navPanels[(i+delta+n)%n]
		}
	}
	return navPanels[0]
}

func (m Model) handleDashboardKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "n" {
		m.dash.FormError = ""
		m.dash.FormNotice = ""
		m.taskInput.Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) handleTasksKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.list.Selected > 0 {
			m.list.Selected--
		}
		return m, nil

	case "down", "j":
		if m.list.Selected < len(m.list.Tasks)-1 {
			m.list.Selected++
		}
		return m, nil

	case "left", "h":
		if m.list.PrevDisabled() {
			return m, nil
		}
		cmd := m.loadTasks(m.list.Page - 1)
		return m, cmd

	case "right", "l":
		if m.list.NextDisabled() {
			return m, nil
		}
		cmd := m.loadTasks(m.list.Page + 1)
		return m, cmd

	case "enter":
		task := m.list.SelectedTask()
		if task == nil {
			return m, nil
		}
		cmd := m.showDetail(task.ID)
		return m, cmd

	case "f":
		// Changing a filter resets pagination to the first page.
		m.list.Status = NextStatusFilter(m.list.Status)
		cmd := m.loadTasks(1)
		return m, cmd

	case "/":
		m.tagInput.SetValue(m.list.Tag)
		m.tagInput.Focus()
		return m, nil

	case "x":
		task := m.list.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.logger.WithPanel("tasks").Info("deleting task", "task_id", task.ID)
		return m, msg.DeleteTask(m.client, task.ID)
	}
	return m, nil
}

// handleTaskInputKey owns keystrokes while the task-creation field is
// focused.
func (m Model) handleTaskInputKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.taskInput.Blur()
		return m, nil

	case "enter":
		if m.dash.Submitting {
			return m, nil
		}
		description := strings.TrimSpace(m.taskInput.Value())
		if description == "" {
			m.dash.FormError = "Please enter a task description"
			return m, nil
		}
		m.dash.Submitting = true
		m.dash.FormError = ""
		m.dash.FormNotice = ""
		m.logger.WithPanel("dashboard").Info("submitting task", "length", len(description))
		return m, msg.SubmitTask(m.client, description)
	}

	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(key)
	return m, cmd
}

// handleTagInputKey owns keystrokes while the tag-filter field is focused.
func (m Model) handleTagInputKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.tagInput.Blur()
		return m, nil

	case "enter":
		m.tagInput.Blur()
		m.list.Tag = strings.TrimSpace(m.tagInput.Value())
		cmd := m.loadTasks(1)
		return m, cmd
	}

	var cmd tea.Cmd
	m.tagInput, cmd = m.tagInput.Update(key)
	return m, cmd
}

func (m Model) handleStatusLoaded(message msg.StatusLoadedMsg) (tea.Model, tea.Cmd) {
	if message.Gen != m.dash.Gen {
		m.logger.WithPanel("dashboard").Debug("discarding stale status response",
			"gen", message.Gen, "current", m.dash.Gen)
		return m, nil
	}
	m.dash.Pending--
	if message.Err != nil {
		// The status region keeps its prior render on failure.
		m.logger.WithPanel("dashboard").Warn("status load failed", "error", message.Err)
		return m, nil
	}
	m.dash.Status = message.Status
	return m, nil
}

func (m Model) handleOverviewLoaded(message msg.OverviewLoadedMsg) (tea.Model, tea.Cmd) {
	if message.Gen != m.dash.Gen {
		m.logger.WithPanel("dashboard").Debug("discarding stale overview response",
			"gen", message.Gen, "current", m.dash.Gen)
		return m, nil
	}
	m.dash.Pending--
	if message.Err != nil {
		m.logger.WithPanel("dashboard").Warn("overview load failed", "error", message.Err)
		return m, nil
	}
	m.dash.Stats = ComputeStats(message.Page.Tasks)
	m.dash.HasStats = true
	m.dash.Recent = RecentTasks(message.Page.Tasks, m.cfg.TUI.RecentTasks)
	return m, nil
}

func (m Model) handleTaskPageLoaded(message msg.TaskPageLoadedMsg) (tea.Model, tea.Cmd) {
	if message.Gen != m.list.Gen {
		m.logger.WithPanel("tasks").Debug("discarding stale page response",
			"gen", message.Gen, "current", m.list.Gen)
		return m, nil
	}
	m.list.Loading = false
	if message.Err != nil {
		// Previously rendered rows and pagination stay on screen; only an
		// error line is added.
		m.logger.WithPanel("tasks").Warn("task page load failed", "error", message.Err)
		m.list.ErrText = errors.UserMessage(message.Err, "Failed to load tasks")
		return m, nil
	}
	m.list.Apply(message.RequestedPage, message.Page)
	return m, nil
}

func (m Model) handleTaskLoaded(message msg.TaskLoadedMsg) (tea.Model, tea.Cmd) {
	if message.Gen != m.detail.Gen {
		m.logger.WithPanel("detail").Debug("discarding stale task response",
			"gen", message.Gen, "current", m.detail.Gen)
		return m, nil
	}
	m.detail.TaskDone = true
	m.detail.Task = message.Task
	m.detail.TaskErr = message.Err
	if message.Err != nil {
		m.logger.WithPanel("detail").Warn("task load failed",
			"task_id", m.detail.TaskID, "error", message.Err)
	}
	return m, nil
}

func (m Model) handleTaskResultsLoaded(message msg.TaskResultsLoadedMsg) (tea.Model, tea.Cmd) {
	if message.Gen != m.detail.Gen {
		m.logger.WithPanel("detail").Debug("discarding stale results response",
			"gen", message.Gen, "current", m.detail.Gen)
		return m, nil
	}
	m.detail.ResultsDone = true
	m.detail.Results = message.Results
	m.detail.ResultsErr = message.Err
	if message.Err != nil {
		m.logger.WithPanel("detail").Warn("results load failed",
			"task_id", m.detail.TaskID, "error", message.Err)
	}
	return m, nil
}

func (m Model) handleTaskCreated(message msg.TaskCreatedMsg) (tea.Model, tea.Cmd) {
	m.dash.Submitting = false
	if message.Err != nil {
		// The typed description is preserved so the user can retry.
		m.logger.WithPanel("dashboard").Warn("task creation failed", "error", message.Err)
		m.dash.FormError = errors.UserMessage(message.Err, "Failed to create task")
		return m, nil
	}
	m.logger.WithPanel("dashboard").Info("task created", "task_id", message.Created.TaskID)
	m.dash.FormNotice = "Task " + message.Created.TaskID + " submitted"
	m.taskInput.Reset()
	m.taskInput.Blur()
	cmd := m.refreshDashboard()
	return m, cmd
}

func (m Model) handleTaskDeleted(message msg.TaskDeletedMsg) (tea.Model, tea.Cmd) {
	if message.Err != nil {
		m.logger.WithPanel("tasks").Warn("task deletion failed",
			"task_id", message.TaskID, "error", message.Err)
		m.list.ErrText = errors.UserMessage(message.Err, "Failed to delete task")
		return m, nil
	}
	m.logger.WithPanel("tasks").Info("task deleted", "task_id", message.TaskID)
	cmd := m.loadTasks(m.list.Page)
	return m, cmd
}
