package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logging"
	"github.com/taskdeck/taskdeck/internal/tui/msg"
	"github.com/taskdeck/taskdeck/internal/tui/styles"
)

// Model holds the console application state
type Model struct {
	// Core components
	client *api.Client
	cfg    *config.Config
	logger *logging.Logger

	// UI state
	active   Panel
	width    int
	height   int
	ready    bool
	quitting bool

	// nextGen numbers load requests so that responses from superseded
	// requests can be discarded on arrival.
	nextGen int

	spin spinner.Model

	// Per-panel view state
	dash   DashboardState
	list   ListState
	detail DetailState
	agents AgentsState
	tools  ToolsState

	// Input fields. At most one is focused at a time; while focused,
	// keystrokes go to the field instead of the panel key map.
	taskInput textinput.Model
	tagInput  textinput.Model
}

// NewModel creates a new console model
func NewModel(client *api.Client, cfg *config.Config, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger()
	}

	taskInput := textinput.New()
	taskInput.Placeholder = "Describe a new task..."
	taskInput.CharLimit = 500
	taskInput.Width = 60

	tagInput := textinput.New()
	tagInput.Placeholder = "Filter by tag..."
	tagInput.CharLimit = 100
	tagInput.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	return Model{
		client:    client,
		cfg:       cfg,
		logger:    logger,
		active:    PanelDashboard,
		nextGen:   1,
		spin:      sp,
		dash:      DashboardState{},
		list:      NewListState(),
		taskInput: taskInput,
		tagInput:  tagInput,
	}
}

// Init performs the initial dashboard load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, func() tea.Msg { return panelActivatedMsg{panel: PanelDashboard} })
}

// bumpGen allocates the next request generation.
func (m *Model) bumpGen() int {
	gen := m.nextGen
	m.nextGen++
	return gen
}

// typing reports whether an input field currently owns the keyboard.
func (m *Model) typing() bool {
	return m.taskInput.Focused() || m.tagInput.Focused()
}

// activate switches to a panel and issues its load exactly once. Switching
// to the settings panel performs no load; it renders local configuration.
func (m *Model) activate(p Panel) tea.Cmd {
	m.active = p
	m.taskInput.Blur()
	m.tagInput.Blur()

	switch p {
	case PanelDashboard:
		return m.refreshDashboard()
	case PanelTasks:
		return m.loadTasks(m.list.Page)
	case PanelAgents:
		gen := m.bumpGen()
		m.agents.Gen = gen
		m.agents.Loading = true
		m.logger.WithPanel("agents").Debug("loading agents", "gen", gen)
		return msg.LoadAgents(m.client, gen)
	case PanelTools:
		gen := m.bumpGen()
		m.tools.Gen = gen
		m.tools.Loading = true
		m.logger.WithPanel("tools").Debug("loading tools", "gen", gen)
		return msg.LoadTools(m.client, gen)
	default:
		return nil
	}
}

// refreshDashboard issues the dashboard's two independent fetches under a
// fresh generation.
func (m *Model) refreshDashboard() tea.Cmd {
	gen := m.bumpGen()
	m.dash.Gen = gen
	m.dash.Pending = 2
	m.logger.WithPanel("dashboard").Debug("refreshing dashboard", "gen", gen)
	return tea.Batch(
		msg.LoadStatus(m.client, gen),
		msg.LoadOverview(m.client, gen),
	)
}

// loadTasks issues a task-page load for the given page under the current
// filters.
func (m *Model) loadTasks(page int) tea.Cmd {
	gen := m.bumpGen()
	m.list.Gen = gen
	m.list.Loading = true
	m.logger.WithPanel("tasks").Debug("loading task page",
		"gen", gen, "page", page, "status", m.list.Status, "tag", m.list.Tag)
	return msg.LoadTaskPage(m.client, gen, page, PageSize, m.list.Status, m.list.Tag)
}

// showDetail transitions from the tasks panel to the detail panel and fans
// out the two detail fetches.
func (m *Model) showDetail(taskID string) tea.Cmd {
	m.active = PanelDetail
	gen := m.bumpGen()
	m.detail = DetailState{Gen: gen, TaskID: taskID}
	m.logger.WithPanel("detail").Debug("loading task detail", "gen", gen, "task_id", taskID)
	return msg.LoadTaskDetail(m.client, gen, taskID)
}

// back returns from the detail panel to the tasks panel. The list renders
// from its existing state; no reload is issued.
func (m *Model) back() {
	m.detail = DetailState{}
	m.active = PanelTasks
}

// panelActivatedMsg defers the initial panel activation into the Update
// loop so Init stays side-effect free.
type panelActivatedMsg struct {
	panel Panel
}
