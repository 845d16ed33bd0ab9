package tui

import (
	"math"

	"github.com/taskdeck/taskdeck/internal/api"
)

// Panel identifies one mutually-exclusive top-level view region of the
// console. Exactly one panel is visible at any time.
type Panel int

const (
	PanelDashboard Panel = iota
	PanelTasks
	PanelDetail
	PanelAgents
	PanelTools
	PanelSettings
)

// Title returns the navigation label for a panel.
func (p Panel) Title() string {
	switch p {
	case PanelDashboard:
		return "Dashboard"
	case PanelTasks:
		return "Tasks"
	case PanelDetail:
		return "Task Detail"
	case PanelAgents:
		return "Agents"
	case PanelTools:
		return "Tools"
	case PanelSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// navPanels are the top-level panels in navigation order. The detail panel
// is not navigable directly; it is reachable only from the tasks panel.
var navPanels = []Panel{PanelDashboard, PanelTasks, PanelAgents, PanelTools, PanelSettings}

const (
	// PageSize is the fixed task-listing page size.
	PageSize = 10

	// descriptionMaxLen is the cap for task descriptions in list rows.
	descriptionMaxLen = 50
)

// StatusFilters is the cycle order of the status filter on the tasks panel.
var StatusFilters = []string{"all", api.StatusPending, api.StatusProcessing, api.StatusCompleted, api.StatusFailed}

// TotalPages computes the page count for a collection: ceil(total/pageSize),
// minimum 1 so an empty collection still has a valid current page.
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage confines a page number to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// SuccessRate computes round-half-up(completed/total*100), with 0 for an
// empty collection.
func SuccessRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ListState is the tasks panel's view state: the last rendered page plus the
// pagination and filter cursor it was loaded with.
type ListState struct {
	Gen     int
	Loading bool

	Tasks      []api.Task
	Page       int
	TotalPages int
	Status     string // status filter; "all" means unconstrained
	Tag        string // tag filter; blank means unconstrained

	Selected int    // cursor within the rendered page
	ErrText  string // non-empty renders an error line under the list
}

// NewListState returns the initial tasks view state.
func NewListState() ListState {
	return ListState{
		Page:       1,
		TotalPages: 1,
		Status:     "all",
	}
}

// PrevDisabled reports whether the previous-page control is disabled.
func (s *ListState) PrevDisabled() bool {
	return s.Page <= 1
}

// NextDisabled reports whether the next-page control is disabled.
func (s *ListState) NextDisabled() bool {
	return s.Page >= s.TotalPages
}

// Apply folds a loaded page into the state: items replace the rendered list
// in server order, the page count is recomputed from the returned total, and
// the current page and selection cursor are clamped back into range.
func (s *ListState) Apply(requestedPage int, page *api.TaskPage) {
	s.Tasks = page.Tasks
	s.TotalPages = TotalPages(page.Total, PageSize)
	s.Page = ClampPage(requestedPage, s.TotalPages)
	if s.Selected >= len(s.Tasks) {
		s.Selected = len(s.Tasks) - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
	s.ErrText = ""
}

// SelectedTask returns the task under the cursor, or nil when the list is
// empty.
func (s *ListState) SelectedTask() *api.Task {
	if s.Selected < 0 || s.Selected >= len(s.Tasks) {
		return nil
	}
	return &s.Tasks[s.Selected]
}

// NextStatusFilter returns the status filter after the current one in the
// cycle order.
func NextStatusFilter(current string) string {
	for i, status := range StatusFilters {
		if status == current {
			return StatusFilters[(i+1)%len(StatusFilters)]
		}
	}
	return StatusFilters[0]
}

// DetailState is the task-detail panel's view state. The two halves of the
// fan-out land independently; the panel renders a loading indicator until
// both have completed, then assembles whatever succeeded.
type DetailState struct {
	Gen    int
	TaskID string

	TaskDone    bool
	ResultsDone bool

	Task       *api.Task
	TaskErr    error
	Results    []api.ResultRecord
	ResultsErr error
}

// Ready reports whether both fetches of the fan-out have completed, in
// either order. Rendering is gated on this.
func (d *DetailState) Ready() bool {
	return d.TaskDone && d.ResultsDone
}

// DashboardStats are the aggregate statistics derived client-side from the
// unbounded task collection.
type DashboardStats struct {
	Total       int
	Active      int // pending or processing
	Completed   int
	SuccessRate int // percent, round-half-up
}

// ComputeStats reduces a task collection into dashboard statistics.
func ComputeStats(tasks []api.Task) DashboardStats {
	stats := DashboardStats{Total: len(tasks)}
	for _, task := range tasks {
		switch task.DisplayStatus() {
		case api.StatusPending, api.StatusProcessing:
			stats.Active++
		case api.StatusCompleted:
			stats.Completed++
		}
	}
	stats.SuccessRate = SuccessRate(stats.Completed, stats.Total)
	return stats
}

// RecentTasks returns the first n tasks in server order for the dashboard's
// recent-task sublist.
func RecentTasks(tasks []api.Task, n int) []api.Task {
	if len(tasks) <= n {
		return tasks
	}
	return tasks[:n]
}

// DashboardState is the dashboard panel's view state. Its two regions
// (system status, task statistics) are fed by independent fetches; a failed
// fetch leaves its region showing the prior render.
type DashboardState struct {
	Gen     int
	Pending int // outstanding fetches of the current refresh

	Status   *api.SystemStatus
	HasStats bool
	Stats    DashboardStats
	Recent   []api.Task

	// Task creation form state
	Submitting bool
	FormError  string
	FormNotice string
}

// Loading reports whether a dashboard refresh is still in flight.
func (d *DashboardState) Loading() bool {
	return d.Pending > 0
}

// AgentsState is the agents panel's view state.
type AgentsState struct {
	Gen     int
	Loading bool
	Loaded  bool
	Agents  []api.Agent
	ErrText string
}

// ToolsState is the tools panel's view state.
type ToolsState struct {
	Gen     int
	Loading bool
	Loaded  bool
	Tools   []api.Tool
	ErrText string
}
