package msg

import (
	"github.com/taskdeck/taskdeck/internal/api"
)

// Messages carry a generation token so the update loop can discard stale
// responses: every load bumps its panel's generation, and a completion whose
// generation no longer matches is the answer to a superseded request
// (latest-request-wins).

// StatusLoadedMsg carries the backend health report for the dashboard.
type StatusLoadedMsg struct {
	Gen    int
	Status *api.SystemStatus
	Err    error
}

// OverviewLoadedMsg carries the unbounded task collection the dashboard
// reduces into its aggregate statistics and recent-task sublist.
type OverviewLoadedMsg struct {
	Gen  int
	Page *api.TaskPage
	Err  error
}

// TaskPageLoadedMsg carries one page of the filtered task listing.
// RequestedPage is echoed back so the handler can clamp the cursor when the
// collection shrank between requests.
type TaskPageLoadedMsg struct {
	Gen           int
	RequestedPage int
	Page          *api.TaskPage
	Err           error
}

// TaskLoadedMsg carries the metadata half of a task-detail load.
type TaskLoadedMsg struct {
	Gen  int
	Task *api.Task
	Err  error
}

// TaskResultsLoadedMsg carries the results half of a task-detail load.
type TaskResultsLoadedMsg struct {
	Gen     int
	Results []api.ResultRecord
	Err     error
}

// TaskCreatedMsg is sent when an async task submission completes.
type TaskCreatedMsg struct {
	Created *api.CreatedTask
	Err     error
}

// TaskDeletedMsg is sent when an async task deletion completes.
type TaskDeletedMsg struct {
	TaskID string
	Err    error
}

// AgentsLoadedMsg carries the registered agent collection.
type AgentsLoadedMsg struct {
	Gen    int
	Agents []api.Agent
	Err    error
}

// ToolsLoadedMsg carries the registered tool collection.
type ToolsLoadedMsg struct {
	Gen   int
	Tools []api.Tool
	Err   error
}
