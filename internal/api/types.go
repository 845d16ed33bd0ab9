package api

import (
	"strings"
	"time"
)

// Task lifecycle statuses as reported by the backend. Step statuses commonly
// mirror this vocabulary but are not constrained to it.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Task is a unit of work owned by the backend. The console only ever holds
// read-mostly projections of it; identity is the server-assigned ID.
type Task struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	Priority    int          `json:"priority"`
	Tags        []string     `json:"tags,omitempty"`
	Metadata    TaskMetadata `json:"metadata,omitempty"`
}

// TaskMetadata carries the backend-managed lifecycle fields embedded in a
// task record.
type TaskMetadata struct {
	Status      string          `json:"status,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Steps       []ExecutionStep `json:"steps,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// ExecutionStep is one ordered stage of a task's server-side processing,
// surfaced for observability. Position in the slice is execution order.
type ExecutionStep struct {
	Name        string `json:"name,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// DisplayStatus returns the normalized lifecycle status of a task for
// display purposes: lowercased, with an absent status treated as pending.
func (t Task) DisplayStatus() string {
	return NormalizeStatus(t.Metadata.Status)
}

// NormalizeStatus lowercases a status label and maps the empty string to
// pending.
func NormalizeStatus(status string) string {
	if status == "" {
		return StatusPending
	}
	return strings.ToLower(status)
}

// TaskPage is one page of a filtered task listing.
type TaskPage struct {
	Tasks  []Task `json:"tasks"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// NewTask is the creation payload for POST /api/tasks.
type NewTask struct {
	Description string   `json:"description"`
	Priority    int      `json:"priority"`
	Tags        []string `json:"tags"`
}

// CreatedTask is the backend's acknowledgement of a task submission.
type CreatedTask struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// ResultRecord is one output produced by processing a task. Only Content is
// surfaced in the console; the detail view shows the first record.
type ResultRecord struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status,omitempty"`
	Content   string    `json:"content"`
}

// Agent describes a registered agent.
type Agent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Tool describes a registered tool.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SystemStatus is the backend health report.
type SystemStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version,omitempty"`
	Tasks         int     `json:"tasks,omitempty"`
	Results       int     `json:"results,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds,omitempty"`
	Debug         bool    `json:"debug,omitempty"`
}

// ListOptions are the query constraints for a task listing. A zero Limit
// requests an unbounded listing; Status "all" or "" and a blank Tag are
// omitted from the query entirely.
type ListOptions struct {
	Limit  int
	Offset int
	Status string
	Tag    string
}
