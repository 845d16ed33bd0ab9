package tui

import (
	"testing"

	"github.com/taskdeck/taskdeck/internal/api"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		expected int
	}{
		{"empty collection still has one page", 0, 1},
		{"single item", 1, 1},
		{"exactly one page", 10, 1},
		{"one over a page boundary", 11, 2},
		{"several pages", 37, 4},
		{"exact multiple", 40, 4},
		{"negative total treated as empty", -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, PageSize); got != tt.expected {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, PageSize, got, tt.expected)
			}
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		expected   int
	}{
		{"in range unchanged", 2, 4, 2},
		{"below range clamps to 1", 0, 4, 1},
		{"negative clamps to 1", -3, 4, 1},
		{"above range clamps to last", 9, 4, 4},
		{"single page", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPage(tt.page, tt.totalPages); got != tt.expected {
				t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.totalPages, got, tt.expected)
			}
		})
	}
}

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expected  int
	}{
		{"empty collection is zero", 0, 0, 0},
		{"exact quarter", 1, 4, 25},
		{"two thirds rounds half up", 2, 3, 67},
		{"one third rounds down", 1, 3, 33},
		{"all completed", 5, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuccessRate(tt.completed, tt.total); got != tt.expected {
				t.Errorf("SuccessRate(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.expected)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	tasks := []api.Task{
		{ID: "t1", Metadata: api.TaskMetadata{Status: "pending"}},
		{ID: "t2", Metadata: api.TaskMetadata{Status: "processing"}},
		{ID: "t3", Metadata: api.TaskMetadata{Status: "completed"}},
		{ID: "t4"}, // absent status counts as pending, therefore active
	}

	stats := ComputeStats(tasks)
	if stats.Total != 4 {
		t.Errorf("Total = %d", stats.Total)
	}
	if stats.Active != 3 {
		t.Errorf("Active = %d, want 3", stats.Active)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, want 1", stats.Completed)
	}
	if stats.SuccessRate != 25 {
		t.Errorf("SuccessRate = %d, want 25", stats.SuccessRate)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.SuccessRate != 0 {
		t.Errorf("SuccessRate on empty collection = %d, want 0", stats.SuccessRate)
	}
}

func TestRecentTasks(t *testing.T) {
	tasks := []api.Task{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}, {ID: "f"}, {ID: "g"}}

	recent := RecentTasks(tasks, 5)
	if len(recent) != 5 {
		t.Fatalf("len = %d", len(recent))
	}
	// Server order preserved, not re-sorted.
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		if recent[i].ID != id {
			t.Errorf("recent[%d] = %q, want %q", i, recent[i].ID, id)
		}
	}

	short := RecentTasks(tasks[:2], 5)
	if len(short) != 2 {
		t.Errorf("short len = %d", len(short))
	}
}

func TestListStateApply(t *testing.T) {
	s := NewListState()
	s.Selected = 7

	s.Apply(2, &api.TaskPage{
		Tasks: []api.Task{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}},
		Total: 23,
	})

	if s.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", s.TotalPages)
	}
	if s.Page != 2 {
		t.Errorf("Page = %d, want 2", s.Page)
	}
	if s.Selected != 2 {
		t.Errorf("Selected should clamp to last row, got %d", s.Selected)
	}
	if s.PrevDisabled() {
		t.Error("prev should be enabled on page 2")
	}
	if s.NextDisabled() {
		t.Error("next should be enabled below the last page")
	}
}

func TestListStateApplyClampsShrunkenCollection(t *testing.T) {
	s := NewListState()

	// Page 5 was requested but the collection now only fills 2 pages.
	s.Apply(5, &api.TaskPage{Tasks: []api.Task{{ID: "t1"}}, Total: 12})

	if s.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", s.TotalPages)
	}
	if s.Page != 2 {
		t.Errorf("Page should clamp into range, got %d", s.Page)
	}
	if !s.NextDisabled() {
		t.Error("next should be disabled on the last page")
	}
}

func TestListStateApplyEmpty(t *testing.T) {
	s := NewListState()
	s.Apply(1, &api.TaskPage{Tasks: nil, Total: 0})

	if s.TotalPages != 1 || s.Page != 1 {
		t.Errorf("empty collection: page=%d totalPages=%d, want 1/1", s.Page, s.TotalPages)
	}
	if !s.PrevDisabled() || !s.NextDisabled() {
		t.Error("both pagination controls should be disabled on a single page")
	}
	if s.SelectedTask() != nil {
		t.Error("SelectedTask on empty list should be nil")
	}
}

func TestNextStatusFilter(t *testing.T) {
	order := []string{"all", "pending", "processing", "completed", "failed", "all"}
	current := "all"
	for i := 1; i < len(order); i++ {
		current = NextStatusFilter(current)
		if current != order[i] {
			t.Fatalf("step %d = %q, want %q", i, current, order[i])
		}
	}

	if got := NextStatusFilter("bogus"); got != "all" {
		t.Errorf("unknown filter should reset to all, got %q", got)
	}
}

func TestDetailStateReady(t *testing.T) {
	d := DetailState{}
	if d.Ready() {
		t.Error("fresh detail state should not be ready")
	}
	d.TaskDone = true
	if d.Ready() {
		t.Error("one completed fetch should not make the state ready")
	}
	d.ResultsDone = true
	if !d.Ready() {
		t.Error("both fetches complete should make the state ready")
	}
}

func TestPanelTitles(t *testing.T) {
	for _, p := range []Panel{PanelDashboard, PanelTasks, PanelDetail, PanelAgents, PanelTools, PanelSettings} {
		if p.Title() == "Unknown" {
			t.Errorf("panel %d has no title", p)
		}
	}
	if Panel(99).Title() != "Unknown" {
		t.Error("out-of-range panel should be Unknown")
	}
}
