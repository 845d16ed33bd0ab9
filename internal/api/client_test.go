package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRejectsBadURL(t *testing.T) {
	for _, bad := range []string{"", "not a url", "/relative/only"} {
		if _, err := NewClient(bad); err == nil {
			t.Errorf("NewClient(%q) should fail", bad)
		}
	}
}

func TestStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(SystemStatus{Status: "running", Version: "1.0.0", Tasks: 3})
	}))

	status, err := client.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.Status != "running" {
		t.Errorf("Status = %q", status.Status)
	}
	if status.Tasks != 3 {
		t.Errorf("Tasks = %d", status.Tasks)
	}
}

func TestListTasksQueryConstruction(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want map[string]string // expected present params; absent keys must be missing
	}{
		{
			name: "paginated with filters",
			opts: ListOptions{Limit: 10, Offset: 20, Status: "completed", Tag: "web"},
			want: map[string]string{"limit": "10", "offset": "20", "status": "completed", "tag": "web"},
		},
		{
			name: "status all is omitted",
			opts: ListOptions{Limit: 10, Status: "all"},
			want: map[string]string{"limit": "10", "offset": "0"},
		},
		{
			name: "blank tag is omitted",
			opts: ListOptions{Limit: 10, Tag: "  "},
			want: map[string]string{"limit": "10", "offset": "0"},
		},
		{
			name: "unbounded listing has no limit or offset",
			opts: ListOptions{},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery map[string][]string
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				_ = json.NewEncoder(w).Encode(TaskPage{Tasks: []Task{}, Total: 0})
			}))

			if _, err := client.ListTasks(context.Background(), tt.opts); err != nil {
				t.Fatalf("ListTasks: %v", err)
			}

			if len(gotQuery) != len(tt.want) {
				t.Errorf("query = %v, want keys %v", gotQuery, tt.want)
			}
			for key, val := range tt.want {
				if got := gotQuery[key]; len(got) != 1 || got[0] != val {
					t.Errorf("query[%q] = %v, want %q", key, got, val)
				}
			}
		})
	}
}

func TestListTasksDecodesPage(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(TaskPage{
			Tasks: []Task{
				{ID: "t1", Description: "Summarize doc", CreatedAt: created, Metadata: TaskMetadata{Status: "processing"}},
				{ID: "t2", Description: "Research topic"},
			},
			Total: 12,
		})
	}))

	page, err := client.ListTasks(context.Background(), ListOptions{Limit: 10})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(page.Tasks) != 2 || page.Total != 12 {
		t.Fatalf("page = %+v", page)
	}
	if page.Tasks[0].DisplayStatus() != "processing" {
		t.Errorf("DisplayStatus = %q", page.Tasks[0].DisplayStatus())
	}
	if page.Tasks[1].DisplayStatus() != StatusPending {
		t.Errorf("absent status should display as pending, got %q", page.Tasks[1].DisplayStatus())
	}
}

func TestGetTaskNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Task not found"})
	}))

	_, err := client.GetTask(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsNotFound(err) {
		t.Errorf("expected not-found classification, got %v", err)
	}
	var apiErr *errors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Message != "Task not found" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestCreateTask(t *testing.T) {
	var gotBody NewTask
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(CreatedTask{TaskID: "t1", Status: "created"})
	}))

	created, err := client.CreateTask(context.Background(), NewTask{Description: "Summarize doc"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.TaskID != "t1" {
		t.Errorf("TaskID = %q", created.TaskID)
	}
	if gotBody.Description != "Summarize doc" || gotBody.Priority != 0 {
		t.Errorf("body = %+v", gotBody)
	}
	if gotBody.Tags == nil {
		t.Error("tags should be sent as an empty list, not null")
	}
}

func TestCreateTaskRejectsEmptyDescription(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := client.CreateTask(context.Background(), NewTask{Description: "   "})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if !errors.Is(err, errors.ErrEmptyDescription) {
		t.Error("rejection should match ErrEmptyDescription")
	}
	if requests != 0 {
		t.Errorf("no network call should be made, saw %d", requests)
	}
}

func TestDeleteTask(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/tasks/t9" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
	}))

	if err := client.DeleteTask(context.Background(), "t9"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
}

func TestTaskResults(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tasks/t1/results" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"task_id": "t1",
			"results": []ResultRecord{{ID: "r1", TaskID: "t1", Content: "analysis output"}},
		})
	}))

	results, err := client.TaskResults(context.Background(), "t1")
	if err != nil {
		t.Fatalf("TaskResults: %v", err)
	}
	if len(results) != 1 || results[0].Content != "analysis output" {
		t.Errorf("results = %+v", results)
	}
}

func TestAgentsAndTools(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/agents":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"agents": []Agent{{Name: "planner", Description: "Breaks tasks into steps"}},
			})
		case "/api/tools":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"tools": []Tool{{Name: "search", Description: "Web search"}},
			})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))

	agents, err := client.Agents(context.Background())
	if err != nil {
		t.Fatalf("Agents: %v", err)
	}
	if len(agents) != 1 || agents[0].Name != "planner" {
		t.Errorf("agents = %+v", agents)
	}

	tools, err := client.Tools(context.Background())
	if err != nil {
		t.Fatalf("Tools: %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "search" {
		t.Errorf("tools = %+v", tools)
	}
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	server.Close() // connection refused from here on

	_, err = client.Status(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !errors.Is(err, errors.ErrBackendUnavailable) {
		t.Errorf("expected ErrBackendUnavailable, got %v", err)
	}
	if !errors.IsRetryable(err) {
		t.Error("transport failure should be retryable")
	}
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(func() { close(block) })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.Status(ctx); err == nil {
		t.Fatal("expected context deadline error")
	}
}
