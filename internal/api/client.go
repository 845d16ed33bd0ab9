// Package api provides the REST client for the task backend. It is a thin,
// stateless accessor: pure request/response mapping with no caching and no
// view concerns.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/logging"
)

const (
	// defaultTimeout is the per-request timeout when none is configured.
	defaultTimeout = 15 * time.Second
)

// Client talks to the task backend's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the diagnostic logger. Defaults to a no-op logger.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logging.NopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Status fetches the backend health report.
func (c *Client) Status(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, nil, &status); err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}
	return &status, nil
}

// ListTasks fetches one page of the task collection. Zero-valued options are
// omitted from the query: no limit means an unbounded listing, and blank or
// "all" filters add no constraint.
func (c *Client) ListTasks(ctx context.Context, opts ListOptions) (*TaskPage, error) {
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
		query.Set("offset", strconv.Itoa(opts.Offset))
	}
	if status := strings.ToLower(opts.Status); status != "" && status != "all" {
		query.Set("status", status)
	}
	if tag := strings.TrimSpace(opts.Tag); tag != "" {
		query.Set("tag", tag)
	}

	var page TaskPage
	if err := c.do(ctx, http.MethodGet, "/api/tasks", query, nil, &page); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &page, nil
}

// GetTask fetches a single task by ID.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+url.PathEscape(taskID), nil, nil, &task); err != nil {
		return nil, fmt.Errorf("get task %s: %w", taskID, err)
	}
	return &task, nil
}

// CreateTask submits a new task to the backend.
func (c *Client) CreateTask(ctx context.Context, task NewTask) (*CreatedTask, error) {
	if strings.TrimSpace(task.Description) == "" {
		return nil, errors.NewValidationError("description", "Please enter a task description")
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	var created CreatedTask
	if err := c.do(ctx, http.MethodPost, "/api/tasks", nil, task, &created); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &created, nil
}

// DeleteTask removes a task and its results from the backend.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(taskID), nil, nil, nil); err != nil {
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}
	return nil
}

// TaskResults fetches the result records for a task.
func (c *Client) TaskResults(ctx context.Context, taskID string) ([]ResultRecord, error) {
	var resp struct {
		TaskID  string         `json:"task_id"`
		Results []ResultRecord `json:"results"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+url.PathEscape(taskID)+"/results", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get task results %s: %w", taskID, err)
	}
	return resp.Results, nil
}

// Agents fetches the registered agents.
func (c *Client) Agents(ctx context.Context) ([]Agent, error) {
	var resp struct {
		Agents []Agent `json:"agents"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/agents", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return resp.Agents, nil
}

// Tools fetches the registered tools.
func (c *Client) Tools(ctx context.Context) ([]Tool, error) {
	var resp struct {
		Tools []Tool `json:"tools"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tools", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return resp.Tools, nil
}

// errorBody is the backend's error response shape.
type errorBody struct {
	Error string `json:"error"`
}

// do performs one request/response cycle. Transport failures come back as
// RequestError, non-2xx responses as APIError with the server's message when
// the body carried one. A response body is decoded into out when out is
// non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	op := method + " " + path
	requestID := uuid.NewString()
	log := c.logger.WithRequest(requestID)

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "op", op, "error", err)
		return errors.NewRequestError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("read response failed", "op", op, "error", err)
		return errors.NewRequestError(op, err)
	}

	log.Debug("request complete",
		"op", op,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var eb errorBody
		_ = json.Unmarshal(respBody, &eb)
		return errors.NewAPIError(resp.StatusCode, eb.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.NewRequestError(op, fmt.Errorf("unmarshal response: %w", err))
	}
	return nil
}
