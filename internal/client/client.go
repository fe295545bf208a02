// Package client implements the technician-side view of the task API:
// an HTTP client, an in-memory task cache, and the session tying the two
// together.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fieldtask/internal/config"
	"fieldtask/internal/domain"
	"fieldtask/internal/errors"
	"fieldtask/internal/logging"
)

// Remote defines the task operations the session needs from the server.
// Commands never talk HTTP directly.
type Remote interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, params CreateParams) error
	CompleteTask(ctx context.Context, id string, completedAt time.Time) error
	DeleteTask(ctx context.Context, id string) error
}

// Client is the HTTP implementation of Remote.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time interface check.
var _ Remote = (*Client)(nil)

// New creates a Client for the configured server. Every request carries
// the configured timeout.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Client.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Client.RequestTimeout,
		},
	}
}

// ListTasks fetches the full task collection.
func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/tasks", nil)
	if err != nil {
		return nil, err
	}

	var wireTasks []wireTask
	if err := json.Unmarshal(body, &wireTasks); err != nil {
		return nil, errors.NewTransportError("decode task list", err)
	}

	tasks := make([]domain.Task, len(wireTasks))
	for i, w := range wireTasks {
		tasks[i] = w.toDomain()
	}
	return tasks, nil
}

// CreateTask creates a new task on the server.
func (c *Client) CreateTask(ctx context.Context, params CreateParams) error {
	req := wireCreateRequest{
		CustomerName:  params.CustomerName,
		Location:      params.Location,
		TaskType:      string(params.TaskType),
		ScheduledTime: params.ScheduledTime,
		Notes:         params.Notes,
	}
	_, err := c.do(ctx, http.MethodPost, "/api/v1/tasks", req)
	return err
}

// CompleteTask marks a task completed at the given timestamp.
func (c *Client) CompleteTask(ctx context.Context, id string, completedAt time.Time) error {
	req := wireCompleteRequest{CompletedAt: completedAt}
	_, err := c.do(ctx, http.MethodPatch, "/api/v1/tasks/"+id, req)
	return err
}

// DeleteTask permanently removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/tasks/"+id, nil)
	return err
}

// do issues one request and returns the response body. Connectivity
// failures surface as transport errors; failure statuses are mapped back
// onto the typed error taxonomy from the response's error kind.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.NewTransportError("encode request", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.NewTransportError("build request", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.Debugf("-> %s %s\n", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("%s %s", method, path), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError("read response", err)
	}

	logging.Debugf("<- %d %s %s\n", resp.StatusCode, method, path)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.errorFromResponse(resp.StatusCode, body)
	}

	return body, nil
}

// errorFromResponse rebuilds a typed error from a failure response.
func (c *Client) errorFromResponse(statusCode int, body []byte) error {
	var wire wireError
	message := fmt.Sprintf("server returned status %d", statusCode)
	if err := json.Unmarshal(body, &wire); err == nil && wire.Error != "" {
		message = wire.Error
	}

	var appErr *errors.AppError
	switch statusCode {
	case http.StatusBadRequest:
		appErr = errors.NewValidationError(message, nil)
	case http.StatusNotFound:
		appErr = errors.NewNotFoundError("task", message)
		appErr.Message = message
	case http.StatusConflict:
		appErr = errors.NewPreconditionError("apply change", message)
		appErr.Message = message
	default:
		appErr = errors.NewServerError(message, nil)
	}

	return appErr.WithContext("status_code", statusCode)
}
