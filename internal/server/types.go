package server

import (
	"time"

	"fieldtask/internal/domain"
)

// CreateTaskRequest is the request body for creating a task.
// Any status or completion fields the client sends are ignored: new tasks
// always start Pending.
type CreateTaskRequest struct {
	CustomerName  string    `json:"customerName"`
	Location      string    `json:"location"`
	TaskType      string    `json:"taskType"`
	ScheduledTime time.Time `json:"scheduledTime"`
	Notes         string    `json:"notes"`
}

// CompleteTaskRequest is the request body for completing a task.
// The completion timestamp must be supplied by the caller.
type CompleteTaskRequest struct {
	CompletedAt time.Time `json:"completedAt"`
}

// TaskResponse is the wire representation of a task. Timestamps are
// RFC3339 strings on the wire.
type TaskResponse struct {
	ID            string     `json:"_id"`
	CustomerName  string     `json:"customerName"`
	Location      string     `json:"location"`
	TaskType      string     `json:"taskType"`
	ScheduledTime time.Time  `json:"scheduledTime"`
	Notes         string     `json:"notes,omitempty"`
	Status        string     `json:"status"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// MessageResponse is the body of a successful mutation response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of a failure response: a human-readable
// message plus the error kind, never the internal error object.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// toTaskResponse converts a domain Task to its wire representation.
func toTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		CustomerName:  t.CustomerName,
		Location:      t.Location,
		TaskType:      string(t.TaskType),
		ScheduledTime: t.ScheduledTime,
		Notes:         t.Notes,
		Status:        string(t.Status),
		CompletedAt:   t.CompletedAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// toTaskResponses converts a slice of domain Tasks to wire tasks.
func toTaskResponses(tasks []domain.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = toTaskResponse(t)
	}
	return result
}
