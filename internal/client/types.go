package client

import (
	"time"

	"fieldtask/internal/domain"
)

// CreateParams holds the attributes of a task creation request.
type CreateParams struct {
	CustomerName  string
	Location      string
	TaskType      domain.TaskType
	ScheduledTime time.Time
	Notes         string
}

// wireTask mirrors the task shape the API puts on the wire.
type wireTask struct {
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

// wireCreateRequest is the body of a creation request.
type wireCreateRequest struct {
	CustomerName  string    `json:"customerName"`
	Location      string    `json:"location"`
	TaskType      string    `json:"taskType"`
	ScheduledTime time.Time `json:"scheduledTime"`
	Notes         string    `json:"notes,omitempty"`
}

// wireCompleteRequest is the body of a completion request.
type wireCompleteRequest struct {
	CompletedAt time.Time `json:"completedAt"`
}

// wireError is the body of a failure response.
type wireError struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// toDomain converts a wire task to the domain model.
func (w wireTask) toDomain() domain.Task {
	return domain.Task{
		ID:            w.ID,
		CustomerName:  w.CustomerName,
		Location:      w.Location,
		TaskType:      domain.TaskType(w.TaskType),
		ScheduledTime: w.ScheduledTime,
		Notes:         w.Notes,
		Status:        domain.Status(w.Status),
		CompletedAt:   w.CompletedAt,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
