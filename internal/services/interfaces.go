package services

import (
	"context"
	"time"

	"fieldtask/internal/domain"
)

// CreateTaskParams holds the caller-supplied attributes of a new task.
// Status and completion timestamp are deliberately absent: new tasks are
// always created Pending, whatever the caller sends.
type CreateTaskParams struct {
	CustomerName  string
	Location      string
	TaskType      domain.TaskType
	ScheduledTime time.Time
	Notes         string
}

// TaskService enforces the task lifecycle: creation validation, the
// Pending to Completed transition, and the deletion precondition.
type TaskService interface {
	// Create validates the params and persists one new Pending task.
	Create(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// ListAll returns the full current set of tasks, unfiltered and
	// unordered. Ordering is a presentation concern.
	ListAll(ctx context.Context) ([]domain.Task, error)

	// Complete marks the task Completed at exactly the given timestamp.
	// The timestamp must be supplied by the caller; it is never defaulted.
	// Re-completing an already completed task overwrites the timestamp.
	Complete(ctx context.Context, id string, completedAt time.Time) (*domain.Task, error)

	// Delete permanently removes a Completed task. Deleting a Pending
	// task fails with a precondition error and leaves the record intact.
	Delete(ctx context.Context, id string) error
}
