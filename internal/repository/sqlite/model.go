package sqlite

import "time"

// Task represents a task record as stored in the tasks table.
// CompletedAt uses a pointer to allow NULL values; it is populated
// exactly when status is Completed.
type Task struct {
	ID            string
	CustomerName  string
	Location      string
	TaskType      string
	ScheduledTime time.Time
	Notes         string
	Status        string
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
