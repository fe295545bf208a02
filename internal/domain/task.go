package domain

import (
	"time"
)

// Status represents the lifecycle state of a task.
// A task starts Pending and transitions to Completed exactly once;
// there is no transition back.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// IsValid checks if the status is one of the known values.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// TaskType represents the kind of customer visit.
type TaskType string

const (
	TaskTypeInstallation TaskType = "Installation"
	TaskTypeRepair       TaskType = "Repair"
	TaskTypeMaintenance  TaskType = "Maintenance"
	TaskTypeInspection   TaskType = "Inspection"
)

// TaskTypes lists all valid task types.
func TaskTypes() []TaskType {
	return []TaskType{
		TaskTypeInstallation,
		TaskTypeRepair,
		TaskTypeMaintenance,
		TaskTypeInspection,
	}
}

// IsValid checks if the task type is part of the fixed enumeration.
func (tt TaskType) IsValid() bool {
	switch tt {
	case TaskTypeInstallation, TaskTypeRepair, TaskTypeMaintenance, TaskTypeInspection:
		return true
	}
	return false
}

// Task represents a scheduled customer visit in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID            string
	CustomerName  string
	Location      string
	TaskType      TaskType
	ScheduledTime time.Time
	Notes         string
	Status        Status
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTask creates a new Task with the given attributes.
// New tasks always start Pending with no completion timestamp.
func NewTask(customerName, location string, taskType TaskType, scheduledTime time.Time, notes string) Task {
	return Task{
		CustomerName:  customerName,
		Location:      location,
		TaskType:      taskType,
		ScheduledTime: scheduledTime,
		Notes:         notes,
		Status:        StatusPending,
	}
}

// IsCompleted returns true if the task has been completed.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Complete returns a copy of the task marked Completed at the given time.
// Completing an already-completed task overwrites the completion timestamp.
func (t Task) Complete(at time.Time) Task {
	t.Status = StatusCompleted
	t.CompletedAt = &at
	return t
}

// IsValid checks if the task satisfies the model invariants.
func (t Task) IsValid() bool {
	if t.CustomerName == "" || t.Location == "" {
		return false
	}
	if !t.TaskType.IsValid() {
		return false
	}
	if t.ScheduledTime.IsZero() {
		return false
	}
	if !t.Status.IsValid() {
		return false
	}
	// CompletedAt is set if and only if the task is completed.
	if (t.CompletedAt != nil) != (t.Status == StatusCompleted) {
		return false
	}
	return true
}

// String returns a short description for display purposes.
func (t Task) String() string {
	return t.CustomerName + " @ " + t.Location
}
