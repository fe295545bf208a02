// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"fieldtask/internal/client"
	"fieldtask/internal/domain"
	"fieldtask/internal/errors"
)

// FakeRemote is an in-memory implementation of client.Remote for testing.
type FakeRemote struct {
	mu    sync.Mutex
	tasks []domain.Task

	// Error injection for testing
	ListTasksErr    error
	CreateTaskErr   error
	CompleteTaskErr error
	DeleteTaskErr   map[string]error // taskID -> error

	// Concurrency accounting for the bulk-clear pool
	inFlight    int
	MaxInFlight int
}

// Compile-time interface check.
var _ client.Remote = (*FakeRemote)(nil)

// NewFakeRemote creates a new FakeRemote with no tasks.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{
		DeleteTaskErr: make(map[string]error),
	}
}

// AddTask seeds a task and returns its assigned identifier.
func (f *FakeRemote) AddTask(task domain.Task) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	f.tasks = append(f.tasks, task)
	return task.ID
}

// TaskIDs returns the identifiers of all stored tasks.
func (f *FakeRemote) TaskIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, len(f.tasks))
	for i, task := range f.tasks {
		ids[i] = task.ID
	}
	return ids
}

// ListTasks implements client.Remote.
func (f *FakeRemote) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	tasks := make([]domain.Task, len(f.tasks))
	copy(tasks, f.tasks)
	return tasks, nil
}

// CreateTask implements client.Remote.
func (f *FakeRemote) CreateTask(ctx context.Context, params client.CreateParams) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	task := domain.NewTask(params.CustomerName, params.Location, params.TaskType, params.ScheduledTime, params.Notes)
	task.ID = uuid.New().String()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	return nil
}

// CompleteTask implements client.Remote.
func (f *FakeRemote) CompleteTask(ctx context.Context, id string, completedAt time.Time) error {
	if f.CompleteTaskErr != nil {
		return f.CompleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, task := range f.tasks {
		if task.ID == id {
			f.tasks[i] = task.Complete(completedAt)
			return nil
		}
	}
	return errors.NewNotFoundError("task", id)
}

// DeleteTask implements client.Remote. It tracks how many calls are in
// flight at once so tests can assert the bulk-clear concurrency bound.
func (f *FakeRemote) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.MaxInFlight {
		f.MaxInFlight = f.inFlight
	}
	f.mu.Unlock()

	// Give concurrent deletions a chance to overlap
	time.Sleep(time.Millisecond)

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if err, ok := f.DeleteTaskErr[id]; ok {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, task := range f.tasks {
		if task.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("task", id)
}
