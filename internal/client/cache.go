package client

import (
	"sync"
	"time"

	"fieldtask/internal/domain"
)

// TaskCache holds the last-fetched task list. It is mutated only after a
// remote operation succeeds; a failed remote call leaves it untouched.
// Display order is re-derived on every read, so it is always current
// after a mutation.
type TaskCache struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

// NewTaskCache creates an empty task cache.
func NewTaskCache() *TaskCache {
	return &TaskCache{}
}

// Replace swaps the cached list for a freshly fetched one.
func (c *TaskCache) Replace(tasks []domain.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tasks = make([]domain.Task, len(tasks))
	copy(c.tasks, tasks)
}

// ApplyCompletion replaces the cached task with a completed copy carrying
// the given timestamp. When the identifier is absent (a race with a
// concurrent fetch) the cache is left unchanged; the next full fetch
// self-corrects. Returns whether the task was found.
func (c *TaskCache) ApplyCompletion(id string, completedAt time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, task := range c.tasks {
		if task.ID == id {
			c.tasks[i] = task.Complete(completedAt)
			return true
		}
	}
	return false
}

// ApplyDeletion removes the matching entry by identifier; absent
// identifiers are a no-op. Returns whether the task was found.
func (c *TaskCache) ApplyDeletion(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, task := range c.tasks {
		if task.ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the cached tasks in display order.
func (c *TaskCache) Snapshot() []domain.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.DisplayOrder(c.tasks)
}

// CompletedIDs returns the identifiers of every cached Completed task.
func (c *TaskCache) CompletedIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var ids []string
	for _, task := range c.tasks {
		if task.IsCompleted() {
			ids = append(ids, task.ID)
		}
	}
	return ids
}

// Len returns the number of cached tasks.
func (c *TaskCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tasks)
}
