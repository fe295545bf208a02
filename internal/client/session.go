package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fieldtask/internal/domain"
)

// maxConcurrentDeletes bounds the number of in-flight delete calls during
// a bulk clear, limiting client-perceived load on the server without
// serializing fully.
const maxConcurrentDeletes = 3

// ClearFailure records a single failed deletion during a bulk clear.
type ClearFailure struct {
	ID  string
	Err error
}

// ClearResult is the collected outcome of a bulk clear: every deletion is
// attempted and accounted for, success or failure.
type ClearResult struct {
	Deleted  []string
	Failures []ClearFailure
}

// Session binds the remote API to the local task cache and implements the
// cache mutation protocol: the cache changes only after the corresponding
// remote call succeeds.
type Session struct {
	remote Remote
	cache  *TaskCache
}

// NewSession creates a session over the given remote.
func NewSession(remote Remote) *Session {
	return &Session{
		remote: remote,
		cache:  NewTaskCache(),
	}
}

// Refresh re-fetches the full task list and replaces the cache with it.
func (s *Session) Refresh(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.remote.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Replace(tasks)
	return s.cache.Snapshot(), nil
}

// Tasks returns the cached tasks in display order.
func (s *Session) Tasks() []domain.Task {
	return s.cache.Snapshot()
}

// Create creates a task remotely, then refreshes the cache so the new
// store-assigned record is visible.
func (s *Session) Create(ctx context.Context, params CreateParams) ([]domain.Task, error) {
	if err := s.remote.CreateTask(ctx, params); err != nil {
		return nil, err
	}

	return s.Refresh(ctx)
}

// Complete completes a task remotely, then applies the completion to the
// cached copy.
func (s *Session) Complete(ctx context.Context, id string, completedAt time.Time) error {
	if err := s.remote.CompleteTask(ctx, id, completedAt); err != nil {
		return err
	}

	s.cache.ApplyCompletion(id, completedAt)
	return nil
}

// Delete deletes a task remotely, then removes it from the cache.
func (s *Session) Delete(ctx context.Context, id string) error {
	if err := s.remote.DeleteTask(ctx, id); err != nil {
		return err
	}

	s.cache.ApplyDeletion(id)
	return nil
}

// ClearCompleted deletes every cached Completed task with at most
// maxConcurrentDeletes calls in flight. One failing deletion never aborts
// the rest: all outcomes are collected, successes are applied to the
// cache, and failures are reported in the result.
func (s *Session) ClearCompleted(ctx context.Context) (*ClearResult, error) {
	ids := s.cache.CompletedIDs()

	result := &ClearResult{}
	if len(ids) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentDeletes)

	for _, id := range ids {
		id := id
		group.Go(func() error {
			err := s.remote.DeleteTask(groupCtx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures = append(result.Failures, ClearFailure{ID: id, Err: err})
			} else {
				result.Deleted = append(result.Deleted, id)
			}

			// Failures are collected, never returned: returning one would
			// cancel the remaining deletions.
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, id := range result.Deleted {
		s.cache.ApplyDeletion(id)
	}

	return result, nil
}
