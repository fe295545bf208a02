package services

import (
	"context"
	"time"

	"fieldtask/internal/domain"
	"fieldtask/internal/errors"
	"fieldtask/internal/repository/sqlite"
	"fieldtask/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.TaskMapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewTaskMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// NewTaskServiceWithValidator creates a TaskService with a custom validator,
// used when validation limits come from configuration
func NewTaskServiceWithValidator(repo sqlite.Repository, taskValidator *validation.TaskValidator) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewTaskMapper(),
		taskValidator: taskValidator,
	}
}

// Create creates a new task with the given attributes
func (s *taskServiceImpl) Create(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	if err := s.taskValidator.ValidateForCreation(params.CustomerName, params.Location, params.TaskType, params.ScheduledTime); err != nil {
		return nil, errors.NewValidationError("invalid task attributes", err)
	}

	// Status is forced to Pending regardless of anything the caller sent
	task := domain.NewTask(
		s.taskValidator.CleanTextField(params.CustomerName),
		s.taskValidator.CleanTextField(params.Location),
		params.TaskType,
		params.ScheduledTime,
		s.taskValidator.CleanTextField(params.Notes),
	)

	dbTask := s.mapper.ToDatabase(task)
	if err := s.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := s.mapper.FromDatabase(dbTask)
	return &created, nil
}

// ListAll returns every task in the store
func (s *taskServiceImpl) ListAll(ctx context.Context) ([]domain.Task, error) {
	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.FromDatabaseSlice(dbTasks), nil
}

// Complete transitions a task to Completed at the given timestamp
func (s *taskServiceImpl) Complete(ctx context.Context, id string, completedAt time.Time) (*domain.Task, error) {
	if err := s.taskValidator.ValidateCompletion(id, completedAt); err != nil {
		return nil, errors.NewValidationError("invalid completion request", err)
	}

	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := s.mapper.FromDatabase(*dbTask).Complete(completedAt)

	updated := s.mapper.ToDatabase(task)
	if err := s.repo.UpdateTask(ctx, &updated); err != nil {
		return nil, err
	}

	result := s.mapper.FromDatabase(updated)
	return &result, nil
}

// Delete permanently removes a task, provided it has been completed
func (s *taskServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return err
	}

	if domain.Status(dbTask.Status) != domain.StatusCompleted {
		return errors.NewPreconditionError("delete task", "only completed tasks can be deleted").
			WithContext("id", id).
			WithContext("status", dbTask.Status)
	}

	return s.repo.DeleteTask(ctx, id)
}
