package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldtask/internal/domain"
	"fieldtask/internal/errors"
	"fieldtask/internal/repository/sqlite"
)

func TestTaskService_Create(t *testing.T) {
	scheduled := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		params         CreateTaskParams
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name: "should create task with valid attributes",
			params: CreateTaskParams{
				CustomerName:  "Acme Plumbing",
				Location:      "12 Elm St",
				TaskType:      domain.TaskTypeInstallation,
				ScheduledTime: scheduled,
				Notes:         "gate code 4411",
			},
		},
		{
			name: "should create task without notes",
			params: CreateTaskParams{
				CustomerName:  "Acme Plumbing",
				Location:      "12 Elm St",
				TaskType:      domain.TaskTypeInspection,
				ScheduledTime: scheduled,
			},
		},
		{
			name: "should trim whitespace from text fields",
			params: CreateTaskParams{
				CustomerName:  "  Acme Plumbing  ",
				Location:      " 12 Elm St ",
				TaskType:      domain.TaskTypeRepair,
				ScheduledTime: scheduled,
			},
		},
		{
			name: "should return validation error for empty customer name",
			params: CreateTaskParams{
				Location:      "12 Elm St",
				TaskType:      domain.TaskTypeRepair,
				ScheduledTime: scheduled,
			},
			errorAssertion: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, err.Error(), "customerName")
			},
		},
		{
			name: "should return validation error for unknown task type",
			params: CreateTaskParams{
				CustomerName:  "Acme",
				Location:      "12 Elm St",
				TaskType:      domain.TaskType("Demolition"),
				ScheduledTime: scheduled,
			},
			errorAssertion: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, err.Error(), "taskType")
			},
		},
		{
			name: "should return validation error for missing scheduled time",
			params: CreateTaskParams{
				CustomerName: "Acme",
				Location:     "12 Elm St",
				TaskType:     domain.TaskTypeRepair,
			},
			errorAssertion: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, err.Error(), "scheduledTime")
			},
		},
		{
			name: "should return validation error for over-long location",
			params: CreateTaskParams{
				CustomerName:  "Acme",
				Location:      strings.Repeat("a", 300),
				TaskType:      domain.TaskTypeRepair,
				ScheduledTime: scheduled,
			},
			errorAssertion: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service := setupTaskService(t)
			ctx := context.Background()

			// Act
			result, err := service.Create(ctx, tt.params)

			// Assert
			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.NotEmpty(t, result.ID)
				assert.Equal(t, strings.TrimSpace(tt.params.CustomerName), result.CustomerName)
				assert.Equal(t, strings.TrimSpace(tt.params.Location), result.Location)
				assert.Equal(t, tt.params.TaskType, result.TaskType)
				assert.Equal(t, domain.StatusPending, result.Status)
				assert.Nil(t, result.CompletedAt)
			}
		})
	}
}

func TestTaskService_ListAll(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()

	tasks, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := service.Create(ctx, validParams(name))
		require.NoError(t, err)
	}

	tasks, err = service.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestTaskService_Complete(t *testing.T) {
	completedAt := time.Date(2024, 1, 15, 17, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		setupTask      bool
		taskID         string
		completedAt    time.Time
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:        "should complete an existing pending task",
			setupTask:   true,
			completedAt: completedAt,
		},
		{
			name:        "should return not found error for unknown task",
			taskID:      "no-such-id",
			completedAt: completedAt,
			errorAssertion: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
			},
		},
		{
			name:        "should return validation error for missing id",
			taskID:      "",
			completedAt: completedAt,
			errorAssertion: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:      "should return validation error for zero completion time",
			setupTask: true,
			errorAssertion: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, err.Error(), "completedAt")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service := setupTaskService(t)
			ctx := context.Background()

			taskID := tt.taskID
			if tt.setupTask {
				created, err := service.Create(ctx, validParams("Acme"))
				require.NoError(t, err)
				taskID = created.ID
			}

			// Act
			result, err := service.Complete(ctx, taskID, tt.completedAt)

			// Assert
			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, domain.StatusCompleted, result.Status)
				require.NotNil(t, result.CompletedAt)
				assert.Equal(t, tt.completedAt.Unix(), result.CompletedAt.Unix())
			}
		})
	}
}

func TestTaskService_Complete_OverwritesTimestamp(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validParams("Acme"))
	require.NoError(t, err)

	first := time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)
	second := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)

	_, err = service.Complete(ctx, created.ID, first)
	require.NoError(t, err)

	result, err := service.Complete(ctx, created.ID, second)
	require.NoError(t, err)
	require.NotNil(t, result.CompletedAt)
	assert.Equal(t, second.Unix(), result.CompletedAt.Unix())
}

func TestTaskService_Delete(t *testing.T) {
	completedAt := time.Date(2024, 1, 15, 17, 30, 0, 0, time.UTC)

	t.Run("should delete a completed task", func(t *testing.T) {
		service := setupTaskService(t)
		ctx := context.Background()

		created, err := service.Create(ctx, validParams("Acme"))
		require.NoError(t, err)
		_, err = service.Complete(ctx, created.ID, completedAt)
		require.NoError(t, err)

		err = service.Delete(ctx, created.ID)
		require.NoError(t, err)

		tasks, err := service.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("should refuse to delete a pending task", func(t *testing.T) {
		service := setupTaskService(t)
		ctx := context.Background()

		created, err := service.Create(ctx, validParams("Acme"))
		require.NoError(t, err)

		err = service.Delete(ctx, created.ID)
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypePrecondition))

		// The record is untouched
		tasks, err := service.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, domain.StatusPending, tasks[0].Status)
	})

	t.Run("should return not found error for unknown task", func(t *testing.T) {
		service := setupTaskService(t)

		err := service.Delete(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should return validation error for missing id", func(t *testing.T) {
		service := setupTaskService(t)

		err := service.Delete(context.Background(), "  ")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})
}

// Helper functions
func setupTaskService(t *testing.T) TaskService {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return NewTaskService(repo)
}

func validParams(customerName string) CreateTaskParams {
	return CreateTaskParams{
		CustomerName:  customerName,
		Location:      "12 Elm St",
		TaskType:      domain.TaskTypeRepair,
		ScheduledTime: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}
