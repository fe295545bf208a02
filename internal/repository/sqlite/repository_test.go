package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func newTestTask(customerName string) *Task {
	return &Task{
		CustomerName:  customerName,
		Location:      "12 Elm St",
		TaskType:      "Repair",
		ScheduledTime: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		Notes:         "ring the side doorbell",
		Status:        "Pending",
	}
}

func TestCreateTask(t *testing.T) {
	repo := setupTestDB(t)

	task := newTestTask("Acme Plumbing")
	err := repo.CreateTask(context.Background(), task)
	require.NoError(t, err)

	// The store assigns identity and timestamps
	assert.NotEmpty(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, retrieved.ID)
	assert.Equal(t, "Acme Plumbing", retrieved.CustomerName)
	assert.Equal(t, "12 Elm St", retrieved.Location)
	assert.Equal(t, "Repair", retrieved.TaskType)
	assert.Equal(t, task.ScheduledTime.Unix(), retrieved.ScheduledTime.Unix())
	assert.Equal(t, "ring the side doorbell", retrieved.Notes)
	assert.Equal(t, "Pending", retrieved.Status)
	assert.Nil(t, retrieved.CompletedAt)
}

func TestCreateTask_AssignsDistinctIDs(t *testing.T) {
	repo := setupTestDB(t)

	first := newTestTask("First")
	second := newTestTask("Second")
	require.NoError(t, repo.CreateTask(context.Background(), first))
	require.NoError(t, repo.CreateTask(context.Background(), second))

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateTask_EmptyNotesStoredAsNull(t *testing.T) {
	repo := setupTestDB(t)

	task := newTestTask("Acme")
	task.Notes = ""
	require.NoError(t, repo.CreateTask(context.Background(), task))

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "", retrieved.Notes)
}

func TestGetTask(t *testing.T) {
	repo := setupTestDB(t)

	// Non-existent ID
	_, err := repo.GetTask(context.Background(), "no-such-id")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	task := newTestTask("Acme")
	require.NoError(t, repo.CreateTask(context.Background(), task))

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, retrieved.ID)
}

func TestListTasks(t *testing.T) {
	repo := setupTestDB(t)

	// Empty store
	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 0)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	names := []string{"First", "Second", "Third"}
	for i, name := range names {
		created := base.Add(time.Duration(i) * time.Minute)
		timeNow = func() time.Time { return created }
		require.NoError(t, repo.CreateTask(context.Background(), newTestTask(name)))
	}
	timeNow = time.Now

	tasks, err = repo.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// Ascending by creation time
	for i, name := range names {
		assert.Equal(t, name, tasks[i].CustomerName)
	}
}

func TestUpdateTask(t *testing.T) {
	repo := setupTestDB(t)

	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return created }
	task := newTestTask("Acme")
	require.NoError(t, repo.CreateTask(context.Background(), task))

	updated := created.Add(time.Hour)
	timeNow = func() time.Time { return updated }
	defer func() { timeNow = time.Now }()

	completedAt := time.Date(2024, 1, 15, 17, 30, 0, 0, time.UTC)
	task.Status = "Completed"
	task.CompletedAt = &completedAt
	require.NoError(t, repo.UpdateTask(context.Background(), task))

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Completed", retrieved.Status)
	require.NotNil(t, retrieved.CompletedAt)
	assert.Equal(t, completedAt.Unix(), retrieved.CompletedAt.Unix())
	assert.Equal(t, created.Unix(), retrieved.CreatedAt.Unix())
	assert.Equal(t, updated.Unix(), retrieved.UpdatedAt.Unix())
}

func TestUpdateTask_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	task := newTestTask("Acme")
	task.ID = "no-such-id"
	err := repo.UpdateTask(context.Background(), task)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteTask(t *testing.T) {
	repo := setupTestDB(t)

	task := newTestTask("Acme")
	require.NoError(t, repo.CreateTask(context.Background(), task))

	err := repo.DeleteTask(context.Background(), task.ID)
	require.NoError(t, err)

	_, err = repo.GetTask(context.Background(), task.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteTask_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.DeleteTask(context.Background(), "no-such-id")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPing(t *testing.T) {
	repo := setupTestDB(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
