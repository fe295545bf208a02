package sqlite

import (
	"context"
	"database/sql"
	"time"

	"fieldtask/internal/errors"
	"fieldtask/internal/repository/sqlite/migrations"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Repository defines the interface for task storage operations.
// The store owns identity assignment and the created/updated timestamps.
type Repository interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id string) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id string) error

	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// timeNow is a variable so tests can control the store's clock
var timeNow = time.Now

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Ping verifies the database connection is alive
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("ping database", err)
	}
	return nil
}

// CreateTask inserts a new task record, assigning its identifier and the
// created/updated timestamps. The assigned values are written back to the
// given task.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := timeNow().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	query := `
	INSERT INTO tasks (id, customer_name, location, task_type, scheduled_time, notes, status, completed_at, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.CustomerName,
		task.Location,
		task.TaskType,
		FormatTimeForDB(task.ScheduledTime),
		FormatNotesForDB(task.Notes),
		task.Status,
		FormatTimePtrForDB(task.CompletedAt),
		FormatTimeForDB(task.CreatedAt),
		FormatTimeForDB(task.UpdatedAt),
	)
	if err != nil {
		return HandleDatabaseError("insert task", err)
	}

	return nil
}

// GetTask retrieves a task record by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (*Task, error) {
	query := `
	SELECT id, customer_name, location, task_type, scheduled_time, notes, status, completed_at, created_at, updated_at
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", id, id)
}

// ListTasks retrieves all task records. Ordering for display is a
// presentation concern and is not applied here.
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, customer_name, location, task_type, scheduled_time, notes, status, completed_at, created_at, updated_at
	FROM tasks
	ORDER BY created_at ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask updates an existing task record in a single statement and
// bumps its updated timestamp. The write is atomic with respect to the
// record.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	task.UpdatedAt = timeNow().UTC()

	query := `
	UPDATE tasks
	SET customer_name = ?, location = ?, task_type = ?, scheduled_time = ?, notes = ?, status = ?, completed_at = ?, updated_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", task.ID,
		task.CustomerName,
		task.Location,
		task.TaskType,
		FormatTimeForDB(task.ScheduledTime),
		FormatNotesForDB(task.Notes),
		task.Status,
		FormatTimePtrForDB(task.CompletedAt),
		FormatTimeForDB(task.UpdatedAt),
		task.ID,
	)
}

// DeleteTask permanently removes a task record by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", id, id)
}
