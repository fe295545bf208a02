package domain

import (
	"fieldtask/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:            domainTask.ID,
		CustomerName:  domainTask.CustomerName,
		Location:      domainTask.Location,
		TaskType:      string(domainTask.TaskType),
		ScheduledTime: domainTask.ScheduledTime,
		Notes:         domainTask.Notes,
		Status:        string(domainTask.Status),
		CompletedAt:   domainTask.CompletedAt,
		CreatedAt:     domainTask.CreatedAt,
		UpdatedAt:     domainTask.UpdatedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:            dbTask.ID,
		CustomerName:  dbTask.CustomerName,
		Location:      dbTask.Location,
		TaskType:      TaskType(dbTask.TaskType),
		ScheduledTime: dbTask.ScheduledTime,
		Notes:         dbTask.Notes,
		Status:        Status(dbTask.Status),
		CompletedAt:   dbTask.CompletedAt,
		CreatedAt:     dbTask.CreatedAt,
		UpdatedAt:     dbTask.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(*task)
	}
	return domainTasks
}
