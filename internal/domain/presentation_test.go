package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayOrder(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2024, 1, 1, hour, 0, 0, 0, time.UTC)
	}
	completedAt := at(18)

	pending := func(id string, hour int) Task {
		return Task{ID: id, CustomerName: "c", Location: "l", TaskType: TaskTypeRepair, ScheduledTime: at(hour), Status: StatusPending}
	}
	completed := func(id string, hour int) Task {
		return Task{ID: id, CustomerName: "c", Location: "l", TaskType: TaskTypeRepair, ScheduledTime: at(hour), Status: StatusCompleted, CompletedAt: &completedAt}
	}

	orderOf := func(tasks []Task) []string {
		ids := make([]string, len(tasks))
		for i, task := range tasks {
			ids[i] = task.ID
		}
		return ids
	}

	tests := []struct {
		name     string
		input    []Task
		expected []string
	}{
		{
			name:     "should handle an empty list",
			input:    []Task{},
			expected: []string{},
		},
		{
			name:     "should place pending tasks before completed tasks",
			input:    []Task{completed("a", 8), pending("b", 9)},
			expected: []string{"b", "a"},
		},
		{
			name:     "should order each status group by scheduled time ascending",
			input:    []Task{pending("a", 14), completed("b", 12), pending("c", 9), completed("d", 8)},
			expected: []string{"c", "a", "d", "b"},
		},
		{
			name:     "should keep input order for equal scheduled times",
			input:    []Task{pending("a", 9), pending("b", 9), pending("c", 9)},
			expected: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ordered := DisplayOrder(tt.input)
			assert.Equal(t, tt.expected, orderOf(ordered))
		})
	}
}

func TestDisplayOrder_DoesNotModifyInput(t *testing.T) {
	completedAt := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)
	input := []Task{
		{ID: "a", ScheduledTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Status: StatusCompleted, CompletedAt: &completedAt},
		{ID: "b", ScheduledTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), Status: StatusPending},
	}

	ordered := DisplayOrder(input)

	require.Len(t, ordered, 2)
	assert.Equal(t, "b", ordered[0].ID)
	// Input slice retains its original order
	assert.Equal(t, "a", input[0].ID)
	assert.Equal(t, "b", input[1].ID)
}
