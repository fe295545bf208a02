package domain

import (
	"sort"
)

// statusRank orders Pending strictly before Completed.
func statusRank(s Status) int {
	if s == StatusCompleted {
		return 1
	}
	return 0
}

// DisplayOrder returns a new slice holding the tasks in display order:
// Pending tasks before Completed tasks, and within each status group by
// scheduled time ascending. The sort is stable, so ties beyond the two
// keys keep their relative order from the input. The input is not modified.
func DisplayOrder(tasks []Task) []Task {
	ordered := make([]Task, len(tasks))
	copy(ordered, tasks)

	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := statusRank(ordered[i].Status), statusRank(ordered[j].Status)
		if ri != rj {
			return ri < rj
		}
		return ordered[i].ScheduledTime.Before(ordered[j].ScheduledTime)
	})

	return ordered
}
