package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"fieldtask/internal/domain"
	"fieldtask/internal/errors"
)

// timestampLayouts are the accepted input formats for timestamps, tried
// in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimestamp parses a user-supplied timestamp string
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewValidationError(
		fmt.Sprintf("unrecognized timestamp %q, expected RFC3339 or \"2006-01-02 15:04\"", value), nil)
}

// printTasks writes the tasks as a table in their given order
func printTasks(w io.Writer, tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tCUSTOMER\tLOCATION\tTYPE\tSCHEDULED\tCOMPLETED")
	for _, task := range tasks {
		completed := "-"
		if task.CompletedAt != nil {
			completed = task.CompletedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Status,
			task.CustomerName,
			task.Location,
			task.TaskType,
			task.ScheduledTime.Format(time.RFC3339),
			completed,
		)
	}
	tw.Flush()
}
