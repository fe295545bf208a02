package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fieldtask/internal/client"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// newDoneCommand creates the done command, which marks a task completed.
// The completion timestamp is always sent explicitly; the server never
// defaults it.
func newDoneCommand(session *client.Session) *cobra.Command {
	var completedAt string

	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at := timeNow().UTC()
			if completedAt != "" {
				parsed, err := parseTimestamp(completedAt)
				if err != nil {
					return NewErrorHandler().Handle("complete task", err)
				}
				at = parsed
			}

			if err := session.Complete(cmd.Context(), args[0], at); err != nil {
				return NewErrorHandler().Handle("complete task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Task %s completed at %s.\n", args[0], at.Format(time.RFC3339))
			printTasks(cmd.OutOrStdout(), session.Tasks())
			return nil
		},
	}

	cmd.Flags().StringVar(&completedAt, "at", "", "completion time (default: now)")

	return cmd
}
