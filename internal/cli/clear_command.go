package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldtask/internal/client"
	"fieldtask/internal/errors"
)

// newClearCommand creates the clear command, which deletes every completed
// task. Deletions run a few at a time; a single failure never stops the
// remaining ones, and every outcome is reported.
func newClearCommand(session *client.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all completed tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Refresh first so the clear operates on the current collection
			if _, err := session.Refresh(cmd.Context()); err != nil {
				return NewErrorHandler().Handle("clear completed tasks", err)
			}

			result, err := session.ClearCompleted(cmd.Context())
			if err != nil {
				return NewErrorHandler().Handle("clear completed tasks", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d completed task(s).\n", len(result.Deleted))

			if len(result.Failures) == 0 {
				return nil
			}

			for _, failure := range result.Failures {
				fmt.Fprintf(cmd.OutOrStdout(), "Failed to delete %s: %s\n", failure.ID, errors.GetUserMessage(failure.Err))
			}
			return fmt.Errorf("%d deletion(s) failed", len(result.Failures))
		},
	}
}
