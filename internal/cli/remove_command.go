package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldtask/internal/client"
)

// newRemoveCommand creates the rm command, which deletes a completed task
func newRemoveCommand(session *client.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.Delete(cmd.Context(), args[0]); err != nil {
				return NewErrorHandler().Handle("delete task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Task %s deleted.\n", args[0])
			return nil
		},
	}
}
