package cli

import (
	"github.com/spf13/cobra"

	"fieldtask/internal/client"
)

// newListCommand creates the list command, which fetches and displays all
// tasks with pending visits first
func newListCommand(session *client.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks, pending first",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := session.Refresh(cmd.Context())
			if err != nil {
				return NewErrorHandler().Handle("list tasks", err)
			}

			printTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}
}
