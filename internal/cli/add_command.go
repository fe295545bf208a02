package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldtask/internal/client"
	"fieldtask/internal/domain"
)

// newAddCommand creates the add command, which schedules a new task
func newAddCommand(session *client.Session) *cobra.Command {
	var (
		customer  string
		location  string
		taskType  string
		scheduled string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a new customer visit",
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduledTime, err := parseTimestamp(scheduled)
			if err != nil {
				return NewErrorHandler().Handle("add task", err)
			}

			tasks, err := session.Create(cmd.Context(), client.CreateParams{
				CustomerName:  customer,
				Location:      location,
				TaskType:      domain.TaskType(taskType),
				ScheduledTime: scheduledTime,
				Notes:         notes,
			})
			if err != nil {
				return NewErrorHandler().Handle("add task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Task scheduled for %s at %s.\n", customer, location)
			printTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer name (required)")
	cmd.Flags().StringVar(&location, "location", "", "visit location (required)")
	cmd.Flags().StringVar(&taskType, "type", "", fmt.Sprintf("task type, one of %v (required)", domain.TaskTypes()))
	cmd.Flags().StringVar(&scheduled, "at", "", "scheduled time (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	cmd.MarkFlagRequired("customer")
	cmd.MarkFlagRequired("location")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("at")

	return cmd
}
