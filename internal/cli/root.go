package cli

import (
	"context"

	"github.com/spf13/cobra"

	"fieldtask/internal/client"
	"fieldtask/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	session *client.Session
	config  *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands attached
func NewRootCommand(session *client.Session, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		session: session,
		config:  cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "fieldtask",
		Short: "Track scheduled customer visits from the command line",
		Long: `FieldTask is a command-line client for the field task service.
It creates, lists, completes and deletes scheduled customer-visit tasks
against a running fieldtaskd server.

EXAMPLES:
  fieldtask add --customer "Acme" --location "12 Elm St" --type Repair --at 2024-01-01T09:00:00Z
  fieldtask list                          # List all tasks, pending first
  fieldtask done 4f7c…                    # Mark a task completed now
  fieldtask done 4f7c… --at 2024-01-01T09:30:00Z
  fieldtask rm 4f7c…                      # Delete a completed task
  fieldtask clear                         # Delete all completed tasks

CONFIGURATION:
  FIELDTASK_SERVER_URL                    Server base URL (default: http://localhost:8080)
  FIELDTASK_REQUEST_TIMEOUT               Per-request timeout (default: 10s)
  FIELDTASK_DEBUG                         Enable request debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// addSubcommands attaches all subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(newAddCommand(r.session))
	r.cmd.AddCommand(newListCommand(r.session))
	r.cmd.AddCommand(newDoneCommand(r.session))
	r.cmd.AddCommand(newRemoveCommand(r.session))
	r.cmd.AddCommand(newClearCommand(r.session))
}

// Execute runs the root command with the given context
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Command returns the underlying cobra command, used by tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}
