// Package cli provides the command-line interface for taskdeck.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/session"
)

// Command group IDs.
const (
	groupAuth    = "auth"
	groupTask    = "task"
	groupAccount = "account"
)

// NewRootCommand creates the root command for taskdeck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Task management client",
		Long: `taskdeck is a terminal client for the task service.

Running it without a subcommand opens the interactive dashboard, which
stays live: server-side changes arrive over a push channel and refresh
the view automatically.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchDashboard(cmd, c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupAuth, Title: "Authentication Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupAccount, Title: "Account Commands:"},
	)

	root.AddCommand(
		newLoginCommand(c),
		newRegisterCommand(c),
		newLogoutCommand(c),
		newTaskCommand(c),
		newProfileCommand(c),
		newAnalyticsCommand(c),
		newAskCommand(c),
	)
	return root
}

// requireSession restores the stored session or fails with a hint.
func requireSession(c *app.Container) (*session.Session, error) {
	return c.RestoreSession()
}
