package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newAskCommand creates the ask command.
func newAskCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "ask <message>",
		Short:   "Ask the task assistant",
		GroupID: groupAccount,
		Long: `Send a question to the assistant, which answers about your tasks
and productivity.

Examples:
  taskdeck ask "what should I work on next?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireSession(c)
			if err != nil {
				return err
			}
			out, err := c.AskAssistantUseCase(sess).Execute(cmd.Context(), usecase.AskAssistantInput{
				Message: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Reply)
			return nil
		},
	}
}
