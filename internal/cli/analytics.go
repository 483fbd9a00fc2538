package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// newAnalyticsCommand creates the analytics command.
func newAnalyticsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "analytics",
		Short:   "Show productivity metrics",
		GroupID: groupAccount,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := requireSession(c)
			if err != nil {
				return err
			}
			out, err := c.ShowAnalyticsUseCase(sess).Execute(cmd.Context())
			if err != nil {
				return err
			}
			printAnalytics(cmd, &out.Analytics)
			return nil
		},
	}
}

func printAnalytics(cmd *cobra.Command, a *domain.Analytics) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Productivity score:\t%d/100\n", a.ProductivityScore)
	fmt.Fprintf(w, "Total tasks:\t%d\n", a.TotalTasks)
	fmt.Fprintf(w, "Completed:\t%d (%.1f%%)\n", a.CompletedTasks, a.CompletionRate)
	fmt.Fprintf(w, "In progress:\t%d\n", a.InProgressTasks)
	fmt.Fprintf(w, "Pending:\t%d\n", a.PendingTasks)
	if a.OverdueTasks > 0 {
		fmt.Fprintf(w, "Overdue:\t%d\n", a.OverdueTasks)
	}
	if a.AvgCompletionHours > 0 {
		fmt.Fprintf(w, "Avg completion time:\t%.1fh\n", a.AvgCompletionHours)
	}
	if len(a.TasksByPriority) > 0 {
		fmt.Fprintf(w, "By priority:\tlow %d / medium %d / high %d\n",
			a.TasksByPriority[domain.PriorityLow],
			a.TasksByPriority[domain.PriorityMedium],
			a.TasksByPriority[domain.PriorityHigh])
	}
	w.Flush()

	if len(a.WeeklyPattern) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nCompletions by weekday:")
		for _, d := range a.WeeklyPattern {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-4s %s (%d)\n", d.Day, strings.Repeat("#", d.Completed), d.Completed)
		}
	}
	if len(a.Insights) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nInsights:")
		for _, insight := range a.Insights {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", insight)
		}
	}
}
