package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Short:   "Work with tasks",
		GroupID: groupTask,
	}
	cmd.AddCommand(
		newTaskListCommand(c),
		newTaskNewCommand(c),
		newTaskStatusCommand(c, "start", "Start working on a task", usecase.ActionStart),
		newTaskStatusCommand(c, "complete", "Mark a task as completed", usecase.ActionComplete),
		newTaskStatusCommand(c, "toggle", "Flip a task's completion state", usecase.ActionToggle),
		newTaskDeleteCommand(c),
		newTaskImportCommand(c),
	)
	return cmd
}

// newTaskListCommand creates the task list command.
func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status string
		Search string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Fetch and list tasks.

Examples:
  # All tasks
  taskdeck task list

  # Only pending tasks mentioning "report"
  taskdeck task list --status pending --search report`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := requireSession(c)
			if err != nil {
				return err
			}
			notifier := &notify.Printer{Out: cmd.ErrOrStderr()}
			if _, err := c.RefreshTasksUseCase(sess, notifier).Execute(cmd.Context()); err != nil {
				return err
			}

			proj := domain.Projection{Search: opts.Search, StatusFilter: opts.Status}
			if proj.StatusFilter == "" {
				proj.StatusFilter = domain.StatusFilterAll
			}
			tasks := proj.Apply(sess.Store().Tasks())
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found")
				return nil
			}
			printTaskTable(cmd, tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Filter by status (pending, in_progress, completed)")
	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "Case-insensitive search over title and description")
	return cmd
}

// printTaskTable writes tasks in a tab-aligned table.
func printTaskTable(cmd *cobra.Command, tasks []domain.Task) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tDUE\tTITLE")
	now := time.Now()
	for i := range tasks {
		t := &tasks[i]
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
			if t.Overdue(now) {
				due += " (overdue)"
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Status, t.Priority, due, t.Title)
	}
	w.Flush()
}

// newTaskNewCommand creates the task new command.
func newTaskNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Status      string
		Due         string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a task",
		Long: `Create a task. The task appears locally only after the server
has assigned its ID.

Examples:
  taskdeck task new --title "Write report" --description "Q3 numbers" --priority high
  taskdeck task new --title "Pay rent" --description "Monthly" --due 2026-09-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := requireSession(c)
			if err != nil {
				return err
			}

			draft := domain.TaskDraft{
				Title:       opts.Title,
				Description: opts.Description,
				Status:      domain.Status(opts.Status),
				Priority:    domain.Priority(opts.Priority),
			}
			if opts.Due != "" {
				due, err := time.ParseInLocation("2006-01-02", opts.Due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid due date %q: expected YYYY-MM-DD", opts.Due)
				}
				draft.DueDate = &due
			}

			notifier := &notify.Printer{Out: cmd.OutOrStdout()}
			uc := c.CreateTaskUseCase(sess, notifier)
			out, err := uc.Execute(cmd.Context(), usecase.CreateTaskInput{Draft: draft})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title (required)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description (required)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: low, medium or high (default medium)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Initial status (default pending)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

// newTaskStatusCommand creates one of the status-change commands.
func newTaskStatusCommand(c *app.Container, use, short string, action usecase.StatusAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			sess, err := requireSession(c)
			if err != nil {
				return err
			}
			notifier := &notify.Printer{Out: cmd.OutOrStdout()}
			if _, err := c.RefreshTasksUseCase(sess, notifier).Execute(cmd.Context()); err != nil {
				return err
			}
			uc := c.ChangeStatusUseCase(sess, notifier)
			_, err = uc.Execute(cmd.Context(), usecase.ChangeStatusInput{TaskID: id, Action: action})
			return err
		},
	}
}

// newTaskDeleteCommand creates the task delete command.
func newTaskDeleteCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long: `Delete a task. Asks for confirmation unless --yes is given;
the request is only sent after the confirmation step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			sess, err := requireSession(c)
			if err != nil {
				return err
			}

			confirmed := yes
			if !confirmed {
				answer, err := promptLine(cmd, fmt.Sprintf("Delete task #%d? [y/N] ", id))
				if err != nil {
					return err
				}
				confirmed = strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}

			notifier := &notify.Printer{Out: cmd.OutOrStdout()}
			uc := c.DeleteTaskUseCase(sess, notifier)
			_, err = uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id, Confirmed: confirmed})
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// newTaskImportCommand creates the task import command.
func newTaskImportCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create tasks from a YAML file",
		Long: `Create tasks in bulk from a YAML sequence of drafts.

File format:
  - title: Write report
    description: Q3 numbers
    priority: high
    due_date: 2026-09-01
  - title: Review PR
    description: sync adapter

All entries are validated before the first request is sent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireSession(c)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			notifier := &notify.Printer{Out: cmd.OutOrStdout()}
			uc := c.ImportTasksUseCase(sess, notifier)
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{Reader: f})
			if err != nil {
				return err
			}
			for _, t := range out.Created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s\n", t.ID, t.Title)
			}
			return nil
		},
	}
	return cmd
}
