package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/tui"
)

// launchDashboard starts the interactive dashboard. The push listener
// and the sync engine run alongside the program and stop when it exits.
func launchDashboard(cmd *cobra.Command, c *app.Container) error {
	sess, err := c.RestoreSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	feed := notify.NewFeed(16)

	// Push signals feed the sync engine. When push is disabled the
	// engine still runs for the initial fetch and auto-prune.
	if listener := c.PushListener(); listener != nil {
		go listener.Run(ctx)
		go c.SyncEngine(sess, feed, listener.Signals()).Run(ctx)
	} else {
		go c.SyncEngine(sess, feed, make(chan struct{})).Run(ctx)
	}

	// Coalesce store mutations into a single pending wakeup.
	changes := make(chan struct{}, 1)
	sess.Store().OnChange(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	model := tui.New(tui.Deps{
		Store:        sess.Store(),
		Feed:         feed,
		Changes:      changes,
		Refresh:      c.RefreshTasksUseCase(sess, feed),
		Create:       c.CreateTaskUseCase(sess, feed),
		ChangeStatus: c.ChangeStatusUseCase(sess, feed),
		Delete:       c.DeleteTaskUseCase(sess, feed),
		Analytics:    c.ShowAnalyticsUseCase(sess),
		Username:     sess.Username(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// An expired token tears the session down mid-run; end the program
	// instead of leaving a dashboard that can no longer sync.
	sess.OnTeardown(cancel)

	_, err = p.Run()
	cancel()
	c.DisposeSession()
	if errors.Is(err, tea.ErrProgramKilled) && !sess.Active() {
		return domain.ErrSessionExpired
	}
	return err
}
