// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/store"
)

// RefreshTasksOutput contains the result of a full refetch.
type RefreshTasksOutput struct {
	Count int // Number of tasks in the store after the replace
}

// RefreshTasks fetches the full task collection and replaces the store
// contents. On failure the store is left untouched: no partial overwrite.
type RefreshTasks struct {
	api      domain.TaskAPI
	store    *store.Store
	notifier domain.Notifier
	sess     Session
	logger   domain.Logger
}

// NewRefreshTasks creates a new RefreshTasks use case.
func NewRefreshTasks(api domain.TaskAPI, st *store.Store, notifier domain.Notifier, sess Session, logger domain.Logger) *RefreshTasks {
	return &RefreshTasks{
		api:      api,
		store:    st,
		notifier: notifier,
		sess:     sess,
		logger:   logger,
	}
}

// Execute performs the refetch. A failed fetch notifies the user and
// returns the error; it never clears previously loaded tasks, so the
// view can keep rendering the last known state.
func (uc *RefreshTasks) Execute(ctx context.Context) (*RefreshTasksOutput, error) {
	tasks, err := uc.api.FetchAll(ctx)
	if err != nil {
		invalidateOnAuthError(uc.sess, err)
		if uc.notifier != nil {
			uc.notifier.Notify(notify.Error("Failed to fetch tasks"))
		}
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}

	uc.store.ReplaceAll(tasks)
	if uc.logger != nil {
		uc.logger.Debug("task store refreshed", "count", len(tasks))
	}
	return &RefreshTasksOutput{Count: len(tasks)}, nil
}
