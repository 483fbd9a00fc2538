package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/store"
)

// DeleteTaskInput contains the parameters for deleting a task.
// Confirmed must be set by an explicit confirmation step; without it the
// adapter is never called.
type DeleteTaskInput struct {
	TaskID    int
	Confirmed bool
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	AlreadyGone bool // True if the server had already deleted the task
}

// DeleteTask removes a task after explicit confirmation.
type DeleteTask struct {
	api      domain.TaskAPI
	store    *store.Store
	notifier domain.Notifier
	sess     Session
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(api domain.TaskAPI, st *store.Store, notifier domain.Notifier, sess Session) *DeleteTask {
	return &DeleteTask{
		api:      api,
		store:    st,
		notifier: notifier,
		sess:     sess,
	}
}

// Execute deletes the task. A 404 from the server means someone else got
// there first; that counts as success, not a user-facing error.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	if !in.Confirmed {
		return nil, domain.ErrConfirmationRequired
	}

	err := uc.api.Delete(ctx, in.TaskID)
	if err != nil && !domain.IsNotFound(err) {
		invalidateOnAuthError(uc.sess, err)
		if uc.notifier != nil {
			uc.notifier.Notify(notify.Error("Failed to delete"))
		}
		return nil, fmt.Errorf("delete task %d: %w", in.TaskID, err)
	}

	uc.store.Remove(in.TaskID)
	if uc.notifier != nil {
		uc.notifier.Notify(notify.Success("Task deleted"))
	}
	return &DeleteTaskOutput{AlreadyGone: domain.IsNotFound(err)}, nil
}
