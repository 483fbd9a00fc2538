package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/store"
)

// StatusAction identifies which user action requested the change.
// The action decides both the target status and the notification wording.
type StatusAction string

const (
	ActionStart    StatusAction = "start"    // -> in_progress
	ActionComplete StatusAction = "complete" // -> completed
	ActionToggle   StatusAction = "toggle"   // completion indicator flip
)

// ChangeStatusInput contains the parameters for a status change.
type ChangeStatusInput struct {
	Action StatusAction
	TaskID int
}

// ChangeStatusOutput contains the updated task as returned by the server.
type ChangeStatusOutput struct {
	Task domain.Task
}

// Refresher triggers a full refetch. ChangeStatus uses it when the
// server reports the task gone: the local copy is stale.
type Refresher interface {
	Execute(ctx context.Context) (*RefreshTasksOutput, error)
}

// ChangeStatus performs a status mutation round trip. The change is not
// applied speculatively: the store keeps its server-confirmed value
// until the response arrives, then takes the returned task.
type ChangeStatus struct {
	api       domain.TaskAPI
	store     *store.Store
	notifier  domain.Notifier
	sess      Session
	refresher Refresher
}

// NewChangeStatus creates a new ChangeStatus use case.
func NewChangeStatus(api domain.TaskAPI, st *store.Store, notifier domain.Notifier, sess Session) *ChangeStatus {
	return &ChangeStatus{
		api:      api,
		store:    st,
		notifier: notifier,
		sess:     sess,
	}
}

// WithRefresher sets the refetch hook used on stale-task failures.
func (uc *ChangeStatus) WithRefresher(r Refresher) *ChangeStatus {
	uc.refresher = r
	return uc
}

// Execute resolves the target status, performs the round trip and
// upserts the server's task on success. Exactly one notification is
// emitted per attempt.
func (uc *ChangeStatus) Execute(ctx context.Context, in ChangeStatusInput) (*ChangeStatusOutput, error) {
	target, err := uc.target(in)
	if err != nil {
		return nil, err
	}

	task, err := uc.api.UpdateStatus(ctx, in.TaskID, target)
	if err != nil {
		invalidateOnAuthError(uc.sess, err)
		if uc.notifier != nil {
			uc.notifier.Notify(notify.Error("Failed to update task"))
		}
		if domain.IsNotFound(err) && uc.refresher != nil {
			// The task vanished server-side; resync the whole view.
			_, _ = uc.refresher.Execute(ctx)
		}
		return nil, fmt.Errorf("update task %d: %w", in.TaskID, err)
	}

	uc.store.Upsert(*task)
	if uc.notifier != nil {
		uc.notifier.Notify(notify.Success(successText(in.Action, task.Status)))
	}
	return &ChangeStatusOutput{Task: *task}, nil
}

// target maps the action to the status to request.
func (uc *ChangeStatus) target(in ChangeStatusInput) (domain.Status, error) {
	switch in.Action {
	case ActionStart:
		return domain.StatusInProgress, nil
	case ActionComplete:
		return domain.StatusCompleted, nil
	case ActionToggle:
		current, ok := uc.store.Get(in.TaskID)
		if !ok {
			return "", domain.ErrTaskNotFound
		}
		return current.Status.Toggled(), nil
	default:
		return "", fmt.Errorf("unknown status action %q", in.Action)
	}
}

func successText(action StatusAction, status domain.Status) string {
	switch action {
	case ActionStart:
		return "Task started!"
	case ActionComplete:
		return "Task completed!"
	default:
		return "Task marked as " + string(status)
	}
}
