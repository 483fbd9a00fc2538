package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/store"
)

// CreateTaskInput contains the parameters for creating a task.
type CreateTaskInput struct {
	Draft domain.TaskDraft
}

// CreateTaskOutput contains the created task as returned by the server.
type CreateTaskOutput struct {
	Task domain.Task
}

// CreateTask submits a draft to the server. Creation is not optimistic:
// the task enters the store only after the server responds with its
// authoritative ID; the client never fabricates a placeholder.
type CreateTask struct {
	api      domain.TaskAPI
	store    *store.Store
	notifier domain.Notifier
	sess     Session
	clock    domain.Clock
	logger   domain.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(api domain.TaskAPI, st *store.Store, notifier domain.Notifier, sess Session, clock domain.Clock, logger domain.Logger) *CreateTask {
	return &CreateTask{
		api:      api,
		store:    st,
		notifier: notifier,
		sess:     sess,
		clock:    clock,
		logger:   logger,
	}
}

// Execute validates and submits the draft. Validation failures are
// returned for inline display without a notification; a submission that
// reaches the server ends in exactly one notification either way.
func (uc *CreateTask) Execute(ctx context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	draft := in.Draft
	draft.Normalize()
	if err := draft.Validate(uc.clock.Now()); err != nil {
		return nil, err
	}

	task, err := uc.api.Create(ctx, draft)
	if err != nil {
		invalidateOnAuthError(uc.sess, err)
		if uc.notifier != nil {
			uc.notifier.Notify(notify.Error("Failed to create task"))
		}
		return nil, fmt.Errorf("create task: %w", err)
	}

	uc.store.Upsert(*task)
	if uc.notifier != nil {
		uc.notifier.Notify(notify.Success("Task created successfully!"))
	}
	if uc.logger != nil {
		uc.logger.Info("task created", "id", task.ID, "title", task.Title)
	}
	return &CreateTaskOutput{Task: *task}, nil
}
