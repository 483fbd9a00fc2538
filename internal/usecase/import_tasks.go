package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/store"
)

// ImportTasksInput contains the parameters for a bulk import.
type ImportTasksInput struct {
	Reader io.Reader // YAML document: a sequence of task drafts
}

// ImportTasksOutput contains the result of a bulk import.
type ImportTasksOutput struct {
	Created []domain.Task
}

// draftEntry is the YAML shape of one imported draft.
type draftEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Priority    string `yaml:"priority"`
	DueDate     string `yaml:"due_date"` // YYYY-MM-DD, optional
}

// ImportTasks creates tasks from a YAML file. All drafts are validated
// before the first request; creation then runs sequentially, each task
// entering the store only after its server response.
type ImportTasks struct {
	api      domain.TaskAPI
	store    *store.Store
	notifier domain.Notifier
	sess     Session
	clock    domain.Clock
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(api domain.TaskAPI, st *store.Store, notifier domain.Notifier, sess Session, clock domain.Clock) *ImportTasks {
	return &ImportTasks{
		api:      api,
		store:    st,
		notifier: notifier,
		sess:     sess,
		clock:    clock,
	}
}

// Execute parses, validates and creates the drafts.
func (uc *ImportTasks) Execute(ctx context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	var entries []draftEntry
	if err := yaml.NewDecoder(in.Reader).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("import file contains no tasks")
	}

	now := uc.clock.Now()
	drafts := make([]domain.TaskDraft, 0, len(entries))
	for i, e := range entries {
		draft, err := e.toDraft()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		draft.Normalize()
		if err := draft.Validate(now); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		drafts = append(drafts, draft)
	}

	out := &ImportTasksOutput{}
	for i, draft := range drafts {
		task, err := uc.api.Create(ctx, draft)
		if err != nil {
			invalidateOnAuthError(uc.sess, err)
			if uc.notifier != nil {
				uc.notifier.Notify(notify.Error(fmt.Sprintf("Import stopped: %d of %d tasks created", i, len(drafts))))
			}
			return out, fmt.Errorf("create task %d: %w", i+1, err)
		}
		uc.store.Upsert(*task)
		out.Created = append(out.Created, *task)
	}

	if uc.notifier != nil {
		uc.notifier.Notify(notify.Success(fmt.Sprintf("Imported %d tasks", len(out.Created))))
	}
	return out, nil
}

func (e *draftEntry) toDraft() (domain.TaskDraft, error) {
	draft := domain.TaskDraft{
		Title:       e.Title,
		Description: e.Description,
		Status:      domain.Status(e.Status),
		Priority:    domain.Priority(e.Priority),
	}
	if e.DueDate != "" {
		due, err := time.Parse("2006-01-02", e.DueDate)
		if err != nil {
			return domain.TaskDraft{}, fmt.Errorf("invalid due_date %q (want YYYY-MM-DD)", e.DueDate)
		}
		draft.DueDate = &due
	}
	return draft, nil
}
