package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

const importDoc = `
- title: Set up CI
  description: Pipeline for the new repo
  priority: high
- title: Write onboarding doc
  description: Steps for new joiners
  due_date: "2025-07-01"
`

// sequencingAPI assigns incrementing IDs to created tasks.
type sequencingAPI struct {
	testutil.MockTaskAPI
	next int
}

func (a *sequencingAPI) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	a.next++
	a.CreateTask = &domain.Task{
		ID:          a.next,
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		Priority:    draft.Priority,
		DueDate:     draft.DueDate,
	}
	return a.MockTaskAPI.Create(ctx, draft)
}

func TestImportTasks_Execute_Success(t *testing.T) {
	st := store.New()
	api := &sequencingAPI{}
	notifier := &testutil.MockNotifier{}
	uc := NewImportTasks(api, st, notifier, &mockSession{}, fixedClock())

	out, err := uc.Execute(context.Background(), ImportTasksInput{Reader: strings.NewReader(importDoc)})
	require.NoError(t, err)
	require.Len(t, out.Created, 2)

	assert.Equal(t, "Set up CI", out.Created[0].Title)
	assert.Equal(t, domain.PriorityHigh, out.Created[0].Priority)
	assert.Equal(t, domain.PriorityMedium, out.Created[1].Priority)
	require.NotNil(t, out.Created[1].DueDate)
	assert.Equal(t, "2025-07-01", out.Created[1].DueDate.Format("2006-01-02"))

	assert.Equal(t, 2, st.Len())
	assert.Equal(t, []string{"Imported 2 tasks"}, notifier.Texts())
}

func TestImportTasks_Execute_ValidatesBeforeAnyRequest(t *testing.T) {
	doc := `
- title: Good task
  description: fine
- title: ""
  description: missing the title
`
	st := store.New()
	api := &sequencingAPI{}
	uc := NewImportTasks(api, st, &testutil.MockNotifier{}, &mockSession{}, fixedClock())

	_, err := uc.Execute(context.Background(), ImportTasksInput{Reader: strings.NewReader(doc)})
	require.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Contains(t, err.Error(), "task 2")

	// Nothing was created: the bad draft aborted the whole batch up front.
	assert.Empty(t, api.CreateCalls)
	assert.Equal(t, 0, st.Len())
}

func TestImportTasks_Execute_BadDueDate(t *testing.T) {
	doc := `
- title: t
  description: d
  due_date: "01/07/2025"
`
	uc := NewImportTasks(&sequencingAPI{}, store.New(), &testutil.MockNotifier{}, &mockSession{}, fixedClock())
	_, err := uc.Execute(context.Background(), ImportTasksInput{Reader: strings.NewReader(doc)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "due_date")
}

func TestImportTasks_Execute_EmptyFile(t *testing.T) {
	uc := NewImportTasks(&sequencingAPI{}, store.New(), &testutil.MockNotifier{}, &mockSession{}, fixedClock())
	_, err := uc.Execute(context.Background(), ImportTasksInput{Reader: strings.NewReader("[]")})
	require.Error(t, err)
}
