package tasksync

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/testutil"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type nopSession struct{}

func (nopSession) Invalidate() bool { return false }

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

// seqAPI serves a different fetch result per call, sticking on the last.
type seqAPI struct {
	testutil.MockTaskAPI
	mu        sync.Mutex
	responses [][]domain.Task
	calls     int
}

func (a *seqAPI) FetchAll(_ context.Context) ([]domain.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	i := a.calls
	if i >= len(a.responses) {
		i = len(a.responses) - 1
	}
	a.calls++
	return a.responses[i], nil
}

func TestEngine_PushSignalTriggersFullReplace(t *testing.T) {
	st := store.New()
	api := &seqAPI{responses: [][]domain.Task{
		{{ID: 1}, {ID: 2}},
		{{ID: 2}, {ID: 3}},
	}}
	refresher := usecase.NewRefreshTasks(api, st, &testutil.MockNotifier{}, nopSession{}, nopLogger{})

	signals := make(chan struct{}, 1)
	engine := NewEngine(st, refresher, &testutil.MockNotifier{}, signals, nopLogger{}, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Run(ctx)

	// Run's initial refresh loads the first snapshot.
	waitFor(t, time.Second, func() bool {
		tasks := st.Tasks()
		return len(tasks) == 2 && tasks[0].ID == 1
	})

	signals <- struct{}{}
	waitFor(t, time.Second, func() bool {
		tasks := st.Tasks()
		return len(tasks) == 2 && tasks[0].ID == 2 && tasks[1].ID == 3
	})

	// Task 1 is gone entirely, not merged.
	_, ok := st.Get(1)
	assert.False(t, ok)
}

func TestEngine_AutoPruneFiresOnceForCompletedTasks(t *testing.T) {
	st := store.New()
	api := &testutil.MockTaskAPI{FetchAllTasks: []domain.Task{
		{ID: 1, Status: domain.StatusPending},
		{ID: 2, Status: domain.StatusCompleted},
	}}
	notifier := &testutil.MockNotifier{}
	refresher := usecase.NewRefreshTasks(api, st, notifier, nopSession{}, nopLogger{})

	engine := NewEngine(st, refresher, notifier, make(chan struct{}), nopLogger{},
		Options{PruneEnabled: true, PruneDelay: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Run(ctx)

	waitFor(t, time.Second, func() bool {
		for _, text := range notifier.Texts() {
			if text == pruneNotification {
				return true
			}
		}
		return false
	})

	// The refetch returns the same completed set, so the timer must not
	// re-arm and notify again.
	time.Sleep(100 * time.Millisecond)
	count := 0
	for _, text := range notifier.Texts() {
		if text == pruneNotification {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestEngine_AutoPruneDisabled(t *testing.T) {
	st := store.New()
	api := &testutil.MockTaskAPI{FetchAllTasks: []domain.Task{
		{ID: 1, Status: domain.StatusCompleted},
	}}
	notifier := &testutil.MockNotifier{}
	refresher := usecase.NewRefreshTasks(api, st, notifier, nopSession{}, nopLogger{})

	engine := NewEngine(st, refresher, notifier, make(chan struct{}), nopLogger{},
		Options{PruneEnabled: false, PruneDelay: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Run(ctx)

	waitFor(t, time.Second, func() bool { return st.Len() == 1 })
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, notifier.Texts())
}

func TestEngine_RefreshFailureKeepsStore(t *testing.T) {
	st := store.New()
	st.ReplaceAll([]domain.Task{{ID: 7}})

	api := &testutil.MockTaskAPI{FetchAllErr: &domain.NetworkError{Err: context.DeadlineExceeded}}
	notifier := &testutil.MockNotifier{}
	refresher := usecase.NewRefreshTasks(api, st, notifier, nopSession{}, nopLogger{})

	signals := make(chan struct{}, 1)
	engine := NewEngine(st, refresher, notifier, signals, nopLogger{}, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Run(ctx)

	waitFor(t, time.Second, func() bool { return notifier.Len() >= 1 })
	require.Equal(t, []domain.Task{{ID: 7}}, st.Tasks())
	assert.Contains(t, notifier.Texts(), "Failed to fetch tasks")
}
