// Package tasksync keeps the local task store consistent with the
// server. It reacts to push signals with a full refetch and supervises
// the completed-task cleanup timer.
package tasksync

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// pruneNotification is shown once per cleanup trigger.
const pruneNotification = "Completed tasks removed from view"

// Refresher performs the full fetch-and-replace cycle.
type Refresher interface {
	Execute(ctx context.Context) (*usecase.RefreshTasksOutput, error)
}

// Options configures an Engine.
// Fields are ordered to minimize memory padding.
type Options struct {
	PruneDelay   time.Duration
	PruneEnabled bool
}

// Engine drives refetches from push signals and runs the auto-prune
// timer. It owns no task state itself; the store stays the single
// source of truth.
// Fields are ordered to minimize memory padding.
type Engine struct {
	store      *store.Store
	refresher  Refresher
	notifier   domain.Notifier
	logger     domain.Logger
	signals    <-chan struct{}
	pruneTimer *time.Timer
	lastPruned string
	mu         sync.Mutex
	opts       Options
}

// NewEngine creates an Engine. signals is the push listener's channel;
// every received value triggers a full refetch.
func NewEngine(st *store.Store, refresher Refresher, notifier domain.Notifier, signals <-chan struct{}, logger domain.Logger, opts Options) *Engine {
	return &Engine{
		store:     st,
		refresher: refresher,
		notifier:  notifier,
		logger:    logger,
		signals:   signals,
		opts:      opts,
	}
}

// Run performs an initial refetch, then reacts to push signals until ctx
// is cancelled. The auto-prune timer is armed from store changes for as
// long as Run is active.
func (e *Engine) Run(ctx context.Context) {
	e.store.OnChange(func() { e.schedulePrune(ctx) })
	e.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			e.stopPruneTimer()
			return
		case <-e.signals:
			e.logger.Info("update signal received, refetching")
			e.refresh(ctx)
		}
	}
}

// refresh runs one fetch-and-replace cycle. Failures are already
// surfaced to the user by the refresher.
func (e *Engine) refresh(ctx context.Context) {
	if _, err := e.refresher.Execute(ctx); err != nil {
		e.logger.Warn("refresh failed", "error", err)
	}
}

// schedulePrune arms the one-shot cleanup timer when the store contains
// completed tasks it has not yet pruned. The fingerprint guard keeps one
// unchanged set of completed tasks from re-triggering forever.
func (e *Engine) schedulePrune(ctx context.Context) {
	if !e.opts.PruneEnabled {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	fp := completedFingerprint(e.store.Tasks())
	if fp == "" {
		e.lastPruned = ""
		if e.pruneTimer != nil {
			e.pruneTimer.Stop()
			e.pruneTimer = nil
		}
		return
	}
	if fp == e.lastPruned {
		return
	}
	if e.pruneTimer != nil {
		e.pruneTimer.Stop()
	}
	e.pruneTimer = time.AfterFunc(e.opts.PruneDelay, func() { e.prune(ctx, fp) })
}

// prune fires once per armed timer: it notifies and refetches so the
// view is rebuilt from server state.
func (e *Engine) prune(ctx context.Context, fp string) {
	e.mu.Lock()
	e.lastPruned = fp
	e.pruneTimer = nil
	e.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	e.notifier.Notify(notify.Info(pruneNotification))
	e.refresh(ctx)
}

func (e *Engine) stopPruneTimer() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pruneTimer != nil {
		e.pruneTimer.Stop()
		e.pruneTimer = nil
	}
}

// completedFingerprint identifies the current set of completed tasks.
func completedFingerprint(tasks []domain.Task) string {
	var ids []int
	for i := range tasks {
		if tasks[i].Status == domain.StatusCompleted {
			ids = append(ids, tasks[i].ID)
		}
	}
	if len(ids) == 0 {
		return ""
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
