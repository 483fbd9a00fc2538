// Package store holds the in-memory task collection for a session.
// It is the single source of truth: every view derives from it, never
// from an independent copy.
package store

import (
	"sync"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Store is the authoritative local copy of the task collection.
// Mutations arrive from the UI event loop and from push/timer goroutines,
// so access is guarded by a mutex. Insertion order is preserved; upserted
// tasks keep their position and new tasks append.
type Store struct {
	mu        sync.Mutex
	tasks     []domain.Task
	index     map[int]int // id -> position in tasks
	listeners []func()
}

// New creates an empty Store.
func New() *Store {
	return &Store{index: make(map[int]int)}
}

// OnChange registers a listener invoked after every mutation.
// Listeners run outside the store lock.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// ReplaceAll replaces the whole collection with the given tasks.
// Used after every full refetch: the displayed list always matches the
// last fetch, discarding any stale optimistic state. Duplicate IDs in
// the input keep the first occurrence.
func (s *Store) ReplaceAll(tasks []domain.Task) {
	s.mu.Lock()
	s.tasks = s.tasks[:0]
	s.index = make(map[int]int, len(tasks))
	for _, t := range tasks {
		if _, ok := s.index[t.ID]; ok {
			continue
		}
		s.index[t.ID] = len(s.tasks)
		s.tasks = append(s.tasks, t)
	}
	s.mu.Unlock()
	s.notify()
}

// Upsert inserts the task if its ID is absent, otherwise replaces it in
// place, preserving its position in the sequence.
func (s *Store) Upsert(t domain.Task) {
	s.mu.Lock()
	if pos, ok := s.index[t.ID]; ok {
		s.tasks[pos] = t
	} else {
		s.index[t.ID] = len(s.tasks)
		s.tasks = append(s.tasks, t)
	}
	s.mu.Unlock()
	s.notify()
}

// Remove drops the task with the given ID. No-op if absent.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	pos, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	s.tasks = append(s.tasks[:pos], s.tasks[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.tasks); i++ {
		s.index[s.tasks[i].ID] = i
	}
	s.mu.Unlock()
	s.notify()
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given ID.
func (s *Store) Get(id int) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.index[id]
	if !ok {
		return domain.Task{}, false
	}
	return s.tasks[pos], true
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// HasStatus returns true if any task has the given status.
func (s *Store) HasStatus(status domain.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].Status == status {
			return true
		}
	}
	return false
}

// CountByStatus returns the number of tasks with the given status.
func (s *Store) CountByStatus(status domain.Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.tasks {
		if s.tasks[i].Status == status {
			n++
		}
	}
	return n
}

func (s *Store) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
