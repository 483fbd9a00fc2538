package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func task(id int, title string, status domain.Status) domain.Task {
	return domain.Task{ID: id, Title: title, Description: "d", Status: status}
}

// ids extracts the IDs in order for compact assertions.
func ids(tasks []domain.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestStore_ReplaceAll(t *testing.T) {
	s := New()
	s.ReplaceAll([]domain.Task{task(1, "a", domain.StatusPending), task(2, "b", domain.StatusPending)})
	assert.Equal(t, []int{1, 2}, ids(s.Tasks()))

	// Full replace: id 1 gone, id 3 added.
	s.ReplaceAll([]domain.Task{task(2, "b", domain.StatusPending), task(3, "c", domain.StatusPending)})
	assert.Equal(t, []int{2, 3}, ids(s.Tasks()))
}

func TestStore_ReplaceAll_DropsDuplicateIDs(t *testing.T) {
	s := New()
	s.ReplaceAll([]domain.Task{task(1, "first", domain.StatusPending), task(1, "second", domain.StatusPending)})
	got := s.Tasks()
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].Title)
}

func TestStore_Upsert(t *testing.T) {
	s := New()
	s.ReplaceAll([]domain.Task{task(1, "a", domain.StatusPending), task(2, "b", domain.StatusPending)})

	// Replace in place keeps position.
	s.Upsert(task(1, "a2", domain.StatusInProgress))
	got := s.Tasks()
	require.Len(t, got, 2)
	assert.Equal(t, "a2", got[0].Title)
	assert.Equal(t, domain.StatusInProgress, got[0].Status)

	// New ID appends.
	s.Upsert(task(3, "c", domain.StatusPending))
	assert.Equal(t, []int{1, 2, 3}, ids(s.Tasks()))
}

func TestStore_Remove(t *testing.T) {
	s := New()
	s.ReplaceAll([]domain.Task{task(1, "a", domain.StatusPending), task(2, "b", domain.StatusPending), task(3, "c", domain.StatusPending)})

	s.Remove(2)
	assert.Equal(t, []int{1, 3}, ids(s.Tasks()))

	// Removing an absent ID is a no-op, not an error.
	s.Remove(42)
	assert.Equal(t, []int{1, 3}, ids(s.Tasks()))

	// Positions stay consistent after the shift.
	got, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, "c", got.Title)
}

func TestStore_IDUniqueness(t *testing.T) {
	// No mutation sequence may leave two entries with the same ID.
	s := New()
	s.ReplaceAll([]domain.Task{task(1, "a", domain.StatusPending)})
	s.Upsert(task(2, "b", domain.StatusPending))
	s.Upsert(task(1, "a2", domain.StatusCompleted))
	s.Remove(2)
	s.Upsert(task(2, "b2", domain.StatusPending))
	s.ReplaceAll([]domain.Task{task(2, "b3", domain.StatusPending), task(1, "a3", domain.StatusPending)})
	s.Upsert(task(1, "a4", domain.StatusPending))

	seen := map[int]bool{}
	for _, tk := range s.Tasks() {
		require.False(t, seen[tk.ID], "duplicate id %d", tk.ID)
		seen[tk.ID] = true
	}
}

func TestStore_OnChange(t *testing.T) {
	s := New()
	calls := 0
	s.OnChange(func() { calls++ })

	s.ReplaceAll([]domain.Task{task(1, "a", domain.StatusPending)})
	s.Upsert(task(2, "b", domain.StatusPending))
	s.Remove(1)
	assert.Equal(t, 3, calls)

	// A no-op remove still ends without notification.
	s.Remove(99)
	assert.Equal(t, 3, calls)
}

func TestStore_HasStatus(t *testing.T) {
	s := New()
	assert.False(t, s.HasStatus(domain.StatusCompleted))

	s.ReplaceAll([]domain.Task{task(1, "a", domain.StatusPending), task(2, "b", domain.StatusCompleted)})
	assert.True(t, s.HasStatus(domain.StatusCompleted))
	assert.Equal(t, 1, s.CountByStatus(domain.StatusCompleted))
	assert.Equal(t, 1, s.CountByStatus(domain.StatusPending))
	assert.Equal(t, 0, s.CountByStatus(domain.StatusInProgress))
}
