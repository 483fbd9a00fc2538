package domain

import "strings"

// StatusFilterAll matches every status in a projection.
const StatusFilterAll = "all"

// Projection selects the tasks to render from the store's collection.
// Fields are ordered to minimize memory padding.
type Projection struct {
	Search       string // Case-insensitive substring over title and description
	StatusFilter string // "all" or an exact status value
}

// Matches returns true if the task passes both the status filter and the search.
// An empty search passes every task.
func (p Projection) Matches(t *Task) bool {
	if p.StatusFilter != "" && p.StatusFilter != StatusFilterAll && string(t.Status) != p.StatusFilter {
		return false
	}
	if p.Search == "" {
		return true
	}
	needle := strings.ToLower(p.Search)
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

// Apply returns the tasks matching the projection, preserving input order.
// It is a pure function: identical inputs always yield identical output,
// and the input slice is never modified.
func (p Projection) Apply(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for i := range tasks {
		if p.Matches(&tasks[i]) {
			result = append(result, tasks[i])
		}
	}
	return result
}
