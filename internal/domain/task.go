// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task is the client-side copy of a task owned by the remote API.
// The server assigns IDs and timestamps; the client never fabricates them.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time  // Server-assigned creation time
	DueDate     *time.Time // Optional due date (date precision, no timezone guarantee)
	StartedAt   *time.Time // Set by the server when work begins
	CompletedAt *time.Time // Set by the server on completion
	UpdatedAt   *time.Time // Last server-side modification
	Title       string     // Title (required)
	Description string     // Description (required)
	Status      Status     // Current status
	Priority    Priority   // Priority level
	ID          int        // Server-assigned identifier, immutable
}

// Overdue returns true if the task has a due date in the past and is not completed.
func (t *Task) Overdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(now)
}
