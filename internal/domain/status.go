package domain

// Status represents the lifecycle state of a task.
// Any status is reachable from any other via an explicit user action;
// the client validates membership only, never direction.
type Status string

const (
	StatusPending    Status = "pending"     // Created, not yet started
	StatusInProgress Status = "in_progress" // Work underway
	StatusCompleted  Status = "completed"   // Done
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Toggled returns the status after a completion-indicator toggle:
// completed goes back to pending, everything else becomes completed.
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
