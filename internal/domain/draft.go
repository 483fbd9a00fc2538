package domain

import "time"

// TaskDraft carries the user-entered fields of a task before submission.
// Drafts are validated client-side so required-field failures surface
// without a round trip; the server remains authoritative.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	DueDate     *time.Time // Optional due date
	Title       string     // Required
	Description string     // Required
	Status      Status     // Defaults to pending
	Priority    Priority   // Defaults to medium
}

// Normalize fills in default status and priority for empty fields.
func (d *TaskDraft) Normalize() {
	if d.Status == "" {
		d.Status = StatusPending
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
}

// Validate checks the draft against the creation rules.
// The due date may be today or later; now supplies the reference day.
func (d *TaskDraft) Validate(now time.Time) error {
	if d.Title == "" {
		return ErrEmptyTitle
	}
	if d.Description == "" {
		return ErrEmptyDescription
	}
	if !d.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !d.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if d.DueDate != nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if d.DueDate.Before(today) {
			return ErrDueDateInPast
		}
	}
	return nil
}
