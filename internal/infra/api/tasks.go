package api

import (
	"context"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure TaskClient implements domain.TaskAPI.
var _ domain.TaskAPI = (*TaskClient)(nil)

// TaskClient implements domain.TaskAPI over the /tasks/ resource.
type TaskClient struct {
	client *Client
}

// NewTaskClient creates a TaskClient sharing the given base client.
func NewTaskClient(client *Client) *TaskClient {
	return &TaskClient{client: client}
}

// taskJSON is the wire form of a task.
// Fields are ordered to minimize memory padding.
type taskJSON struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
	StartedAt   *string `json:"started_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	ID          int     `json:"id,omitempty"`
}

// timeLayouts are tried in order when parsing server timestamps. The
// server emits naive ISO 8601 without a zone designator, but RFC 3339 is
// accepted too in case that ever changes.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTime parses a server timestamp. Naive timestamps are taken as UTC.
func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// toDomain converts the wire form into a domain task.
func (w *taskJSON) toDomain() (domain.Task, error) {
	var task domain.Task
	var err error

	if w.CreatedAt != "" {
		if task.CreatedAt, err = parseTime(w.CreatedAt); err != nil {
			return domain.Task{}, fmt.Errorf("task %d: %w", w.ID, err)
		}
	}
	fields := []struct {
		dst **time.Time
		src *string
	}{
		{&task.DueDate, w.DueDate},
		{&task.UpdatedAt, w.UpdatedAt},
		{&task.StartedAt, w.StartedAt},
		{&task.CompletedAt, w.CompletedAt},
	}
	for _, f := range fields {
		if *f.dst, err = parseTimePtr(f.src); err != nil {
			return domain.Task{}, fmt.Errorf("task %d: %w", w.ID, err)
		}
	}

	task.ID = w.ID
	task.Title = w.Title
	task.Description = w.Description
	task.Status = domain.Status(w.Status)
	task.Priority = domain.Priority(w.Priority)
	return task, nil
}

// draftJSON converts a draft into its wire form. The due date is sent as
// a bare date; the server stores date precision only.
func draftJSON(draft domain.TaskDraft) taskJSON {
	w := taskJSON{
		Title:       draft.Title,
		Description: draft.Description,
		Status:      string(draft.Status),
		Priority:    string(draft.Priority),
	}
	if draft.DueDate != nil {
		d := draft.DueDate.Format("2006-01-02")
		w.DueDate = &d
	}
	return w
}

// FetchAll retrieves the full task collection in server order.
func (tc *TaskClient) FetchAll(ctx context.Context) ([]domain.Task, error) {
	var wire []taskJSON
	if err := tc.client.getJSON(ctx, "/tasks/", &wire); err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(wire))
	for i := range wire {
		task, err := wire[i].toDomain()
		if err != nil {
			return nil, &domain.NetworkError{Err: err}
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Create submits a draft and returns the server-assigned task.
func (tc *TaskClient) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	var wire taskJSON
	if err := tc.client.doJSON(ctx, "POST", "/tasks/", draftJSON(draft), &wire); err != nil {
		return nil, err
	}
	task, err := wire.toDomain()
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	return &task, nil
}

// UpdateStatus changes a task's status and returns the updated task.
func (tc *TaskClient) UpdateStatus(ctx context.Context, id int, status domain.Status) (*domain.Task, error) {
	body := struct {
		Status string `json:"status"`
	}{Status: string(status)}

	var wire taskJSON
	err := tc.client.doJSON(ctx, "PUT", fmt.Sprintf("/tasks/%d", id), body, &wire)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, &domain.NotFoundError{Resource: "task", ID: id}
		}
		return nil, err
	}
	task, err := wire.toDomain()
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	return &task, nil
}

// Delete removes a task. Returns NotFoundError if the task is already gone.
func (tc *TaskClient) Delete(ctx context.Context, id int) error {
	err := tc.client.doJSON(ctx, "DELETE", fmt.Sprintf("/tasks/%d", id), nil, nil)
	if err != nil && domain.IsNotFound(err) {
		return &domain.NotFoundError{Resource: "task", ID: id}
	}
	return err
}
