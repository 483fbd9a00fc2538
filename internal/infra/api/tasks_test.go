package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestTaskClient_FetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/tasks/", r.URL.Path)
		w.Write([]byte(`[
			{"id": 1, "title": "Write report", "description": "Q3 numbers",
			 "status": "pending", "priority": "high",
			 "created_at": "2025-11-02T09:15:00", "due_date": "2025-11-10T00:00:00"},
			{"id": 2, "title": "Review PR", "description": "sync adapter",
			 "status": "completed", "priority": "low",
			 "created_at": "2025-11-01T08:00:00.123456",
			 "completed_at": "2025-11-03T17:30:00"}
		]`))
	}))
	defer srv.Close()

	tc := NewTaskClient(newTestClient(srv, "tok"))
	tasks, err := tc.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, 1, tasks[0].ID)
	assert.Equal(t, "Write report", tasks[0].Title)
	assert.Equal(t, domain.StatusPending, tasks[0].Status)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, time.Date(2025, 11, 2, 9, 15, 0, 0, time.UTC), tasks[0].CreatedAt)
	require.NotNil(t, tasks[0].DueDate)
	assert.Nil(t, tasks[0].CompletedAt)

	require.NotNil(t, tasks[1].CompletedAt)
	assert.Equal(t, domain.StatusCompleted, tasks[1].Status)
}

func TestTaskClient_Create(t *testing.T) {
	due := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	var sent map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tasks/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.Write([]byte(`{"id": 42, "title": "Ship it", "description": "final pass",
			"status": "pending", "priority": "medium", "created_at": "2025-11-20T10:00:00"}`))
	}))
	defer srv.Close()

	tc := NewTaskClient(newTestClient(srv, "tok"))
	task, err := tc.Create(context.Background(), domain.TaskDraft{
		Title:       "Ship it",
		Description: "final pass",
		Status:      domain.StatusPending,
		Priority:    domain.PriorityMedium,
		DueDate:     &due,
	})
	require.NoError(t, err)

	assert.Equal(t, 42, task.ID)
	assert.Equal(t, "2025-12-01", sent["due_date"])
	assert.Equal(t, "pending", sent["status"])
}

func TestTaskClient_UpdateStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/tasks/7", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "in_progress", body["status"])

		w.Write([]byte(`{"id": 7, "title": "T", "description": "D",
			"status": "in_progress", "priority": "medium",
			"created_at": "2025-11-20T10:00:00", "started_at": "2025-11-21T08:00:00"}`))
	}))
	defer srv.Close()

	tc := NewTaskClient(newTestClient(srv, "tok"))
	task, err := tc.UpdateStatus(context.Background(), 7, domain.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, task.Status)
	require.NotNil(t, task.StartedAt)
}

func TestTaskClient_UpdateStatus_NotFoundCarriesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Task not found"}`))
	}))
	defer srv.Close()

	tc := NewTaskClient(newTestClient(srv, "tok"))
	_, err := tc.UpdateStatus(context.Background(), 99, domain.StatusCompleted)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "task", nf.Resource)
	assert.Equal(t, 99, nf.ID)
}

func TestTaskClient_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/tasks/3", r.URL.Path)
			w.Write([]byte(`{"detail": "Task deleted"}`))
		}))
		defer srv.Close()

		tc := NewTaskClient(newTestClient(srv, "tok"))
		require.NoError(t, tc.Delete(context.Background(), 3))
	})

	t.Run("already gone", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail": "Task not found"}`))
		}))
		defer srv.Close()

		tc := NewTaskClient(newTestClient(srv, "tok"))
		err := tc.Delete(context.Background(), 3)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", "2025-11-02T09:15:00Z", time.Date(2025, 11, 2, 9, 15, 0, 0, time.UTC)},
		{"naive", "2025-11-02T09:15:00", time.Date(2025, 11, 2, 9, 15, 0, 0, time.UTC)},
		{"naive micros", "2025-11-02T09:15:00.500000", time.Date(2025, 11, 2, 9, 15, 0, 500000000, time.UTC)},
		{"bare date", "2025-11-02", time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTime(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}

	_, err := parseTime("next tuesday")
	require.Error(t, err)
}
