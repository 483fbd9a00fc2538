package api

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestAuthClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "alice", r.PostForm.Get("username"))
		require.Equal(t, "S3cret!pw", r.PostForm.Get("password"))
		w.Write([]byte(`{"access_token": "jwt-abc", "token_type": "bearer"}`))
	}))
	defer srv.Close()

	ac := NewAuthClient(newTestClient(srv, ""))
	creds, err := ac.Login(context.Background(), "alice", "S3cret!pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", creds.Token)
	assert.Equal(t, "alice", creds.Username)
}

func TestAuthClient_Login_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Incorrect username or password"}`))
	}))
	defer srv.Close()

	ac := NewAuthClient(newTestClient(srv, ""))
	_, err := ac.Login(context.Background(), "alice", "wrong")
	assert.True(t, domain.IsAuthError(err))
}

func TestAuthClient_Register(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"username":"bob"`)
		assert.Contains(t, string(body), `"email":"bob@example.com"`)
		w.Write([]byte(`{"id": 2, "username": "bob", "email": "bob@example.com"}`))
	}))
	defer srv.Close()

	ac := NewAuthClient(newTestClient(srv, ""))
	err := ac.Register(context.Background(), domain.Registration{
		Username: "bob", Email: "bob@example.com", Password: "Str0ng!pw",
	})
	require.NoError(t, err)
}

func TestAuthClient_GoogleLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/google", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"token":"google-id-token"`)
		w.Write([]byte(`{"access_token": "jwt-g", "token_type": "bearer", "username": "carol"}`))
	}))
	defer srv.Close()

	ac := NewAuthClient(newTestClient(srv, ""))
	creds, err := ac.GoogleLogin(context.Background(), "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "jwt-g", creds.Token)
	assert.Equal(t, "carol", creds.Username)
}

func TestProfileClient_Me(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profile/me", r.URL.Path)
		w.Write([]byte(`{"id": 1, "username": "alice", "email": "alice@example.com",
			"full_name": "Alice A", "avatar_url": "/uploads/avatars/user_1.png",
			"created_at": "2025-10-01T12:00:00"}`))
	}))
	defer srv.Close()

	pc := NewProfileClient(newTestClient(srv, "tok"))
	profile, err := pc.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice A", profile.FullName)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestProfileClient_UpdateMe_OmitsNilFields(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Write([]byte(`{"id": 1, "username": "alice", "email": "a@x.com",
			"bio": "hi", "created_at": "2025-10-01T12:00:00"}`))
	}))
	defer srv.Close()

	bio := "hi"
	pc := NewProfileClient(newTestClient(srv, "tok"))
	profile, err := pc.UpdateMe(context.Background(), domain.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "hi", profile.Bio)
	assert.Contains(t, body, `"bio":"hi"`)
	assert.NotContains(t, body, "full_name")
	assert.NotContains(t, body, "phone")
}

func TestProfileClient_UploadAvatar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profile/avatar", r.URL.Path)
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "me.png", header.Filename)

		content, _ := io.ReadAll(file)
		assert.Equal(t, "png-bytes", string(content))

		w.Write([]byte(`{"id": 1, "username": "alice", "email": "a@x.com",
			"avatar_url": "/uploads/avatars/user_1.png", "created_at": "2025-10-01T12:00:00"}`))
	}))
	defer srv.Close()

	pc := NewProfileClient(newTestClient(srv, "tok"))
	profile, err := pc.UploadAvatar(context.Background(), "me.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/user_1.png", profile.AvatarURL)
}

func TestAnalyticsClient_Summary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analytics/", r.URL.Path)
		w.Write([]byte(`{
			"total_tasks": 10, "completed_tasks": 6, "in_progress_tasks": 1,
			"pending_tasks": 3, "completion_rate": 60.0,
			"average_completion_time_hours": 4.5,
			"fastest_completion_hours": 0.5, "slowest_completion_hours": 12.0,
			"ai_insights": ["Solid completion rate."],
			"productivity_score": 72,
			"tasks_by_priority": {"low": 2, "medium": 5, "high": 3},
			"completion_trend": [{"date": "2025-11-20", "day": "Thu", "completed": 2, "created": 1}],
			"weekly_pattern": [{"day": "Mon", "completed": 3}],
			"time_distribution": {"morning": 2, "afternoon": 3, "evening": 1, "night": 0},
			"overdue_tasks": 1
		}`))
	}))
	defer srv.Close()

	ac := NewAnalyticsClient(newTestClient(srv, "tok"))
	a, err := ac.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, a.TotalTasks)
	assert.Equal(t, 72, a.ProductivityScore)
	assert.InDelta(t, 4.5, a.AvgCompletionHours, 0.001)
	assert.Equal(t, 5, a.TasksByPriority[domain.PriorityMedium])
	require.Len(t, a.CompletionTrend, 1)
	assert.Equal(t, "Thu", a.CompletionTrend[0].Day)
	require.Len(t, a.WeeklyPattern, 1)
	assert.Equal(t, []string{"Solid completion rate."}, a.Insights)
}

func TestChatClient_Ask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/ask", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"message":"what's due?"`)
		w.Write([]byte(`{"response": "Two tasks are due tomorrow."}`))
	}))
	defer srv.Close()

	cc := NewChatClient(newTestClient(srv, "tok"))
	reply, err := cc.Ask(context.Background(), "what's due?")
	require.NoError(t, err)
	assert.Equal(t, "Two tasks are due tomorrow.", reply)
}
