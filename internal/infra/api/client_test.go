package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func newTestClient(srv *httptest.Server, token string) *Client {
	return NewClient(srv.URL, func() string { return token }, nopLogger{})
}

func TestClient_BearerToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "tok-123")
	require.NoError(t, c.getJSON(context.Background(), "/tasks/", &struct{}{}))
	assert.Equal(t, "Bearer tok-123", got)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	require.NoError(t, c.getJSON(context.Background(), "/auth/ping", &struct{}{}))
	assert.False(t, present)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		check  func(t *testing.T, err error)
		name   string
		body   string
		status int
	}{
		{
			name:   "401 becomes auth error",
			status: http.StatusUnauthorized,
			body:   `{"detail": "Could not validate credentials"}`,
			check: func(t *testing.T, err error) {
				var ae *domain.AuthError
				require.ErrorAs(t, err, &ae)
				assert.Contains(t, ae.Message, "validate credentials")
			},
		},
		{
			name:   "404 becomes not found",
			status: http.StatusNotFound,
			body:   `{"detail": "Task not found"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsNotFound(err))
			},
		},
		{
			name:   "422 becomes validation error",
			status: http.StatusUnprocessableEntity,
			body:   `{"detail": "Priority must be one of: low, medium, high"}`,
			check: func(t *testing.T, err error) {
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Contains(t, ve.Message, "Priority")
			},
		},
		{
			name:   "400 becomes validation error",
			status: http.StatusBadRequest,
			body:   `{"detail": "bad request"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsValidation(err))
			},
		},
		{
			name:   "500 becomes network error",
			status: http.StatusInternalServerError,
			body:   `{"detail": "boom"}`,
			check: func(t *testing.T, err error) {
				var ne *domain.NetworkError
				require.ErrorAs(t, err, &ne)
			},
		},
		{
			name:   "structured detail is flattened",
			status: http.StatusUnprocessableEntity,
			body:   `{"detail": [{"loc": ["body", "title"], "msg": "field required"}]}`,
			check: func(t *testing.T, err error) {
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Contains(t, ve.Message, "field required")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestClient(srv, "tok").getJSON(context.Background(), "/x", &struct{}{})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := newTestClient(srv, "").getJSON(context.Background(), "/tasks/", &struct{}{})
	var ne *domain.NetworkError
	require.ErrorAs(t, err, &ne)
}

func TestReadDetail(t *testing.T) {
	body, _ := json.Marshal(map[string]string{"detail": "Incorrect username or password"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write(body)
	}))
	defer srv.Close()

	err := newTestClient(srv, "").getJSON(context.Background(), "/auth/login", nil)
	var ae *domain.AuthError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Incorrect username or password", ae.Message)
}
