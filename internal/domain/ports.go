package domain

import (
	"context"
	"io"
	"time"
)

// TaskAPI is the remote sync adapter: it translates store intents into
// HTTP calls against the task resource and normalizes results.
// Every call carries the session's bearer credential; an AuthError from
// any call is the signal to invalidate the local session.
type TaskAPI interface {
	// FetchAll retrieves the full task collection in server order.
	FetchAll(ctx context.Context) ([]Task, error)

	// Create submits a draft and returns the server-assigned task.
	Create(ctx context.Context, draft TaskDraft) (*Task, error)

	// UpdateStatus changes a task's status and returns the updated task.
	// Returns NotFoundError if the task no longer exists server-side.
	UpdateStatus(ctx context.Context, id int, status Status) (*Task, error)

	// Delete removes a task. Returns NotFoundError if already gone.
	Delete(ctx context.Context, id int) error
}

// AuthAPI performs authentication against the external auth resource.
type AuthAPI interface {
	// Login exchanges username/password for a session credential.
	Login(ctx context.Context, username, password string) (*Credentials, error)

	// Register creates a new account. It does not log in.
	Register(ctx context.Context, reg Registration) error

	// GoogleLogin exchanges a Google ID token for a session credential.
	GoogleLogin(ctx context.Context, idToken string) (*Credentials, error)
}

// ProfileAPI manages the authenticated user's profile.
type ProfileAPI interface {
	// Me retrieves the current profile.
	Me(ctx context.Context) (*Profile, error)

	// UpdateMe applies a partial profile update.
	UpdateMe(ctx context.Context, update ProfileUpdate) (*Profile, error)

	// UploadAvatar uploads a new avatar image and returns the updated profile.
	UploadAvatar(ctx context.Context, filename string, content io.Reader) (*Profile, error)
}

// AnalyticsAPI retrieves precomputed dashboard metrics.
// All scoring happens server-side; the client only renders.
type AnalyticsAPI interface {
	Summary(ctx context.Context) (*Analytics, error)
}

// ChatAPI talks to the assistant endpoint.
type ChatAPI interface {
	Ask(ctx context.Context, message string) (string, error)
}

// CredentialStore persists the session credential between runs.
type CredentialStore interface {
	// Load returns the stored credentials, or nil if none exist.
	Load() (*Credentials, error)

	// Save persists credentials.
	Save(creds *Credentials) error

	// Clear removes any stored credentials. Not an error if none exist.
	Clear() error
}

// IdentityProvider obtains a federated ID token for sign-in.
type IdentityProvider interface {
	IDToken(ctx context.Context) (string, error)
}

// Notifier surfaces transient user-visible notifications.
// Every mutation attempt ends in exactly one notification.
type Notifier interface {
	Notify(n Notification)
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time { return time.Now() }

// Logger is the logging port used across use cases and adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
