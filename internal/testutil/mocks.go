// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time { return m.NowTime }

// MockNotifier records every notification it receives.
type MockNotifier struct {
	mu            sync.Mutex
	Notifications []domain.Notification
}

// Notify implements domain.Notifier.
func (m *MockNotifier) Notify(n domain.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications = append(m.Notifications, n)
}

// Texts returns the recorded notification texts in order.
func (m *MockNotifier) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Notifications))
	for i, n := range m.Notifications {
		out[i] = n.Text
	}
	return out
}

// Len returns the number of recorded notifications.
func (m *MockNotifier) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Notifications)
}

// MockTaskAPI is a test double for domain.TaskAPI.
// Fields are ordered to minimize memory padding.
type MockTaskAPI struct {
	mu sync.Mutex

	FetchAllTasks []domain.Task
	FetchAllErr   error
	CreateTask    *domain.Task
	CreateErr     error
	UpdateTask    *domain.Task
	UpdateErr     error
	DeleteErr     error

	// Call records
	FetchAllCalls int
	CreateCalls   []domain.TaskDraft
	UpdateCalls   []UpdateStatusCall
	DeleteCalls   []int
}

// UpdateStatusCall records one UpdateStatus invocation.
type UpdateStatusCall struct {
	Status domain.Status
	ID     int
}

// FetchAll implements domain.TaskAPI.
func (m *MockTaskAPI) FetchAll(_ context.Context) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchAllCalls++
	if m.FetchAllErr != nil {
		return nil, m.FetchAllErr
	}
	return m.FetchAllTasks, nil
}

// Create implements domain.TaskAPI.
func (m *MockTaskAPI) Create(_ context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, draft)
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return m.CreateTask, nil
}

// UpdateStatus implements domain.TaskAPI.
func (m *MockTaskAPI) UpdateStatus(_ context.Context, id int, status domain.Status) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls = append(m.UpdateCalls, UpdateStatusCall{ID: id, Status: status})
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	return m.UpdateTask, nil
}

// Delete implements domain.TaskAPI.
func (m *MockTaskAPI) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	return m.DeleteErr
}

// MockAuthAPI is a test double for domain.AuthAPI.
type MockAuthAPI struct {
	LoginCreds    *domain.Credentials
	LoginErr      error
	RegisterErr   error
	GoogleCreds   *domain.Credentials
	GoogleErr     error
	RegisterCalls []domain.Registration
}

// Login implements domain.AuthAPI.
func (m *MockAuthAPI) Login(_ context.Context, _, _ string) (*domain.Credentials, error) {
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	return m.LoginCreds, nil
}

// Register implements domain.AuthAPI.
func (m *MockAuthAPI) Register(_ context.Context, reg domain.Registration) error {
	m.RegisterCalls = append(m.RegisterCalls, reg)
	return m.RegisterErr
}

// GoogleLogin implements domain.AuthAPI.
func (m *MockAuthAPI) GoogleLogin(_ context.Context, _ string) (*domain.Credentials, error) {
	if m.GoogleErr != nil {
		return nil, m.GoogleErr
	}
	return m.GoogleCreds, nil
}

// MockCredentialStore is an in-memory domain.CredentialStore.
type MockCredentialStore struct {
	mu      sync.Mutex
	Creds   *domain.Credentials
	SaveErr error
	Clears  int
}

// Load implements domain.CredentialStore.
func (m *MockCredentialStore) Load() (*domain.Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Creds, nil
}

// Save implements domain.CredentialStore.
func (m *MockCredentialStore) Save(creds *domain.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Creds = creds
	return nil
}

// Clear implements domain.CredentialStore.
func (m *MockCredentialStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Creds = nil
	m.Clears++
	return nil
}

// MockProfileAPI is a test double for domain.ProfileAPI.
type MockProfileAPI struct {
	Profile    *domain.Profile
	MeErr      error
	UpdateErr  error
	UploadErr  error
	Uploads    []string
	LastUpdate *domain.ProfileUpdate
}

// Me implements domain.ProfileAPI.
func (m *MockProfileAPI) Me(_ context.Context) (*domain.Profile, error) {
	if m.MeErr != nil {
		return nil, m.MeErr
	}
	return m.Profile, nil
}

// UpdateMe implements domain.ProfileAPI.
func (m *MockProfileAPI) UpdateMe(_ context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	m.LastUpdate = &update
	return m.Profile, nil
}

// UploadAvatar implements domain.ProfileAPI.
func (m *MockProfileAPI) UploadAvatar(_ context.Context, filename string, _ io.Reader) (*domain.Profile, error) {
	if m.UploadErr != nil {
		return nil, m.UploadErr
	}
	m.Uploads = append(m.Uploads, filename)
	return m.Profile, nil
}

// MockAnalyticsAPI is a test double for domain.AnalyticsAPI.
type MockAnalyticsAPI struct {
	Analytics *domain.Analytics
	Err       error
}

// Summary implements domain.AnalyticsAPI.
func (m *MockAnalyticsAPI) Summary(_ context.Context) (*domain.Analytics, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Analytics, nil
}

// MockChatAPI is a test double for domain.ChatAPI.
type MockChatAPI struct {
	Reply    string
	Err      error
	Messages []string
}

// Ask implements domain.ChatAPI.
func (m *MockChatAPI) Ask(_ context.Context, message string) (string, error) {
	m.Messages = append(m.Messages, message)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
