// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/api"
	"github.com/taskdeck/taskdeck/internal/infra/config"
	"github.com/taskdeck/taskdeck/internal/infra/credstore"
	"github.com/taskdeck/taskdeck/internal/infra/googleauth"
	"github.com/taskdeck/taskdeck/internal/infra/logging"
	"github.com/taskdeck/taskdeck/internal/infra/push"
	"github.com/taskdeck/taskdeck/internal/session"
	"github.com/taskdeck/taskdeck/internal/tasksync"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	TaskAPI      domain.TaskAPI
	AuthAPI      domain.AuthAPI
	ProfileAPI   domain.ProfileAPI
	AnalyticsAPI domain.AnalyticsAPI
	ChatAPI      domain.ChatAPI
	Credentials  domain.CredentialStore
	Identity     domain.IdentityProvider
	Clock        domain.Clock
	Logger       domain.Logger

	// Configuration
	Config *config.Config

	logfile *logging.Logger

	mu   sync.Mutex
	sess *session.Session
}

// New creates a Container wired against the configured server.
func New() (*Container, error) {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.DefaultStateDir(), logging.ParseLevel(cfg.Log.Level))
	creds := credstore.New(loader.Dir())

	c := &Container{
		Credentials: creds,
		Clock:       domain.RealClock{},
		Logger:      logger,
		Config:      cfg,
		logfile:     logger,
	}
	client := api.NewClient(cfg.Server.BaseURL, c.sessionToken, logger)
	c.TaskAPI = api.NewTaskClient(client)
	c.AuthAPI = api.NewAuthClient(client)
	c.ProfileAPI = api.NewProfileClient(client)
	c.AnalyticsAPI = api.NewAnalyticsClient(client)
	c.ChatAPI = api.NewChatClient(client)
	c.Identity = googleauth.New(
		os.Getenv("TASKDECK_GOOGLE_CLIENT_ID"),
		os.Getenv("TASKDECK_GOOGLE_CLIENT_SECRET"),
		printConsentURL,
	)
	return c, nil
}

// printConsentURL asks the user to open the sign-in page themselves.
// Launching browsers from a terminal app is unreliable across platforms.
func printConsentURL(url string) error {
	_, err := fmt.Fprintf(os.Stderr, "Open this URL in your browser:\n%s\n", url)
	return err
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.logfile == nil {
		return nil
	}
	return c.logfile.Close()
}

// sessionToken returns the active session's bearer token, or "".
func (c *Container) sessionToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil || !c.sess.Active() {
		return ""
	}
	return c.sess.Token()
}

// Session returns the active session, or nil when unauthenticated.
func (c *Container) Session() *session.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

// StartSession creates and installs a session for the given credentials.
func (c *Container) StartSession(creds domain.Credentials) *session.Session {
	sess := session.New(creds, c.Credentials)
	c.mu.Lock()
	c.sess = sess
	c.mu.Unlock()
	return sess
}

// RestoreSession installs a session from the stored credential.
// Returns ErrNotAuthenticated when nothing is stored and
// ErrSessionExpired when the stored token's expiry has passed.
func (c *Container) RestoreSession() (*session.Session, error) {
	creds, err := c.Credentials.Load()
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if creds.Expired(c.Clock.Now()) {
		_ = c.Credentials.Clear()
		return nil, domain.ErrSessionExpired
	}
	return c.StartSession(*creds), nil
}

// DisposeSession invalidates and drops the active session, if any.
func (c *Container) DisposeSession() {
	c.mu.Lock()
	sess := c.sess
	c.sess = nil
	c.mu.Unlock()
	if sess != nil {
		sess.Invalidate()
	}
}

// PushListener returns a supervised WebSocket listener for the active
// account, or nil when push is disabled.
func (c *Container) PushListener() *push.Listener {
	if !c.Config.Push.Enabled {
		return nil
	}
	username := func() string {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.sess == nil {
			return ""
		}
		return c.sess.Username()
	}
	return push.New(c.Config.Server.BaseURL, username, c.Logger,
		push.WithBackoff(c.Config.Push.InitialBackoff.Duration, c.Config.Push.MaxBackoff.Duration))
}

// SyncEngine builds the engine that keeps the given session's store
// consistent with the server.
func (c *Container) SyncEngine(sess *session.Session, notifier domain.Notifier, signals <-chan struct{}) *tasksync.Engine {
	refresher := usecase.NewRefreshTasks(c.TaskAPI, sess.Store(), notifier, sess, c.Logger)
	return tasksync.NewEngine(sess.Store(), refresher, notifier, signals, c.Logger, tasksync.Options{
		PruneEnabled: c.Config.Prune.Enabled,
		PruneDelay:   c.Config.Prune.Delay.Duration,
	})
}

// UseCase factory methods

// RefreshTasksUseCase returns a new RefreshTasks use case.
func (c *Container) RefreshTasksUseCase(sess *session.Session, notifier domain.Notifier) *usecase.RefreshTasks {
	return usecase.NewRefreshTasks(c.TaskAPI, sess.Store(), notifier, sess, c.Logger)
}

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase(sess *session.Session, notifier domain.Notifier) *usecase.CreateTask {
	return usecase.NewCreateTask(c.TaskAPI, sess.Store(), notifier, sess, c.Clock, c.Logger)
}

// ChangeStatusUseCase returns a new ChangeStatus use case with a
// refresher attached for stale-task recovery.
func (c *Container) ChangeStatusUseCase(sess *session.Session, notifier domain.Notifier) *usecase.ChangeStatus {
	uc := usecase.NewChangeStatus(c.TaskAPI, sess.Store(), notifier, sess)
	return uc.WithRefresher(c.RefreshTasksUseCase(sess, notifier))
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase(sess *session.Session, notifier domain.Notifier) *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.TaskAPI, sess.Store(), notifier, sess)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase(sess *session.Session, notifier domain.Notifier) *usecase.ImportTasks {
	return usecase.NewImportTasks(c.TaskAPI, sess.Store(), notifier, sess, c.Clock)
}

// LoginUseCase returns a new Login use case.
func (c *Container) LoginUseCase() *usecase.Login {
	return usecase.NewLogin(c.AuthAPI, c.Credentials, c.Logger)
}

// GoogleLoginUseCase returns a new GoogleLogin use case.
func (c *Container) GoogleLoginUseCase() *usecase.GoogleLogin {
	return usecase.NewGoogleLogin(c.Identity, c.AuthAPI, c.Credentials, c.Logger)
}

// RegisterUseCase returns a new Register use case.
func (c *Container) RegisterUseCase() *usecase.Register {
	return usecase.NewRegister(c.AuthAPI)
}

// LogoutUseCase returns a new Logout use case.
func (c *Container) LogoutUseCase() *usecase.Logout {
	return usecase.NewLogout(c.Credentials, c.Logger)
}

// ShowProfileUseCase returns a new ShowProfile use case.
func (c *Container) ShowProfileUseCase(sess *session.Session) *usecase.ShowProfile {
	return usecase.NewShowProfile(c.ProfileAPI, sess)
}

// UpdateProfileUseCase returns a new UpdateProfile use case.
func (c *Container) UpdateProfileUseCase(sess *session.Session) *usecase.UpdateProfile {
	return usecase.NewUpdateProfile(c.ProfileAPI, sess)
}

// UploadAvatarUseCase returns a new UploadAvatar use case.
func (c *Container) UploadAvatarUseCase(sess *session.Session) *usecase.UploadAvatar {
	return usecase.NewUploadAvatar(c.ProfileAPI, sess)
}

// ShowAnalyticsUseCase returns a new ShowAnalytics use case.
func (c *Container) ShowAnalyticsUseCase(sess *session.Session) *usecase.ShowAnalytics {
	return usecase.NewShowAnalytics(c.AnalyticsAPI, sess)
}

// AskAssistantUseCase returns a new AskAssistant use case.
func (c *Container) AskAssistantUseCase(sess *session.Session) *usecase.AskAssistant {
	return usecase.NewAskAssistant(c.ChatAPI, sess)
}
