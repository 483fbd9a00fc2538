// Package session manages the authenticated session lifecycle.
// A session is created on successful authentication and disposed on
// logout; it is passed explicitly to its consumers, never held as
// ambient global state.
package session

import (
	"sync/atomic"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// Session owns the task store and the credential for one authenticated
// user. The store is discarded with the session.
type Session struct {
	creds      domain.Credentials
	store      *store.Store
	creddb     domain.CredentialStore
	onTeardown func()
	torn       atomic.Bool
}

// New creates a session for the given credentials.
// creddb is cleared when the session is invalidated; it may be nil in tests.
func New(creds domain.Credentials, creddb domain.CredentialStore) *Session {
	return &Session{
		creds:  creds,
		store:  store.New(),
		creddb: creddb,
	}
}

// OnTeardown registers a hook invoked once when the session is invalidated.
func (s *Session) OnTeardown(fn func()) {
	s.onTeardown = fn
}

// Token returns the bearer credential.
func (s *Session) Token() string { return s.creds.Token }

// Username returns the account name the session was issued for.
func (s *Session) Username() string { return s.creds.Username }

// Store returns the session's task store.
func (s *Session) Store() *store.Store { return s.store }

// Active returns true until the session has been invalidated.
func (s *Session) Active() bool { return !s.torn.Load() }

// Invalidate tears the session down: the stored credential is cleared
// and the teardown hook runs. Teardown happens exactly once no matter
// how many concurrent calls observe an auth failure; later calls return
// false and do nothing.
func (s *Session) Invalidate() bool {
	if !s.torn.CompareAndSwap(false, true) {
		return false
	}
	if s.creddb != nil {
		_ = s.creddb.Clear()
	}
	if s.onTeardown != nil {
		s.onTeardown()
	}
	return true
}
