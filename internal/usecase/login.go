package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// LoginInput contains the credentials to exchange.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput contains the established session identity.
type LoginOutput struct {
	ExpiresAt time.Time // Zero if the token carries no expiry
	Username  string
}

// Login exchanges username/password for a session credential and
// persists it for subsequent runs.
type Login struct {
	auth   domain.AuthAPI
	creddb domain.CredentialStore
	logger domain.Logger
}

// NewLogin creates a new Login use case.
func NewLogin(auth domain.AuthAPI, creddb domain.CredentialStore, logger domain.Logger) *Login {
	return &Login{
		auth:   auth,
		creddb: creddb,
		logger: logger,
	}
}

// Execute performs the login round trip and stores the credential.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	if in.Username == "" || in.Password == "" {
		return nil, errors.New("username and password are required")
	}

	creds, err := uc.auth.Login(ctx, in.Username, in.Password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if creds.Username == "" {
		creds.Username = in.Username
	}

	if err := uc.creddb.Save(creds); err != nil {
		return nil, fmt.Errorf("save credentials: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("logged in", "username", creds.Username)
	}
	return &LoginOutput{Username: creds.Username, ExpiresAt: creds.ExpiresAt}, nil
}
