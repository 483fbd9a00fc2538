package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// GoogleLoginOutput contains the established session identity.
type GoogleLoginOutput struct {
	ExpiresAt time.Time
	Username  string
}

// GoogleLogin signs in with a federated Google identity: the provider
// supplies an ID token, which the auth API exchanges for a session
// credential of its own.
type GoogleLogin struct {
	idp    domain.IdentityProvider
	auth   domain.AuthAPI
	creddb domain.CredentialStore
	logger domain.Logger
}

// NewGoogleLogin creates a new GoogleLogin use case.
func NewGoogleLogin(idp domain.IdentityProvider, auth domain.AuthAPI, creddb domain.CredentialStore, logger domain.Logger) *GoogleLogin {
	return &GoogleLogin{
		idp:    idp,
		auth:   auth,
		creddb: creddb,
		logger: logger,
	}
}

// Execute runs the federated sign-in flow end to end.
func (uc *GoogleLogin) Execute(ctx context.Context) (*GoogleLoginOutput, error) {
	idToken, err := uc.idp.IDToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtain google identity: %w", err)
	}

	creds, err := uc.auth.GoogleLogin(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("google login: %w", err)
	}

	if err := uc.creddb.Save(creds); err != nil {
		return nil, fmt.Errorf("save credentials: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("logged in via google", "username", creds.Username)
	}
	return &GoogleLoginOutput{Username: creds.Username, ExpiresAt: creds.ExpiresAt}, nil
}
