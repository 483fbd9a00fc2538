package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// LogoutOutput contains the result of a logout.
type LogoutOutput struct{}

// Logout clears the stored credential. The session object itself is
// disposed by the caller; a later run starts unauthenticated.
type Logout struct {
	creddb domain.CredentialStore
	logger domain.Logger
}

// NewLogout creates a new Logout use case.
func NewLogout(creddb domain.CredentialStore, logger domain.Logger) *Logout {
	return &Logout{creddb: creddb, logger: logger}
}

// Execute removes the stored credential. Logging out while already
// logged out is not an error.
func (uc *Logout) Execute(_ context.Context) (*LogoutOutput, error) {
	if err := uc.creddb.Clear(); err != nil {
		return nil, fmt.Errorf("clear credentials: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("logged out")
	}
	return &LogoutOutput{}, nil
}
