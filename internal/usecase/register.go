package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// RegisterInput contains the new-account request.
type RegisterInput struct {
	Registration domain.Registration
}

// RegisterOutput contains the result of a registration.
type RegisterOutput struct {
	Username string
}

// Register creates a new account. Password rules are checked locally
// first so obvious failures skip the round trip; the server revalidates.
type Register struct {
	auth domain.AuthAPI
}

// NewRegister creates a new Register use case.
func NewRegister(auth domain.AuthAPI) *Register {
	return &Register{auth: auth}
}

// Execute validates and submits the registration. It does not log in.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	if err := in.Registration.Validate(); err != nil {
		return nil, err
	}
	if err := uc.auth.Register(ctx, in.Registration); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &RegisterOutput{Username: in.Registration.Username}, nil
}
