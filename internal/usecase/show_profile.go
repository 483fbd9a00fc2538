package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ShowProfileOutput contains the current profile.
type ShowProfileOutput struct {
	Profile domain.Profile
}

// ShowProfile retrieves the authenticated user's profile.
type ShowProfile struct {
	api  domain.ProfileAPI
	sess Session
}

// NewShowProfile creates a new ShowProfile use case.
func NewShowProfile(api domain.ProfileAPI, sess Session) *ShowProfile {
	return &ShowProfile{api: api, sess: sess}
}

// Execute fetches the profile.
func (uc *ShowProfile) Execute(ctx context.Context) (*ShowProfileOutput, error) {
	profile, err := uc.api.Me(ctx)
	if err != nil {
		invalidateOnAuthError(uc.sess, err)
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return &ShowProfileOutput{Profile: *profile}, nil
}
