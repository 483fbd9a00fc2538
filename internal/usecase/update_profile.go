package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// UpdateProfileInput contains the fields to change; nil fields are kept.
type UpdateProfileInput struct {
	Update domain.ProfileUpdate
}

// UpdateProfileOutput contains the profile after the update.
type UpdateProfileOutput struct {
	Profile domain.Profile
}

// UpdateProfile applies a partial profile update.
type UpdateProfile struct {
	api  domain.ProfileAPI
	sess Session
}

// NewUpdateProfile creates a new UpdateProfile use case.
func NewUpdateProfile(api domain.ProfileAPI, sess Session) *UpdateProfile {
	return &UpdateProfile{api: api, sess: sess}
}

// Execute submits the update.
func (uc *UpdateProfile) Execute(ctx context.Context, in UpdateProfileInput) (*UpdateProfileOutput, error) {
	if in.Update.FullName == nil && in.Update.Bio == nil && in.Update.Phone == nil {
		return nil, fmt.Errorf("no fields to update")
	}
	profile, err := uc.api.UpdateMe(ctx, in.Update)
	if err != nil {
		invalidateOnAuthError(uc.sess, err)
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &UpdateProfileOutput{Profile: *profile}, nil
}
