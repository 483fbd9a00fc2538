package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// maxAvatarBytes caps avatar uploads at 5 MiB, matching the server.
const maxAvatarBytes = 5 * 1024 * 1024

// avatarExtensions are the accepted image file extensions.
var avatarExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadAvatarInput contains the path of the image to upload.
type UploadAvatarInput struct {
	Path string
}

// UploadAvatarOutput contains the profile after the upload.
type UploadAvatarOutput struct {
	Profile domain.Profile
}

// UploadAvatar uploads a profile image. Type and size limits are checked
// locally before any bytes leave the machine; the server enforces them too.
type UploadAvatar struct {
	api  domain.ProfileAPI
	sess Session
}

// NewUploadAvatar creates a new UploadAvatar use case.
func NewUploadAvatar(api domain.ProfileAPI, sess Session) *UploadAvatar {
	return &UploadAvatar{api: api, sess: sess}
}

// Execute validates and uploads the image.
func (uc *UploadAvatar) Execute(ctx context.Context, in UploadAvatarInput) (*UploadAvatarOutput, error) {
	ext := strings.ToLower(filepath.Ext(in.Path))
	if !avatarExtensions[ext] {
		return nil, fmt.Errorf("invalid file type %q: only JPEG, PNG and WebP images are allowed", ext)
	}

	info, err := os.Stat(in.Path)
	if err != nil {
		return nil, fmt.Errorf("read avatar file: %w", err)
	}
	if info.Size() > maxAvatarBytes {
		return nil, fmt.Errorf("file too large: maximum size is 5MB")
	}

	f, err := os.Open(in.Path)
	if err != nil {
		return nil, fmt.Errorf("read avatar file: %w", err)
	}
	defer f.Close()

	profile, err := uc.api.UploadAvatar(ctx, filepath.Base(in.Path), f)
	if err != nil {
		invalidateOnAuthError(uc.sess, err)
		return nil, fmt.Errorf("upload avatar: %w", err)
	}
	return &UploadAvatarOutput{Profile: *profile}, nil
}
