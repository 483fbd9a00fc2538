package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure ProfileClient implements domain.ProfileAPI.
var _ domain.ProfileAPI = (*ProfileClient)(nil)

// ProfileClient implements domain.ProfileAPI over the /profile resource.
type ProfileClient struct {
	client *Client
}

// NewProfileClient creates a ProfileClient sharing the given base client.
func NewProfileClient(client *Client) *ProfileClient {
	return &ProfileClient{client: client}
}

// profileJSON is the wire form of a profile.
type profileJSON struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Bio       string  `json:"bio"`
	Phone     string  `json:"phone"`
	AvatarURL string  `json:"avatar_url"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
	ID        int     `json:"id"`
}

func (w *profileJSON) toDomain() (*domain.Profile, error) {
	p := &domain.Profile{
		Username:  w.Username,
		Email:     w.Email,
		FullName:  w.FullName,
		Bio:       w.Bio,
		Phone:     w.Phone,
		AvatarURL: w.AvatarURL,
		ID:        w.ID,
	}
	var err error
	if w.CreatedAt != "" {
		if p.CreatedAt, err = parseTime(w.CreatedAt); err != nil {
			return nil, fmt.Errorf("profile: %w", err)
		}
	}
	if p.UpdatedAt, err = parseTimePtr(w.UpdatedAt); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return p, nil
}

// Me retrieves the current profile.
func (pc *ProfileClient) Me(ctx context.Context) (*domain.Profile, error) {
	var wire profileJSON
	if err := pc.client.getJSON(ctx, "/profile/me", &wire); err != nil {
		return nil, err
	}
	profile, err := wire.toDomain()
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	return profile, nil
}

// UpdateMe applies a partial profile update. Nil fields are omitted so
// the server leaves them unchanged.
func (pc *ProfileClient) UpdateMe(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	body := struct {
		FullName *string `json:"full_name,omitempty"`
		Bio      *string `json:"bio,omitempty"`
		Phone    *string `json:"phone,omitempty"`
	}{FullName: update.FullName, Bio: update.Bio, Phone: update.Phone}

	var wire profileJSON
	if err := pc.client.doJSON(ctx, "PUT", "/profile/me", body, &wire); err != nil {
		return nil, err
	}
	profile, err := wire.toDomain()
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	return profile, nil
}

// UploadAvatar sends the image as multipart form data and returns the
// updated profile.
func (pc *ProfileClient) UploadAvatar(ctx context.Context, filename string, content io.Reader) (*domain.Profile, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read avatar: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pc.client.url("/profile/avatar"), &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var wire profileJSON
	if err := pc.client.do(req, &wire); err != nil {
		return nil, err
	}
	profile, err := wire.toDomain()
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	return profile, nil
}
