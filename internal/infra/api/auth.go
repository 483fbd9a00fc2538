package api

import (
	"context"
	"net/url"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure AuthClient implements domain.AuthAPI.
var _ domain.AuthAPI = (*AuthClient)(nil)

// AuthClient implements domain.AuthAPI over the /auth resource.
type AuthClient struct {
	client *Client
}

// NewAuthClient creates an AuthClient sharing the given base client.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// tokenJSON is the wire form of a login response.
type tokenJSON struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

// Login exchanges username/password for a session credential. The server
// expects the OAuth2 password grant form encoding.
func (ac *AuthClient) Login(ctx context.Context, username, password string) (*domain.Credentials, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var wire tokenJSON
	if err := ac.client.postForm(ctx, "/auth/login", form, &wire); err != nil {
		return nil, err
	}
	if wire.Username == "" {
		wire.Username = username
	}
	return &domain.Credentials{Token: wire.AccessToken, Username: wire.Username}, nil
}

// Register creates a new account. It does not log in.
func (ac *AuthClient) Register(ctx context.Context, reg domain.Registration) error {
	body := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Username: reg.Username, Email: reg.Email, Password: reg.Password}

	return ac.client.doJSON(ctx, "POST", "/auth/register", body, nil)
}

// GoogleLogin exchanges a Google ID token for a session credential.
func (ac *AuthClient) GoogleLogin(ctx context.Context, idToken string) (*domain.Credentials, error) {
	body := struct {
		Token string `json:"token"`
	}{Token: idToken}

	var wire tokenJSON
	if err := ac.client.doJSON(ctx, "POST", "/auth/google", body, &wire); err != nil {
		return nil, err
	}
	return &domain.Credentials{Token: wire.AccessToken, Username: wire.Username}, nil
}
