// Package credstore persists the session credential between runs as a
// JSON file in the user's config directory.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// credentialsFileName is the name of the stored credentials file.
const credentialsFileName = "credentials.json"

// Ensure Store implements domain.CredentialStore.
var _ domain.CredentialStore = (*Store)(nil)

// Store reads and writes the credentials file.
type Store struct {
	dir string
}

// New creates a Store rooted at the given directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// fileJSON is the on-disk form.
type fileJSON struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (s *Store) path() string {
	return filepath.Join(s.dir, credentialsFileName)
}

// Load returns the stored credentials, or nil if none exist. The expiry
// is recovered from the token's exp claim; the signature is not checked
// since only the server can verify it.
func (s *Store) Load() (*domain.Credentials, error) {
	raw, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var file fileJSON
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	if file.Token == "" {
		return nil, nil
	}

	creds := &domain.Credentials{Token: file.Token, Username: file.Username}
	creds.ExpiresAt = tokenExpiry(file.Token)
	if creds.Username == "" {
		creds.Username = tokenSubject(file.Token)
	}
	return creds, nil
}

// Save persists credentials with owner-only permissions.
func (s *Store) Save(creds *domain.Credentials) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	raw, err := json.MarshalIndent(fileJSON{Token: creds.Token, Username: creds.Username}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path(), raw, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Clear removes any stored credentials. Not an error if none exist.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// tokenExpiry extracts the exp claim without verifying the signature.
// Returns the zero time when the token has no usable expiry.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// tokenSubject extracts the sub claim, which the server sets to the
// username the token was issued for.
func tokenSubject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
