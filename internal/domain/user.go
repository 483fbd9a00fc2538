package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// Credentials is the opaque session credential issued by the auth API.
// Fields are ordered to minimize memory padding.
type Credentials struct {
	ExpiresAt time.Time // Zero if the token carries no expiry claim
	Token     string    // Bearer token attached to every API call
	Username  string    // Account the token was issued for
}

// Expired returns true if the credential has a known expiry in the past.
func (c *Credentials) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// Registration carries a new-account request.
type Registration struct {
	Username string
	Email    string
	Password string
}

// passwordSpecials are the special characters the server accepts.
const passwordSpecials = "@$!%*?&"

// Validate mirrors the server's registration rules so failures surface
// before the round trip. The server remains authoritative.
func (r *Registration) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is required")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("invalid email address")
	}
	return validatePassword(r.Password)
}

func validatePassword(pw string) error {
	if len(pw) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	switch {
	case !upper:
		return errors.New("password must contain at least one uppercase letter")
	case !lower:
		return errors.New("password must contain at least one lowercase letter")
	case !digit:
		return errors.New("password must contain at least one number")
	case !special:
		return errors.New("password must contain at least one special character (" + passwordSpecials + ")")
	}
	return nil
}

// Profile is the user's account profile.
type Profile struct {
	CreatedAt time.Time
	UpdatedAt *time.Time
	Username  string
	Email     string
	FullName  string
	Bio       string
	Phone     string
	AvatarURL string
	ID        int
}

// ProfileUpdate carries a partial profile modification.
// Nil fields are left unchanged.
type ProfileUpdate struct {
	FullName *string
	Bio      *string
	Phone    *string
}
