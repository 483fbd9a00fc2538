package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistration_Validate(t *testing.T) {
	valid := Registration{Username: "alice", Email: "alice@example.com", Password: "Str0ng!pass"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		reg  Registration
	}{
		{"empty username", Registration{Username: " ", Email: "a@b.c", Password: "Str0ng!pass"}},
		{"bad email", Registration{Username: "alice", Email: "nope", Password: "Str0ng!pass"}},
		{"short password", Registration{Username: "alice", Email: "a@b.c", Password: "S0!a"}},
		{"no uppercase", Registration{Username: "alice", Email: "a@b.c", Password: "str0ng!pass"}},
		{"no lowercase", Registration{Username: "alice", Email: "a@b.c", Password: "STR0NG!PASS"}},
		{"no digit", Registration{Username: "alice", Email: "a@b.c", Password: "Strong!pass"}},
		{"no special", Registration{Username: "alice", Email: "a@b.c", Password: "Str0ngpass"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.reg.Validate())
		})
	}
}

func TestCredentials_Expired(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	noExpiry := Credentials{Token: "tok"}
	assert.False(t, noExpiry.Expired(now))

	live := Credentials{Token: "tok", ExpiresAt: now.Add(time.Hour)}
	assert.False(t, live.Expired(now))

	expired := Credentials{Token: "tok", ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, expired.Expired(now))
}
