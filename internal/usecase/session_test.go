package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginWithConfiguredCredentials(t *testing.T) {
	gate := NewSessionGate()

	token, err := gate.Login("admin", "password120")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, gate.Authenticated(token))
}

func TestLoginRejectsWrongCombinations(t *testing.T) {
	gate := NewSessionGate()

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"wrong", "password120"},
		{"", ""},
		{"Admin", "password120"}, // exact match only
	}
	for _, c := range cases {
		token, err := gate.Login(c.username, c.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	gate := NewSessionGate()

	token, err := gate.Login("admin", "password120")
	assert.NoError(t, err)

	gate.Logout(token)
	assert.False(t, gate.Authenticated(token))

	// Logging out again, or with a token that never existed, is fine.
	gate.Logout(token)
	gate.Logout("never-issued")
	assert.False(t, gate.Authenticated(token))
}

func TestUnknownTokenIsUnauthenticated(t *testing.T) {
	gate := NewSessionGate()

	assert.False(t, gate.Authenticated(""))
	assert.False(t, gate.Authenticated("made-up"))
}

func TestExpiredTokenIsUnauthenticatedAndDropped(t *testing.T) {
	gate := NewSessionGate()

	token, err := gate.Login("admin", "password120")
	assert.NoError(t, err)

	clock := time.Now()
	gate.now = func() time.Time { return clock.Add(sessionTTL + time.Minute) }

	assert.False(t, gate.Authenticated(token))

	gate.mu.Lock()
	_, stillThere := gate.tokens[token]
	gate.mu.Unlock()
	assert.False(t, stillThere, "expired tokens must be removed from the table")
}

func TestTokenStaysValidWithinTTL(t *testing.T) {
	gate := NewSessionGate()

	token, _ := gate.Login("admin", "password120")

	clock := time.Now()
	gate.now = func() time.Time { return clock.Add(sessionTTL - time.Minute) }

	assert.True(t, gate.Authenticated(token))
}

func TestSessionsAreIndependent(t *testing.T) {
	gate := NewSessionGate()

	first, _ := gate.Login("admin", "password120")
	second, _ := gate.Login("admin", "password120")
	assert.NotEqual(t, first, second)

	gate.Logout(first)
	assert.False(t, gate.Authenticated(first))
	assert.True(t, gate.Authenticated(second))
}
