package security

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	c := NewSessionCodec("secret", "dmms", 30*24*time.Hour)

	cred, exp, err := c.Issue("user-123")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), exp, 5*time.Second)

	got, err := c.Verify(cred)
	require.NoError(t, err)
	assert.Equal(t, "user-123", got)
}

func TestSessionExpiry(t *testing.T) {
	c := NewSessionCodec("secret", "dmms", 30*24*time.Hour)
	cred, _, err := c.Issue("user-123")
	require.NoError(t, err)

	// One second past the 30-day window.
	c.Now = func() time.Time { return time.Now().Add(30*24*time.Hour + time.Second) }
	_, err = c.Verify(cred)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestSessionRejects(t *testing.T) {
	c := NewSessionCodec("secret", "dmms", time.Hour)
	cred, _, err := c.Issue("user-123")
	require.NoError(t, err)

	tests := []struct {
		name  string
		codec *SessionCodec
		cred  string
	}{
		{"wrong secret", NewSessionCodec("other-secret", "dmms", time.Hour), cred},
		{"wrong issuer", NewSessionCodec("secret", "someone-else", time.Hour), cred},
		{"garbage", c, "not-a-token"},
		{"empty", c, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.codec.Verify(tt.cred)
			assert.ErrorIs(t, err, ErrInvalidCredential)
		})
	}
}

func TestLoginCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := LoginCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
