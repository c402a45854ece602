package domain

import (
	"context"
	"time"
)

// LoginToken is an emailed one-time code. A token is usable while UsedAt is
// null and the current time is before ExpiresAt. Several usable tokens may
// coexist for one email; issuing a new one never invalidates the others.
// Tokens are mutated exactly once, at consumption, and never deleted here.
type LoginToken struct {
	ID        string
	Email     string
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
	UsedAt    *time.Time
	UserID    *string
}

// Usable reports whether the token can still be redeemed at now.
func (t *LoginToken) Usable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}

type TokenRepo interface {
	Create(ctx context.Context, t LoginToken) (*LoginToken, error)

	// FindUsable returns the newest usable token matching (email, code),
	// or ErrInvalidCode. Wrong, expired and already-used codes are
	// indistinguishable on purpose.
	FindUsable(ctx context.Context, email, code string, now time.Time) (*LoginToken, error)

	// Consume marks the token used by userID. The update is conditional on
	// the token still being unused, so of two concurrent calls for the same
	// token exactly one succeeds; the loser gets ErrInvalidCode.
	Consume(ctx context.Context, tokenID, userID string, now time.Time) error
}
