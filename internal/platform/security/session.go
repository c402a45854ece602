package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCredential = errors.New("invalid_credential")

// SessionCodec issues and verifies the signed session credential carried in
// the session cookie. Sessions are stateless: validity is determined entirely
// by the HMAC signature, the issuer tag and the embedded timestamps.
type SessionCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration

	// Now is overridable in tests to simulate expiry.
	Now func() time.Time
}

func NewSessionCodec(secret, issuer string, ttl time.Duration) *SessionCodec {
	return &SessionCodec{secret: []byte(secret), issuer: issuer, ttl: ttl, Now: time.Now}
}

// Issue mints a credential for userID and returns it with its expiry.
func (c *SessionCodec) Issue(userID string) (string, time.Time, error) {
	now := c.Now()
	exp := now.Add(c.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify returns the user id a credential asserts. Any defect — bad
// signature, wrong issuer, expired, malformed — yields ErrInvalidCredential;
// callers treat that as "no identity", never as a server failure.
func (c *SessionCodec) Verify(credential string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(credential, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidCredential
			}
			return c.secret, nil
		},
		jwt.WithIssuer(c.issuer),
		jwt.WithTimeFunc(c.Now),
	)
	if err != nil || !tok.Valid || claims.Subject == "" {
		return "", ErrInvalidCredential
	}
	return claims.Subject, nil
}
