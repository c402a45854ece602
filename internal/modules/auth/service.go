package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth/domain"
	"github.com/dpandit24/digital-menu-management-system/internal/platform/notify"
	"github.com/dpandit24/digital-menu-management-system/internal/platform/security"
)

// Service is the auth core: the code issuer and the session minter.
type Service struct {
	users   domain.UserRepo
	tokens  domain.TokenRepo
	codec   *security.SessionCodec
	sender  notify.CodeSender
	log     *zap.Logger
	codeTTL time.Duration
	devMode bool

	// Now is overridable in tests to simulate expiry.
	Now func() time.Time
}

func NewService(users domain.UserRepo, tokens domain.TokenRepo, codec *security.SessionCodec,
	sender notify.CodeSender, log *zap.Logger, codeTTL time.Duration, devMode bool) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		codec:   codec,
		sender:  sender,
		log:     log,
		codeTTL: codeTTL,
		devMode: devMode,
		Now:     time.Now,
	}
}

// RequestCode generates a one-time code for email, persists it with a
// 10-minute expiry and dispatches it through the sender. Prior tokens for
// the same email are left untouched. In dev mode the code is also returned
// to the caller.
//
// The persisted token is the source of truth; delivery is best-effort, so a
// sender failure is logged but does not roll anything back.
func (s *Service) RequestCode(ctx context.Context, email string) (string, error) {
	email = NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return "", domain.ErrInvalidEmail
	}

	code, err := security.LoginCode()
	if err != nil {
		return "", err
	}

	now := s.Now()
	if _, err := s.tokens.Create(ctx, domain.LoginToken{
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(s.codeTTL),
	}); err != nil {
		return "", err
	}

	if err := s.sender.SendLoginCode(ctx, email, code); err != nil {
		s.log.Warn("login code delivery failed", zap.String("email", email), zap.Error(err))
	}

	if s.devMode {
		return code, nil
	}
	return "", nil
}

// VerifyResult makes the implicit account creation inside verification
// observable instead of hiding it behind what reads like a pure check.
type VerifyResult struct {
	User       *domain.User
	Created    bool
	Credential string
	ExpiresAt  time.Time
}

// VerifyCode redeems a (email, code) pair for a session credential. A wrong,
// expired or already-used code is one opaque ErrInvalidCode. The first
// successful verification for an unseen email creates the user with empty
// profile fields.
func (s *Service) VerifyCode(ctx context.Context, email, code string) (*VerifyResult, error) {
	email = NormalizeEmail(email)
	now := s.Now()

	token, err := s.tokens.FindUsable(ctx, email, code, now)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, email)
	created := false
	if errors.Is(err, domain.ErrNotFound) {
		u, err = s.users.Create(ctx, email)
		created = true
	}
	if err != nil {
		return nil, err
	}

	// The conditional consume is the gate: if a concurrent verification got
	// here first, this one loses and reports the same opaque failure.
	if err := s.tokens.Consume(ctx, token.ID, u.ID, now); err != nil {
		return nil, err
	}

	cred, exp, err := s.codec.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &VerifyResult{User: u, Created: created, Credential: cred, ExpiresAt: exp}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
