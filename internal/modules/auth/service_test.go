package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth"
	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth/domain"
	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth/infra"
	"github.com/dpandit24/digital-menu-management-system/internal/platform/security"
)

type captureSender struct {
	mu    sync.Mutex
	codes map[string][]string
	fail  error
}

func (s *captureSender) SendLoginCode(_ context.Context, to, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	if s.codes == nil {
		s.codes = make(map[string][]string)
	}
	s.codes[to] = append(s.codes[to], code)
	return nil
}

func (s *captureSender) last(to string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.codes[to]
	if len(cs) == 0 {
		return ""
	}
	return cs[len(cs)-1]
}

func newTestService(t *testing.T) (*auth.Service, *captureSender, *security.SessionCodec) {
	t.Helper()
	codec := security.NewSessionCodec("test-secret", "dmms", 30*24*time.Hour)
	sender := &captureSender{}
	svc := auth.NewService(infra.NewMemUserRepo(), infra.NewMemTokenRepo(), codec,
		sender, zap.NewNop(), 10*time.Minute, true)
	return svc, sender, codec
}

func TestRequestCode(t *testing.T) {
	svc, sender, _ := newTestService(t)
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "Owner@Example.COM")
	require.NoError(t, err)
	require.Len(t, code, 6)

	// dispatched to the normalized address with the same code
	assert.Equal(t, code, sender.last("owner@example.com"))
}

func TestRequestCodeInvalidEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, email := range []string{"", "not-an-email", "a@", "@b.com"} {
		_, err := svc.RequestCode(context.Background(), email)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail, "email %q", email)
	}
}

func TestRequestCodeDeliveryFailureStillIssues(t *testing.T) {
	svc, sender, _ := newTestService(t)
	sender.fail = errors.New("smtp down")

	code, err := svc.RequestCode(context.Background(), "a@b.com")
	require.NoError(t, err)

	// the persisted token is still redeemable
	res, err := svc.VerifyCode(context.Background(), "a@b.com", code)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Credential)
}

func TestVerifyCode(t *testing.T) {
	svc, _, codec := newTestService(t)
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "a@b.com")
	require.NoError(t, err)

	res, err := svc.VerifyCode(ctx, "a@b.com", code)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "a@b.com", res.User.Email)
	assert.Empty(t, res.User.FullName)
	assert.Empty(t, res.User.Country)

	// minted credential round-trips to the same user id
	uid, err := codec.Verify(res.Credential)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, uid)

	// second sign-in reuses the account
	code2, err := svc.RequestCode(ctx, "a@b.com")
	require.NoError(t, err)
	res2, err := svc.VerifyCode(ctx, "a@b.com", code2)
	require.NoError(t, err)
	assert.False(t, res2.Created)
	assert.Equal(t, res.User.ID, res2.User.ID)
}

func TestVerifyCodeWrong(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "a@b.com")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, err = svc.VerifyCode(ctx, "a@b.com", wrong)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)

	// right code, unknown email
	_, err = svc.VerifyCode(ctx, "nobody@b.com", code)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestVerifyCodeExpired(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "a@b.com")
	require.NoError(t, err)

	svc.Now = func() time.Time { return time.Now().Add(10*time.Minute + time.Second) }
	_, err = svc.VerifyCode(ctx, "a@b.com", code)
	// same opaque failure as a wrong code
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestVerifyCodeSingleUse(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "a@b.com")
	require.NoError(t, err)

	_, err = svc.VerifyCode(ctx, "a@b.com", code)
	require.NoError(t, err)

	_, err = svc.VerifyCode(ctx, "a@b.com", code)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestVerifyCodeConcurrentSingleWinner(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "a@b.com")
	require.NoError(t, err)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.VerifyCode(ctx, "a@b.com", code)
		}(i)
	}
	close(start)
	wg.Wait()

	wins := 0
	for _, e := range errs {
		if e == nil {
			wins++
		} else {
			assert.ErrorIs(t, e, domain.ErrInvalidCode)
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent verification may consume the token")
}

func TestMultipleOutstandingCodes(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.RequestCode(ctx, "a@b.com")
	require.NoError(t, err)
	second, err := svc.RequestCode(ctx, "a@b.com")
	require.NoError(t, err)

	// issuing a second code does not invalidate the first
	_, err = svc.VerifyCode(ctx, "a@b.com", first)
	require.NoError(t, err)
	if second != first {
		_, err = svc.VerifyCode(ctx, "a@b.com", second)
		require.NoError(t, err)
	}
}
