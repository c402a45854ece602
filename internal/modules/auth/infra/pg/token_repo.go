package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth/domain"
)

type TokenRepo struct{ db *pgxpool.Pool }

func NewTokenRepo(db *pgxpool.Pool) *TokenRepo { return &TokenRepo{db: db} }

func (r *TokenRepo) Create(ctx context.Context, t domain.LoginToken) (*domain.LoginToken, error) {
	q := `
INSERT INTO login_tokens (email, code, created_at, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
	if err := r.db.QueryRow(ctx, q, t.Email, t.Code, t.CreatedAt, t.ExpiresAt).Scan(&t.ID); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TokenRepo) FindUsable(ctx context.Context, email, code string, now time.Time) (*domain.LoginToken, error) {
	var t domain.LoginToken
	q := `
SELECT id, email, code, created_at, expires_at, used_at, user_id
FROM login_tokens
WHERE email=$1 AND code=$2 AND used_at IS NULL AND expires_at > $3
ORDER BY created_at DESC
LIMIT 1`
	row := r.db.QueryRow(ctx, q, email, code, now)
	if err := row.Scan(&t.ID, &t.Email, &t.Code, &t.CreatedAt, &t.ExpiresAt, &t.UsedAt, &t.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidCode
		}
		return nil, err
	}
	return &t, nil
}

// Consume is a single conditional UPDATE guarded by used_at IS NULL: of two
// racing verifications of the same token, one sees RowsAffected()==1 and the
// other 0. No read-then-write window exists.
func (r *TokenRepo) Consume(ctx context.Context, tokenID, userID string, now time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE login_tokens SET used_at=$2, user_id=$3
		 WHERE id=$1 AND used_at IS NULL AND expires_at > $2`,
		tokenID, now, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidCode
	}
	return nil
}
