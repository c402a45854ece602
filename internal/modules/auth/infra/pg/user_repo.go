package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth/domain"
)

type UserRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Country, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, email string) (*domain.User, error) {
	q := `
INSERT INTO users (email, full_name, country)
VALUES (LOWER($1), '', '')
ON CONFLICT (email) DO NOTHING
RETURNING id, email, full_name, country, created_at, updated_at`
	u, err := scanUser(r.db.QueryRow(ctx, q, email))
	if errors.Is(err, domain.ErrNotFound) {
		// lost a concurrent insert for the same email; the row exists now
		return r.GetByEmail(ctx, email)
	}
	return u, err
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := `SELECT id, email, full_name, country, created_at, updated_at
	      FROM users WHERE email = LOWER($1)`
	return scanUser(r.db.QueryRow(ctx, q, email))
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	q := `SELECT id, email, full_name, country, created_at, updated_at
	      FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, q, id))
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id, fullName, country string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET full_name=$2, country=$3, updated_at=now() WHERE id=$1`,
		id, fullName, country)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
