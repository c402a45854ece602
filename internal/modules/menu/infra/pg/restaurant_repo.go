package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/domain"
)

type RestaurantRepo struct{ db *pgxpool.Pool }

func NewRestaurantRepo(db *pgxpool.Pool) *RestaurantRepo { return &RestaurantRepo{db: db} }

func scanRestaurant(row pgx.Row) (*domain.Restaurant, error) {
	var r domain.Restaurant
	if err := row.Scan(&r.ID, &r.OwnerID, &r.Name, &r.Location, &r.Slug, &r.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

const restaurantCols = `id, owner_id, name, location, slug, created_at`

func (r *RestaurantRepo) Create(ctx context.Context, p domain.CreateRestaurantParams) (*domain.Restaurant, error) {
	q := `
INSERT INTO restaurants (owner_id, name, location, slug)
VALUES ($1, $2, $3, $4)
RETURNING ` + restaurantCols
	return scanRestaurant(r.db.QueryRow(ctx, q, p.OwnerID, p.Name, p.Location, p.Slug))
}

func (r *RestaurantRepo) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	q := `SELECT ` + restaurantCols + ` FROM restaurants WHERE id=$1`
	return scanRestaurant(r.db.QueryRow(ctx, q, id))
}

func (r *RestaurantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	q := `SELECT ` + restaurantCols + ` FROM restaurants WHERE slug=$1`
	return scanRestaurant(r.db.QueryRow(ctx, q, slug))
}

func (r *RestaurantRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Restaurant, error) {
	q := `SELECT ` + restaurantCols + ` FROM restaurants WHERE owner_id=$1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Location, &rest.Slug, &rest.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	return out, rows.Err()
}

func (r *RestaurantRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM restaurants WHERE slug=$1)`, slug).Scan(&ok)
	return ok, err
}

// Delete cascades by hand inside one transaction, the FK order being
// links -> dishes -> categories -> restaurant.
func (r *RestaurantRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
DELETE FROM dish_categories
WHERE dish_id IN (SELECT id FROM dishes WHERE restaurant_id=$1)
   OR category_id IN (SELECT id FROM categories WHERE restaurant_id=$1)`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM dishes WHERE restaurant_id=$1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM categories WHERE restaurant_id=$1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM restaurants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}
