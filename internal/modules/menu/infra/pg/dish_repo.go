package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/domain"
)

type DishRepo struct{ db *pgxpool.Pool }

func NewDishRepo(db *pgxpool.Pool) *DishRepo { return &DishRepo{db: db} }

const dishCols = `id, restaurant_id, name, image_url, description, price_cents, spice_level, created_at`

func scanDish(row pgx.Row) (*domain.Dish, error) {
	var d domain.Dish
	if err := row.Scan(&d.ID, &d.RestaurantID, &d.Name, &d.ImageURL, &d.Description,
		&d.PriceCents, &d.SpiceLevel, &d.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DishRepo) Create(ctx context.Context, p domain.CreateDishParams) (*domain.Dish, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	q := `
INSERT INTO dishes (restaurant_id, name, image_url, description, price_cents, spice_level)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + dishCols
	d, err := scanDish(tx.QueryRow(ctx, q, p.RestaurantID, p.Name, p.ImageURL, p.Description, p.PriceCents, p.SpiceLevel))
	if err != nil {
		return nil, err
	}
	for _, cid := range p.CategoryIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO dish_categories (dish_id, category_id) VALUES ($1, $2)`, d.ID, cid); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DishRepo) GetByID(ctx context.Context, id string) (*domain.Dish, error) {
	return scanDish(r.db.QueryRow(ctx, `SELECT `+dishCols+` FROM dishes WHERE id=$1`, id))
}

func (r *DishRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+dishCols+` FROM dishes WHERE restaurant_id=$1 ORDER BY created_at`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDishes(rows)
}

func (r *DishRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.Dish, error) {
	rows, err := r.db.Query(ctx, `
SELECT d.id, d.restaurant_id, d.name, d.image_url, d.description, d.price_cents, d.spice_level, d.created_at
FROM dish_categories dc
JOIN dishes d ON d.id = dc.dish_id
WHERE dc.category_id = $1
ORDER BY dc.assigned_at`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDishes(rows)
}

func collectDishes(rows pgx.Rows) ([]domain.Dish, error) {
	out := []domain.Dish{}
	for rows.Next() {
		var d domain.Dish
		if err := rows.Scan(&d.ID, &d.RestaurantID, &d.Name, &d.ImageURL, &d.Description,
			&d.PriceCents, &d.SpiceLevel, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DishRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM dish_categories WHERE dish_id=$1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM dishes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}
