package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/domain"
)

type CategoryRepo struct{ db *pgxpool.Pool }

func NewCategoryRepo(db *pgxpool.Pool) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(ctx context.Context, restaurantID, name string) (*domain.Category, error) {
	// sort_order lands after the restaurant's current maximum
	q := `
INSERT INTO categories (restaurant_id, name, sort_order)
VALUES ($1, $2, COALESCE((SELECT MAX(sort_order) FROM categories WHERE restaurant_id=$1), 0) + 1)
RETURNING id, restaurant_id, name, sort_order, created_at`
	var c domain.Category
	row := r.db.QueryRow(ctx, q, restaurantID, name)
	if err := row.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.SortOrder, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	row := r.db.QueryRow(ctx,
		`SELECT id, restaurant_id, name, sort_order, created_at FROM categories WHERE id=$1`, id)
	if err := row.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.SortOrder, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, restaurant_id, name, sort_order, created_at
		 FROM categories WHERE restaurant_id=$1 ORDER BY sort_order`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.SortOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM dish_categories WHERE category_id=$1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}
