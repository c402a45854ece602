package domain

import (
	"context"
	"time"
)

type Category struct {
	ID           string
	RestaurantID string
	Name         string
	SortOrder    int
	CreatedAt    time.Time
}

type CategoryRepo interface {
	// Create appends the category at the end of the restaurant's menu:
	// sort_order becomes max(sort_order)+1 within the restaurant.
	Create(ctx context.Context, restaurantID, name string) (*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]Category, error)
	Delete(ctx context.Context, id string) error
}
