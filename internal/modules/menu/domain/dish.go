package domain

import (
	"context"
	"time"
)

type Dish struct {
	ID           string
	RestaurantID string
	Name         string
	ImageURL     string
	Description  string
	PriceCents   int
	SpiceLevel   *int
	CreatedAt    time.Time
}

type CreateDishParams struct {
	RestaurantID string
	Name         string
	ImageURL     string
	Description  string
	PriceCents   int
	SpiceLevel   *int
	CategoryIDs  []string
}

type DishRepo interface {
	Create(ctx context.Context, p CreateDishParams) (*Dish, error)
	GetByID(ctx context.Context, id string) (*Dish, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]Dish, error)
	// ListByCategory returns dishes in assignment order.
	ListByCategory(ctx context.Context, categoryID string) ([]Dish, error)
	Delete(ctx context.Context, id string) error
}
