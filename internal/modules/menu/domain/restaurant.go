package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

type Restaurant struct {
	ID        string
	OwnerID   string
	Name      string
	Location  string
	Slug      string
	CreatedAt time.Time
}

type CreateRestaurantParams struct {
	OwnerID  string
	Name     string
	Location string
	Slug     string
}

type RestaurantRepo interface {
	Create(ctx context.Context, p CreateRestaurantParams) (*Restaurant, error)
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	GetBySlug(ctx context.Context, s string) (*Restaurant, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Restaurant, error)
	SlugExists(ctx context.Context, s string) (bool, error)
	// Delete removes the restaurant with its categories, dishes and dish
	// links in one transaction.
	Delete(ctx context.Context, id string) error
}

// UniqueSlug derives a URL slug from name, appending -1, -2, … until the
// repo reports it free. Slugs are stable after creation.
func UniqueSlug(ctx context.Context, name string, repo RestaurantRepo) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "restaurant"
	}
	candidate := base
	for i := 1; ; i++ {
		exists, err := repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
