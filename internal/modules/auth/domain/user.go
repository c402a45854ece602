package domain

import (
	"context"
	"time"
)

// User is a restaurant owner. Email is the stable identity key; the profile
// fields start empty and are filled in later from the admin profile form.
type User struct {
	ID        string
	Email     string
	FullName  string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserRepo interface {
	// Create inserts a user with empty profile fields. If a user with the
	// email already exists it returns that user, so two racing first
	// sign-ins both resolve to the same row and only the token consume
	// decides the winner.
	Create(ctx context.Context, email string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id, fullName, country string) error
}
