package domain

import (
	"context"
	"time"
)

// User represents a registered principal.
// ID is assigned once at creation and never changes.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdm        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines persistence operations for users.
// Lookups return ErrNotFound when no record matches; callers decide
// whether absence is fatal or just an authorization input.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}
