package repository

import (
	"context"

	"siddeshlogistics/models"
)

// UserRepository stores bill owners. Password hashing happens before a user reaches the store.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.AppUser) error
	// GetUserByEmail returns nil, nil when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error)
}
