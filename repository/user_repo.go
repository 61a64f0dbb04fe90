package repository

import (
	"context"

	"github.com/SUDD-dawg/Low-Risk/models"
)

// UserRepository persists users. Create hashes the given plaintext password
// and enforces username and email uniqueness, failing with an error wrapping
// ErrConflict on a duplicate. Lookups return ErrNotFound for absent users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User, password string) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
