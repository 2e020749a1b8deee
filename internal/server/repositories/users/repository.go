// Package users provides persistence for account records.
package users

import (
	"context"

	"newssense/internal/server/models"
)

type Repository interface {
	// Create inserts a new account and returns it with the assigned ID.
	// A username or email collision yields common.ErrConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the account with the given email, or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByIdentifier resolves a login identifier against username or email.
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)

	// SetVerified marks the account verified and clears its verification code
	// in a single statement. Unknown IDs yield common.ErrNotFound.
	SetVerified(ctx context.Context, userID string) error
}
