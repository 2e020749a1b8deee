// Package articles provides persistence for per-user saved articles.
package articles

import (
	"context"

	"newssense/internal/server/models"
)

type Repository interface {
	// Insert appends a saved article. A (user, url) collision yields
	// common.ErrDuplicate; an unknown user yields common.ErrNotFound.
	Insert(ctx context.Context, article *models.SavedArticle) error

	// ListByUser returns the user's saved articles in insertion order.
	// The result is never nil.
	ListByUser(ctx context.Context, userID string) ([]models.SavedArticle, error)

	// Delete removes the article with the given ID if the user owns it.
	// Deleting an absent ID is not an error.
	Delete(ctx context.Context, userID, articleID string) error
}
