package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"newssense/internal/common"
	"newssense/internal/dbx"
	"newssense/internal/server/models"
	"newssense/internal/server/repositories/repomanager"
)

// Placeholder values for article fields the client did not supply.
const (
	DefaultTitle       = "No Title"
	DefaultSource      = "Unknown Source"
	DefaultPublishedAt = "1970-01-01T00:00:00Z"
)

// SavedArticleInput is the client-supplied shape of a save request.
type SavedArticleInput struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
}

// ArticleService implements the per-account saved-article collection. All
// operations take the account ID resolved by the auth middleware; a
// client-supplied ID is never trusted.
type ArticleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewArticleService(db *sql.DB, m repomanager.RepositoryManager) *ArticleService {
	return &ArticleService{db: db, repomanager: m}
}

// Save appends an article to the user's collection and returns the updated
// list. Missing optional fields get documented placeholders; a blank URL is
// rejected since it is the de-duplication key. Insert and list run in one
// transaction so the returned list always contains the new entry.
func (s *ArticleService) Save(ctx context.Context, userID string, in SavedArticleInput) ([]models.SavedArticle, error) {
	if in.URL == "" {
		return nil, fmt.Errorf("%w: url is required", common.ErrValidation)
	}

	article := &models.SavedArticle{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       withDefault(in.Title, DefaultTitle),
		URL:         in.URL,
		Source:      withDefault(in.Source, DefaultSource),
		PublishedAt: withDefault(in.PublishedAt, DefaultPublishedAt),
	}

	var list []models.SavedArticle
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Articles(tx)
		if err := repo.Insert(ctx, article); err != nil {
			return err
		}
		var listErr error
		list, listErr = repo.ListByUser(ctx, userID)
		return listErr
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}

// List returns the user's saved articles in insertion order.
func (s *ArticleService) List(ctx context.Context, userID string) ([]models.SavedArticle, error) {
	return s.repomanager.Articles(s.db).ListByUser(ctx, userID)
}

// Remove deletes the entry with the given ID and returns the remaining list.
// Removing an absent ID is idempotent success.
func (s *ArticleService) Remove(ctx context.Context, userID, articleID string) ([]models.SavedArticle, error) {
	repo := s.repomanager.Articles(s.db)
	if err := repo.Delete(ctx, userID, articleID); err != nil {
		return nil, err
	}
	return repo.ListByUser(ctx, userID)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
