package articles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"newssense/internal/common"
	"newssense/internal/dbx"
	"newssense/internal/server/models"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, article *models.SavedArticle) error {

	query :=
		`INSERT INTO saved_articles (id, user_id, title, url, source, published_at)
         VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.UserID, article.Title, article.URL, article.Source, article.PublishedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return common.ErrDuplicate
			case pgForeignKeyViolation:
				return common.ErrNotFound
			}
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.SavedArticle, error) {
	query :=
		`SELECT id, user_id, title, url, source, published_at FROM saved_articles
		 WHERE user_id = $1
		 ORDER BY position
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := []models.SavedArticle{}
	for rows.Next() {
		var a models.SavedArticle
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.URL, &a.Source, &a.PublishedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, articleID string) error {
	// The id column is uuid typed; a malformed id cannot match any row, so it
	// is treated as already absent instead of tripping a 22P02 cast error.
	if _, err := uuid.Parse(articleID); err != nil {
		return nil
	}

	query :=
		`DELETE FROM saved_articles
		 WHERE user_id = $1 AND id = $2
		 `

	// Removal is idempotent: zero affected rows is still success.
	if _, err := r.db.ExecContext(ctx, query, userID, articleID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
