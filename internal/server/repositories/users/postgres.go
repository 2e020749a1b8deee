package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"newssense/internal/common"
	"newssense/internal/dbx"
	"newssense/internal/server/models"
)

// Postgres error codes used for sentinel mapping.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, email, password_hash, verification_code, verified)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, nullable(user.VerificationCode), user.Verified).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, verification_code, verified FROM users
		 WHERE email = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, verification_code, verified FROM users
		 WHERE username = $1 OR email = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, identifier))
}

func (r *PostgresRepository) SetVerified(ctx context.Context, userID string) error {
	query :=
		`UPDATE users SET verified = true, verification_code = NULL
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var code sql.NullString

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &code, &user.Verified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.VerificationCode = code.String
	return user, nil
}

// nullable converts an empty string to a SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
