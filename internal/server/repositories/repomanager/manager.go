// Package repomanager vends repository implementations bound to a DB handle
// and owns the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"newssense/internal/dbx"
	"newssense/internal/server/repositories/articles"
	"newssense/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to either a *sql.DB or an
// open transaction, so services can mix plain and transactional access.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Articles(db dbx.DBTX) articles.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
