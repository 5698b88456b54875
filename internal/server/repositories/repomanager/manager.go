package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/codes"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Codes(db dbx.DBTX) codes.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewRepositoryManager returns the manager for driver ("postgres" or "sqlite").
func NewRepositoryManager(driver string) (RepositoryManager, error) {
	switch driver {
	case "postgres":
		return NewPostgresRepositoryManager(), nil
	case "sqlite":
		return NewSQLiteRepositoryManager(), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// SQLDriverName maps a config driver to the database/sql driver name.
func SQLDriverName(driver string) string {
	if driver == "postgres" {
		return "pgx"
	}
	return driver
}
