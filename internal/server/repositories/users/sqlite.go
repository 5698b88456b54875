package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, user *models.User) error {
	query := `INSERT OR IGNORE INTO users (identifier, name, password_digest) VALUES (?, ?, ?)`

	n, err := dbx.ExecAffected(ctx, r.db, query, user.Identifier, user.Name, user.PasswordDigest)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrDuplicateIdentifier
		}
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrDuplicateIdentifier
	}

	return nil
}

func (r *SQLiteRepository) FindByCredentials(ctx context.Context, identifier, passwordDigest string) (bool, error) {
	query := `SELECT COUNT(1) FROM users WHERE identifier = ? AND password_digest = ?`

	var n int
	if err := r.db.QueryRowContext(ctx, query, identifier, passwordDigest).Scan(&n); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n > 0, nil
}
