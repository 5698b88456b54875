package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, user *models.User) error {
	query :=
		`INSERT INTO users (identifier, name, password_digest)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (identifier) DO NOTHING
		 `

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

func (r *PostgresRepository) FindByCredentials(ctx context.Context, identifier, passwordDigest string) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM users
		   WHERE identifier = $1 AND password_digest = $2
		 )
		 `

	var found bool
	if err := r.db.QueryRowContext(ctx, query, identifier, passwordDigest).Scan(&found); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return found, nil
}
