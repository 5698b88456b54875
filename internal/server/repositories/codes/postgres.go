package codes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, identifier string, code uint32, issuedAt time.Time) error {
	query :=
		`INSERT INTO verification_codes (identifier, code, issued_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (identifier) DO UPDATE
		 SET code = EXCLUDED.code, issued_at = EXCLUDED.issued_at
		 `

	if _, err := r.db.ExecContext(ctx, query, identifier, int64(code), issuedAt.UTC()); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetLatest(ctx context.Context, identifier string) (*models.VerificationCode, error) {
	query :=
		`SELECT identifier, code, issued_at FROM verification_codes
		 WHERE identifier = $1
		 `

	var (
		c    models.VerificationCode
		code int64
	)
	err := r.db.QueryRowContext(ctx, query, identifier).Scan(&c.Identifier, &code, &c.IssuedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	c.Code = uint32(code)
	c.IssuedAt = c.IssuedAt.UTC()
	return &c, nil
}
