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

// SQLiteRepository stores issued_at as UTC unix nanoseconds.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert inserts the row if missing and otherwise updates it. When the handle
// can begin transactions both statements run in one; a handle that already is
// a transaction is used as is.
func (r *SQLiteRepository) Upsert(ctx context.Context, identifier string, code uint32, issuedAt time.Time) error {
	issued := issuedAt.UTC().UnixNano()

	upsert := func(ctx context.Context, db dbx.DBTX) error {
		n, err := dbx.ExecAffected(ctx, db,
			`INSERT OR IGNORE INTO verification_codes (identifier, code, issued_at) VALUES (?, ?, ?)`,
			identifier, int64(code), issued)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		_, err = db.ExecContext(ctx,
			`UPDATE verification_codes SET code = ?, issued_at = ? WHERE identifier = ?`,
			int64(code), issued, identifier)
		return err
	}

	var err error
	if b, ok := r.db.(dbx.TxBeginner); ok {
		err = dbx.WithTx(ctx, b, nil, upsert)
	} else {
		err = upsert(ctx, r.db)
	}
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) GetLatest(ctx context.Context, identifier string) (*models.VerificationCode, error) {
	query := `SELECT identifier, code, issued_at FROM verification_codes WHERE identifier = ?`

	var (
		c      models.VerificationCode
		code   int64
		issued int64
	)
	err := r.db.QueryRowContext(ctx, query, identifier).Scan(&c.Identifier, &code, &issued)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	c.Code = uint32(code)
	c.IssuedAt = time.Unix(0, issued).UTC()
	return &c, nil
}
