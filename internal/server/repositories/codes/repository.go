// Package codes stores the latest verification code issued per identifier.
// There is no history: every Upsert replaces the previous code and its
// issue time together.
package codes

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, identifier string, code uint32, issuedAt time.Time) error
	// GetLatest returns (nil, nil) when no code was ever issued for identifier.
	GetLatest(ctx context.Context, identifier string) (*models.VerificationCode, error)
}
