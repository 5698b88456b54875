// Package users stores registered accounts, one per identifier.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository persists users. Insert is a single compare-and-insert: when a
// user with the same identifier exists it returns common.ErrDuplicateIdentifier
// and leaves the stored record untouched.
type Repository interface {
	Insert(ctx context.Context, user *models.User) error
	FindByCredentials(ctx context.Context, identifier, passwordDigest string) (bool, error)
}
