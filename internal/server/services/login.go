package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// LoginService checks credentials of registered users.
type LoginService struct {
	d Deps
}

func NewLoginService(d Deps) *LoginService {
	d = d.withDefaults()
	d.Logger = d.Logger.With("module", "login")
	return &LoginService{d: d}
}

// Authenticate returns nil when a user with identifier and password exists.
// An unknown identifier and a wrong password both yield
// common.ErrWrongCredentials.
func (s *LoginService) Authenticate(ctx context.Context, identifier, password string) (err error) {
	ctx, end := startSpan(ctx, "login.Authenticate")
	defer func() { end(err) }()

	if err := s.d.Validator.ValidateIdentifier(identifier); err != nil {
		return err
	}
	if err := s.d.Validator.ValidatePassword(password); err != nil {
		return err
	}

	ok, err := s.d.Users.FindByCredentials(ctx, identifier, s.d.Hasher.Digest(password))
	if err != nil {
		s.d.Logger.Error(ctx, "find user", "identifier", identifier, "error", err)
		return fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	if !ok {
		return common.ErrWrongCredentials
	}

	return nil
}
