package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// RegistrationService issues verification codes and redeems them into user
// accounts.
type RegistrationService struct {
	d Deps
}

func NewRegistrationService(d Deps) *RegistrationService {
	d = d.withDefaults()
	d.Logger = d.Logger.With("module", "registration")
	return &RegistrationService{d: d}
}

// IssueCode sends a fresh code to identifier and then stores it. A failed
// send stores nothing. A failed store after a successful send is reported as
// common.ErrStore even though the user already received the code.
func (s *RegistrationService) IssueCode(ctx context.Context, identifier string) (err error) {
	ctx, end := startSpan(ctx, "registration.IssueCode")
	defer func() { end(err) }()

	if err := s.d.Validator.ValidateIdentifier(identifier); err != nil {
		return err
	}

	code := s.d.Generator.Generate()
	message := fmt.Sprintf(common.CodeMessageTemplate, code)

	if err := s.d.Sender.Send(ctx, message, identifier); err != nil {
		s.d.Logger.Error(ctx, "code delivery failed", "identifier", identifier, "error", err)
		return fmt.Errorf("%w: %v", common.ErrTransport, err)
	}

	if err := s.d.Codes.Upsert(ctx, identifier, code, s.d.Clock()); err != nil {
		s.d.Logger.Warn(ctx, "code delivered but not stored", "identifier", identifier, "error", err)
		return fmt.Errorf("%w: %v", common.ErrStore, err)
	}

	s.d.Logger.Debug(ctx, "code issued", "identifier", identifier)
	return nil
}

// Redeem creates the account for identifier when code matches the latest
// unexpired code issued for it. Checks run in order and stop at the first
// failure; nothing is written unless every check passes.
func (s *RegistrationService) Redeem(ctx context.Context, identifier, name, password string, code uint32) (err error) {
	ctx, end := startSpan(ctx, "registration.Redeem")
	defer func() { end(err) }()

	if err := s.d.Validator.ValidateIdentifier(identifier); err != nil {
		return err
	}
	if err := s.d.Validator.ValidateName(name); err != nil {
		return err
	}
	if err := s.d.Validator.ValidatePassword(password); err != nil {
		return err
	}

	latest, err := s.d.Codes.GetLatest(ctx, identifier)
	if err != nil {
		s.d.Logger.Error(ctx, "get latest code", "identifier", identifier, "error", err)
		return fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	// never issued counts as expired
	if latest == nil || latest.Expired(s.d.Clock(), s.d.CodeValidity) {
		return common.ErrExpiredCode
	}
	if latest.Code != code {
		return common.ErrWrongCode
	}

	user := &models.User{
		Identifier:     identifier,
		Name:           name,
		PasswordDigest: s.d.Hasher.Digest(password),
	}
	if err := s.d.Users.Insert(ctx, user); err != nil {
		if errors.Is(err, common.ErrDuplicateIdentifier) {
			return err
		}
		s.d.Logger.Error(ctx, "insert user", "identifier", identifier, "error", err)
		return fmt.Errorf("%w: %v", common.ErrStore, err)
	}

	s.d.Logger.Info(ctx, "user registered", "identifier", identifier)
	return nil
}
