// Package services contains the server-side business logic: issuing and
// redeeming verification codes, and authenticating registered users.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/codegen"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/codes"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/dmitrijs2005/gophauth/internal/server/transport"
	"github.com/dmitrijs2005/gophauth/internal/server/validation"
	"github.com/dmitrijs2005/gophauth/internal/telemetry"
	"github.com/dmitrijs2005/gophauth/internal/timex"
	otelcodes "go.opentelemetry.io/otel/codes"
)

// Deps are the collaborators shared by the services. Zero Clock,
// CodeValidity and Logger fall back to UTC wall time, one hour and a
// discarding logger.
type Deps struct {
	Codes     codes.Repository
	Users     users.Repository
	Sender    transport.Sender
	Generator codegen.Generator
	Hasher    cryptox.Hasher
	Validator *validation.Validator

	Clock        timex.Clock
	CodeValidity time.Duration
	Logger       logging.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = timex.UTCNow
	}
	if d.CodeValidity <= 0 {
		d.CodeValidity = common.DefaultCodeValidity
	}
	if d.Logger == nil {
		d.Logger = logging.NewNopLogger()
	}
	return d
}

// startSpan opens a span on the global tracer and returns a finisher that
// records err on it.
func startSpan(ctx context.Context, name string) (context.Context, func(err error)) {
	ctx, span := telemetry.Tracer().Start(ctx, name)
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
		}
		span.End()
	}
}

