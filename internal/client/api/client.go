// Package api talks to the gophauth server over HTTP or gRPC behind one
// interface, so the CLI does not care which transport is configured.
package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/config"
)

// Client performs the three account operations against a server.
type Client interface {
	SendCode(ctx context.Context, identifier string) error
	Register(ctx context.Context, identifier, name, password string, code uint32) error
	Login(ctx context.Context, identifier, password string) error
	Close() error
}

// Error is a failure reported by the server. Reason is the text the server
// sent back; ServerFault is set when the server blamed itself rather than
// the request.
type Error struct {
	Reason      string
	ServerFault bool
}

func (e *Error) Error() string {
	if e.ServerFault {
		return "server error: " + e.Reason
	}
	return e.Reason
}

// New returns the Client selected by cfg.Protocol.
func New(cfg *config.Config) (Client, error) {
	switch cfg.Protocol {
	case config.ProtocolHTTP:
		return NewHTTPClient(cfg.ServerHTTPAddr, cfg.RequestTimeout), nil
	case config.ProtocolGRPC:
		return NewGRPCClient(cfg.ServerGRPCAddr)
	}
	return nil, fmt.Errorf("unsupported protocol %q", cfg.Protocol)
}
