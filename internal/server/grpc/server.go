// Package grpc serves the registration and login operations over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

// Registrar issues and redeems verification codes.
type Registrar interface {
	IssueCode(ctx context.Context, identifier string) error
	Redeem(ctx context.Context, identifier, name, password string, code uint32) error
}

// Authenticator checks user credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, password string) error
}

type GRPCServer struct {
	address      string
	registration Registrar
	login        Authenticator
	logger       logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, reg Registrar, login Authenticator) *GRPCServer {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		registration: reg,
		login:        login,
	}
}

// NewServer builds a grpc.Server with the service registered, tracing and
// the logging interceptor installed.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor),
	)
	srv.RegisterService(&pb.AuthServiceDesc, s)
	return srv
}

// Run listens on the configured address until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
