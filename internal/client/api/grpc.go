package api

import (
	"context"

	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client *pb.AuthServiceClient
}

// NewGRPCClient prepares a connection to addr. Dialing is lazy, so an
// unreachable server surfaces on the first call.
func NewGRPCClient(addr string, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}, opts...)

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &GRPCClient{conn: conn, client: pb.NewAuthServiceClient(conn)}, nil
}

func (c *GRPCClient) SendCode(ctx context.Context, identifier string) error {
	return fromStatus(c.client.SendCode(ctx, identifier))
}

func (c *GRPCClient) Register(ctx context.Context, identifier, name, password string, code uint32) error {
	return fromStatus(c.client.Register(ctx, identifier, name, password, code))
}

func (c *GRPCClient) Login(ctx context.Context, identifier, password string) error {
	return fromStatus(c.client.Login(ctx, identifier, password))
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.InvalidArgument, codes.AlreadyExists, codes.Unauthenticated:
		return &Error{Reason: st.Message()}
	case codes.Internal, codes.Unknown:
		return &Error{Reason: st.Message(), ServerFault: true}
	}
	return err
}
