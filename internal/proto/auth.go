// Package proto defines the AuthService gRPC contract shared by the server
// and the CLI client. Messages are well-known types: requests are Structs
// keyed like the HTTP JSON bodies, responses are Empty.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "gophauth.AuthService"

// Full method names, as seen by interceptors.
const (
	SendCodeMethod = "/" + ServiceName + "/SendCode"
	RegisterMethod = "/" + ServiceName + "/Register"
	LoginMethod    = "/" + ServiceName + "/Login"
)

// AuthServiceServer mirrors the HTTP API. Requests are JSON-like Structs
// with the same field names as the HTTP bodies.
type AuthServiceServer interface {
	SendCode(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Register(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Login(context.Context, *structpb.Struct) (*emptypb.Empty, error)
}

func unaryHandler(method string, call func(AuthServiceServer, context.Context, *structpb.Struct) (*emptypb.Empty, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AuthServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AuthServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AuthServiceDesc describes the service for grpc.Server.RegisterService.
var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SendCode", Handler: unaryHandler(SendCodeMethod, AuthServiceServer.SendCode)},
		{MethodName: "Register", Handler: unaryHandler(RegisterMethod, AuthServiceServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(LoginMethod, AuthServiceServer.Login)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "auth.proto",
}

// AuthServiceClient calls AuthService over a client connection.
type AuthServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) *AuthServiceClient {
	return &AuthServiceClient{cc: cc}
}

func (c *AuthServiceClient) call(ctx context.Context, method string, fields map[string]any, opts ...grpc.CallOption) error {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return err
	}
	return c.cc.Invoke(ctx, method, in, new(emptypb.Empty), opts...)
}

func (c *AuthServiceClient) SendCode(ctx context.Context, identifier string, opts ...grpc.CallOption) error {
	return c.call(ctx, SendCodeMethod, map[string]any{"identifier": identifier}, opts...)
}

func (c *AuthServiceClient) Register(ctx context.Context, identifier, name, password string, code uint32, opts ...grpc.CallOption) error {
	return c.call(ctx, RegisterMethod, map[string]any{
		"identifier": identifier,
		"name":       name,
		"password":   password,
		"code":       float64(code),
	}, opts...)
}

func (c *AuthServiceClient) Login(ctx context.Context, identifier, password string, opts ...grpc.CallOption) error {
	return c.call(ctx, LoginMethod, map[string]any{"identifier": identifier, "password": password}, opts...)
}
