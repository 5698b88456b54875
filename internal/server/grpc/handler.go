package grpc

import (
	"context"
	"errors"
	"math"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func (s *GRPCServer) SendCode(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := s.registration.IssueCode(ctx, stringField(req, "identifier")); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	code, err := codeField(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	err = s.registration.Redeem(ctx,
		stringField(req, "identifier"),
		stringField(req, "name"),
		stringField(req, "password"),
		code,
	)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "identifier", stringField(req, "identifier"))
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := s.login.Authenticate(ctx, stringField(req, "identifier"), stringField(req, "password")); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

// toStatus converts a service error into a gRPC status. Transport and server
// faults are logged and reported without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidIdentifier),
		errors.Is(err, common.ErrInvalidName),
		errors.Is(err, common.ErrInvalidPassword),
		errors.Is(err, common.ErrInvalidCode),
		errors.Is(err, common.ErrExpiredCode),
		errors.Is(err, common.ErrWrongCode):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrDuplicateIdentifier):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrWrongCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrTransport):
		s.logger.Warn(ctx, "delivery failed", "error", err)
		return status.Error(codes.Unavailable, common.ErrTransport.Error())
	}
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func stringField(req *structpb.Struct, name string) string {
	if req == nil {
		return ""
	}
	return req.GetFields()[name].GetStringValue()
}

var errBadCode = common.NewValidationError("code", common.ErrInvalidCode)

// codeField reads the numeric code. The field must be present and hold a
// whole number in the uint32 range.
func codeField(req *structpb.Struct) (uint32, error) {
	v, ok := req.GetFields()["code"]
	if !ok {
		return 0, errBadCode
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errBadCode
	}
	f := n.NumberValue
	if f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
		return 0, errBadCode
	}
	return uint32(f), nil
}
