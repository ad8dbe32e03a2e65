package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jfrjs/publicada/internal/common"
	pb "github.com/jfrjs/publicada/internal/proto"
	"github.com/jfrjs/publicada/internal/server/models"
)

// mapError converts a service error into a gRPC status error.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	account, err := s.identity.SignUp(ctx, req.Username, req.Password, req.Name, req.Email)
	if err != nil {
		s.logger.Error(ctx, "Registration failed", "username", req.Username, "error", err.Error())
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username, "user_id", account.ID)
	return &pb.SignUpResponse{UserId: account.ID}, nil
}

func (s *GRPCServer) Authorize(ctx context.Context, req *pb.AuthorizeRequest) (*pb.AuthorizeResponse, error) {

	account, tokens, err := s.identity.Authorize(ctx, req.Username, req.Password)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.AuthorizeResponse{
		UserId:       account.ID,
		Name:         account.Name,
		Email:        account.Email,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.identity.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.RefreshTokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) GetRecord(ctx context.Context, req *pb.GetRecordRequest) (*pb.GetRecordResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	record, err := s.records.Get(ctx, userID, req.Id)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.GetRecordResponse{Record: &pb.Record{
		Id:    record.ID,
		Name:  record.Name,
		Email: record.Email,
	}}, nil
}

func (s *GRPCServer) PutRecord(ctx context.Context, req *pb.PutRecordRequest) (*pb.PutRecordResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}
	if req.Record == nil {
		return nil, status.Error(codes.InvalidArgument, "missing record")
	}

	record := &models.Record{
		ID:    req.Record.Id,
		Name:  req.Record.Name,
		Email: req.Record.Email,
	}

	if err := s.records.Put(ctx, userID, record); err != nil {
		return nil, mapError(err)
	}

	return &pb.PutRecordResponse{}, nil
}

func (s *GRPCServer) DeleteRecord(ctx context.Context, req *pb.DeleteRecordRequest) (*pb.DeleteRecordResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.records.Delete(ctx, userID, req.Id); err != nil {
		return nil, mapError(err)
	}

	return &pb.DeleteRecordResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
