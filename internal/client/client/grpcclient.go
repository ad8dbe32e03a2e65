package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/jfrjs/publicada/internal/client/models"
	"github.com/jfrjs/publicada/internal/common"
	pb "github.com/jfrjs/publicada/internal/proto"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.PublicadaServiceClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.AccessToken
		s.refreshToken = refreshTokenResponse.RefreshToken

		// tokens refreshed, retry with the new access token
		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewPublicadaClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewPublicadaServiceClient(conn)
	return nil
}

func (s *GRPCClient) SignUp(ctx context.Context, username, password, name, email string) (string, error) {

	req := &pb.SignUpRequest{Username: username, Password: password, Name: name, Email: email}

	resp, err := s.client.SignUp(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.UserId, nil
}

func (s *GRPCClient) Authorize(ctx context.Context, username, password string) (*models.Identity, error) {

	req := &pb.AuthorizeRequest{Username: username, Password: password}

	resp, err := s.client.Authorize(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return &models.Identity{UserID: resp.UserId, Name: resp.Name, Email: resp.Email}, nil
}

func (s *GRPCClient) GetRecord(ctx context.Context, id string) (*models.Record, error) {

	req := &pb.GetRecordRequest{Id: id}

	resp, err := s.client.GetRecord(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.Record{ID: resp.Record.Id, Name: resp.Record.Name, Email: resp.Record.Email}, nil
}

func (s *GRPCClient) PutRecord(ctx context.Context, record *models.Record) error {

	req := &pb.PutRecordRequest{Record: &pb.Record{Id: record.ID, Name: record.Name, Email: record.Email}}

	if _, err := s.client.PutRecord(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) DeleteRecord(ctx context.Context, id string) error {

	req := &pb.DeleteRecordRequest{Id: id}

	if _, err := s.client.DeleteRecord(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Logout() {
	s.accessToken = ""
	s.refreshToken = ""
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
