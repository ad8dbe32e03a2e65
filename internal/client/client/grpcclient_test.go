package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/jfrjs/publicada/internal/client/models"
	"github.com/jfrjs/publicada/internal/common"
	pb "github.com/jfrjs/publicada/internal/proto"
)

// fakePBClient implements pb.PublicadaServiceClient with canned responses.
type fakePBClient struct {
	signUpResp    *pb.SignUpResponse
	authorizeResp *pb.AuthorizeResponse
	refreshResp   *pb.RefreshTokenResponse
	getResp       *pb.GetRecordResponse
	pingResp      *pb.PingResponse
	err           error

	putReq    *pb.PutRecordRequest
	deleteReq *pb.DeleteRecordRequest
}

func (f *fakePBClient) SignUp(ctx context.Context, in *pb.SignUpRequest, opts ...grpc.CallOption) (*pb.SignUpResponse, error) {
	return f.signUpResp, f.err
}

func (f *fakePBClient) Authorize(ctx context.Context, in *pb.AuthorizeRequest, opts ...grpc.CallOption) (*pb.AuthorizeResponse, error) {
	return f.authorizeResp, f.err
}

func (f *fakePBClient) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	return f.refreshResp, f.err
}

func (f *fakePBClient) GetRecord(ctx context.Context, in *pb.GetRecordRequest, opts ...grpc.CallOption) (*pb.GetRecordResponse, error) {
	return f.getResp, f.err
}

func (f *fakePBClient) PutRecord(ctx context.Context, in *pb.PutRecordRequest, opts ...grpc.CallOption) (*pb.PutRecordResponse, error) {
	f.putReq = in
	return &pb.PutRecordResponse{}, f.err
}

func (f *fakePBClient) DeleteRecord(ctx context.Context, in *pb.DeleteRecordRequest, opts ...grpc.CallOption) (*pb.DeleteRecordResponse, error) {
	f.deleteReq = in
	return &pb.DeleteRecordResponse{}, f.err
}

func (f *fakePBClient) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.err
}

func TestWithAccessToken_SetsMetadata(t *testing.T) {
	ctx := withAccessToken(context.Background(), "tok")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	require.Equal(t, []string{"tok"}, md.Get(common.AccessTokenHeaderName))
}

func TestWithAccessToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.NewOutgoingContext(context.Background(),
		metadata.Pairs(common.AccessTokenHeaderName, "old"))

	ctx = withAccessToken(ctx, "new")

	md, _ := metadata.FromOutgoingContext(ctx)
	require.Equal(t, []string{"new"}, md.Get(common.AccessTokenHeaderName))
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.NoError(t, c.mapError(nil))
	require.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x")), common.ErrorNotFound)
	require.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), common.ErrorAlreadyExists)
	require.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	require.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "x")), ErrUnauthorized)
	require.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)
	require.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)
	require.Error(t, c.mapError(status.Error(codes.Internal, "boom")))
}

func TestAuthorize_StoresTokenPair(t *testing.T) {
	fake := &fakePBClient{authorizeResp: &pb.AuthorizeResponse{
		UserId:       "u-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		AccessToken:  "at",
		RefreshToken: "rt",
	}}
	c := &GRPCClient{client: fake}

	identity, err := c.Authorize(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, &models.Identity{UserID: "u-1", Name: "Alice", Email: "alice@example.com"}, identity)
	require.Equal(t, "at", c.accessToken)
	require.Equal(t, "rt", c.refreshToken)
}

func TestSignUp_ReturnsUserID(t *testing.T) {
	fake := &fakePBClient{signUpResp: &pb.SignUpResponse{UserId: "u-1"}}
	c := &GRPCClient{client: fake}

	id, err := c.SignUp(context.Background(), "alice", "pw", "Alice", "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "u-1", id)
}

func TestGetRecord_MapsNotFound(t *testing.T) {
	fake := &fakePBClient{err: status.Error(codes.NotFound, "no record")}
	c := &GRPCClient{client: fake}

	_, err := c.GetRecord(context.Background(), "u-1")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPutRecord_PassesFields(t *testing.T) {
	fake := &fakePBClient{}
	c := &GRPCClient{client: fake}

	err := c.PutRecord(context.Background(), &models.Record{ID: "u-1", Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.Equal(t, "u-1", fake.putReq.Record.Id)
	require.Equal(t, "Alice", fake.putReq.Record.Name)
}

func TestDeleteRecord_PassesID(t *testing.T) {
	fake := &fakePBClient{}
	c := &GRPCClient{client: fake}

	require.NoError(t, c.DeleteRecord(context.Background(), "u-1"))
	require.Equal(t, "u-1", fake.deleteReq.Id)
}

func TestPing_StatusNotOK(t *testing.T) {
	fake := &fakePBClient{pingResp: &pb.PingResponse{Status: "degraded"}}
	c := &GRPCClient{client: fake}

	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestLogout_DiscardsTokens(t *testing.T) {
	c := &GRPCClient{accessToken: "at", refreshToken: "rt"}

	c.Logout()
	require.Empty(t, c.accessToken)
	require.Empty(t, c.refreshToken)
}

func TestInterceptor_RefreshesExpiredToken(t *testing.T) {
	fake := &fakePBClient{refreshResp: &pb.RefreshTokenResponse{AccessToken: "new-at", RefreshToken: "new-rt"}}
	c := &GRPCClient{client: fake, accessToken: "stale-at", refreshToken: "rt"}

	calls := 0
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		calls++
		md, _ := metadata.FromOutgoingContext(ctx)
		token := md.Get(common.AccessTokenHeaderName)[0]
		if token == "stale-at" {
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/publicada.service.PublicadaService/GetRecord",
		nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Equal(t, "new-at", c.accessToken)
	require.Equal(t, "new-rt", c.refreshToken)
}

func TestInterceptor_NoRefreshTokenPassesErrorThrough(t *testing.T) {
	c := &GRPCClient{client: &fakePBClient{}}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), "/publicada.service.PublicadaService/GetRecord",
		nil, nil, nil, invoker)
	require.Error(t, err)
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptor_OtherErrorsNotRetried(t *testing.T) {
	c := &GRPCClient{client: &fakePBClient{}, refreshToken: "rt"}

	boom := errors.New("plain error")
	calls := 0
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		calls++
		return boom
	}

	err := c.accessTokenInterceptor(context.Background(), "/publicada.service.PublicadaService/Ping",
		nil, nil, nil, invoker)
	require.Error(t, err)
	require.Equal(t, 1, calls)
}
