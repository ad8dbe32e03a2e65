package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/jfrjs/publicada/internal/common"
	pb "github.com/jfrjs/publicada/internal/proto"
	"github.com/jfrjs/publicada/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// protectedMethods lists the RPCs that require a valid access token.
// Identity RPCs (SignUp, Authorize, RefreshToken) and Ping stay open.
var protectedMethods = map[string]bool{
	pb.PublicadaService_GetRecord_FullMethodName:    true,
	pb.PublicadaService_PutRecord_FullMethodName:    true,
	pb.PublicadaService_DeleteRecord_FullMethodName: true,
}

// accessTokenInterceptor verifies the access token on protected RPCs and
// stashes the authenticated user id in the request context.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			// The expiry message is matched by the client to trigger a
			// transparent token refresh.
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, userIDKey, userID)
	}

	return handler(ctx, req)
}

// userIDFromContext returns the user id stored by the interceptor.
func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
