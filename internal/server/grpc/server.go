// Package grpc exposes the identity and record services over a single
// gRPC endpoint.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/jfrjs/publicada/internal/logging"
	pb "github.com/jfrjs/publicada/internal/proto"
	"github.com/jfrjs/publicada/internal/server/services"
)

type GRPCServer struct {
	pb.UnimplementedPublicadaServiceServer
	address   string
	identity  *services.IdentityService
	records   *services.RecordService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(addr string, l logging.Logger, is *services.IdentityService, rs *services.RecordService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   addr,
		logger:    l.With("module", "grpc_server"),
		identity:  is,
		records:   rs,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterPublicadaServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
