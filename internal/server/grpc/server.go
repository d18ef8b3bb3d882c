package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/nathanjchan/dothething-backend/internal/logging"
	pb "github.com/nathanjchan/dothething-backend/internal/proto"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
)

type accountSvc interface {
	Login(ctx context.Context, idToken string) (string, error)
	Resolve(ctx context.Context, sessionID string) (*models.Account, error)
}

type codeSvc interface {
	Allocate(ctx context.Context) (string, error)
	AppendTarget(ctx context.Context, account *models.Account, code, extension string) (*models.UploadTarget, error)
	DownloadURL(ctx context.Context, assetKey string) (string, error)
}

type feedSvc interface {
	GetFeed(ctx context.Context, accountID string, batchIndex int) ([]*models.FeedClip, error)
	GetCodes(ctx context.Context, accountID string) ([]string, error)
	GetClipsForCode(ctx context.Context, code string) ([]*models.FeedClip, error)
	GetInteractions(ctx context.Context, accountID string) (int64, error)
}

type GRPCServer struct {
	pb.UnimplementedDoTheThingServiceServer
	address  string
	accounts accountSvc
	codes    codeSvc
	feed     feedSvc
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as accountSvc, cs codeSvc, fs feedSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		accounts: as,
		codes:    cs,
		feed:     fs,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.sessionInterceptor))

	// registers service
	pb.RegisterDoTheThingServiceServer(srv, s)

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
