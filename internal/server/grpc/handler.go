package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nathanjchan/dothething-backend/internal/common"
	pb "github.com/nathanjchan/dothething-backend/internal/proto"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
)

// statusFromError maps service-layer sentinel errors onto gRPC codes.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorUnauthenticated) || errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorCodeConflict):
		return status.Error(codes.AlreadyExists, "code conflict")
	case errors.Is(err, common.ErrorMalformedKey):
		return status.Error(codes.InvalidArgument, "invalid argument")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	s.logger.Info(ctx, "Login request")

	sessionID, err := s.accounts.Login(ctx, req.IdToken)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.LoginResponse{SessionId: sessionID}, nil

}

func (s *GRPCServer) AllocateCode(ctx context.Context, req *pb.AllocateCodeRequest) (*pb.AllocateCodeResponse, error) {

	code, err := s.codes.Allocate(ctx)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Allocated code", "code", code)
	return &pb.AllocateCodeResponse{Code: code}, nil

}

func (s *GRPCServer) AppendToCode(ctx context.Context, req *pb.AppendToCodeRequest) (*pb.AppendToCodeResponse, error) {

	account, ok := accountFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "internal error")
	}

	target, err := s.codes.AppendTarget(ctx, account, req.Code, req.FileExtension)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.AppendToCodeResponse{UploadUrl: target.URL, AssetKey: target.Key}, nil

}

func (s *GRPCServer) GetFeed(ctx context.Context, req *pb.GetFeedRequest) (*pb.GetFeedResponse, error) {

	account, ok := accountFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "internal error")
	}

	clips, err := s.feed.GetFeed(ctx, account.ID, int(req.BatchIndex))

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.GetFeedResponse{Clips: clipsToProto(clips)}, nil

}

func (s *GRPCServer) GetCodes(ctx context.Context, req *pb.GetCodesRequest) (*pb.GetCodesResponse, error) {

	account, ok := accountFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "internal error")
	}

	result, err := s.feed.GetCodes(ctx, account.ID)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.GetCodesResponse{Codes: result}, nil

}

func (s *GRPCServer) GetClips(ctx context.Context, req *pb.GetClipsRequest) (*pb.GetClipsResponse, error) {

	clips, err := s.feed.GetClipsForCode(ctx, req.Code)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.GetClipsResponse{Clips: clipsToProto(clips)}, nil

}

func (s *GRPCServer) GetClipURL(ctx context.Context, req *pb.GetClipURLRequest) (*pb.GetClipURLResponse, error) {

	url, err := s.codes.DownloadURL(ctx, req.Id)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.GetClipURLResponse{Url: url}, nil

}

func (s *GRPCServer) GetInteractions(ctx context.Context, req *pb.GetInteractionsRequest) (*pb.GetInteractionsResponse, error) {

	account, ok := accountFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "internal error")
	}

	interactions, err := s.feed.GetInteractions(ctx, account.ID)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.GetInteractionsResponse{Interactions: interactions}, nil

}

func clipsToProto(clips []*models.FeedClip) []*pb.Clip {
	result := make([]*pb.Clip, 0, len(clips))
	for _, clip := range clips {
		result = append(result, &pb.Clip{
			Code:            clip.Code,
			Id:              clip.ID,
			TimeOfCreation:  clip.CreatedAt,
			ThumbnailBase64: clip.ThumbnailBase64,
		})
	}
	return result
}
