package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/nathanjchan/dothething-backend/internal/common"
	pb "github.com/nathanjchan/dothething-backend/internal/proto"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
)

type ctxKey string

// AccountKey carries the resolved account through the handler chain.
const AccountKey ctxKey = "account"

// SessionIDHeaderName is the metadata key clients send their session token in.
const SessionIDHeaderName = "session-id"

// openMethods need no session: Ping is a health probe and Login is how a
// session is obtained in the first place.
var openMethods = map[string]bool{
	pb.DoTheThingService_Ping_FullMethodName:  true,
	pb.DoTheThingService_Login_FullMethodName: true,
}

func (s *GRPCServer) sessionInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !openMethods[info.FullMethod] {

		var sessionID string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(SessionIDHeaderName)
			if len(values) > 0 {
				sessionID = values[0]
			}
		}
		if len(sessionID) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing session")
		}

		account, err := s.accounts.Resolve(ctx, sessionID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorUnauthenticated) {
				return nil, status.Error(codes.Unauthenticated, "invalid session")
			}
			return nil, status.Error(codes.Internal, "internal error")
		}

		ctx = context.WithValue(ctx, AccountKey, account)

	}

	return handler(ctx, req)
}

// accountFromContext recovers the account the interceptor resolved.
func accountFromContext(ctx context.Context) (*models.Account, bool) {
	account, ok := ctx.Value(AccountKey).(*models.Account)
	return account, ok
}
