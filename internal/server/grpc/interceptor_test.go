package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/nathanjchan/dothething-backend/internal/proto"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
)

func TestInterceptor_OpenMethods_AllowWithoutSession(t *testing.T) {
	s := newServer(&fakeAccounts{}, &fakeCodes{}, &fakeFeed{})

	for _, method := range []string{
		pb.DoTheThingService_Ping_FullMethodName,
		pb.DoTheThingService_Login_FullMethodName,
	} {
		info := &grpc.UnaryServerInfo{FullMethod: method}
		handlerCalled := false

		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			handlerCalled = true
			return "ok", nil
		}

		resp, err := s.sessionInterceptor(context.Background(), nil, info, h)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", method, err)
		}
		if !handlerCalled {
			t.Fatalf("%s: handler was not called", method)
		}
		if resp != "ok" {
			t.Fatalf("%s: unexpected handler resp: %v", method, resp)
		}
	}
}

func TestInterceptor_GuardedMethod_MissingSession(t *testing.T) {
	s := newServer(&fakeAccounts{}, &fakeCodes{}, &fakeFeed{})

	info := &grpc.UnaryServerInfo{FullMethod: pb.DoTheThingService_GetFeed_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when session missing")
		return nil, nil
	}

	_, err := s.sessionInterceptor(context.Background(), nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing session" {
		t.Fatalf("expected 'missing session', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_GuardedMethod_UnknownSession(t *testing.T) {
	s := newServer(&fakeAccounts{}, &fakeCodes{}, &fakeFeed{})

	md := metadata.New(map[string]string{
		SessionIDHeaderName: "stale-session",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.DoTheThingService_GetFeed_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for unknown session")
		return nil, nil
	}

	_, err := s.sessionInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_GuardedMethod_ResolveFailure(t *testing.T) {
	s := newServer(&fakeAccounts{resolveErr: errors.New("db down")}, &fakeCodes{}, &fakeFeed{})

	md := metadata.New(map[string]string{SessionIDHeaderName: "sess01"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.DoTheThingService_GetCodes_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when resolution fails")
		return nil, nil
	}

	_, err := s.sessionInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", status.Code(err))
	}
}

func TestInterceptor_GuardedMethod_ValidSession_SetsAccount(t *testing.T) {
	account := &models.Account{ID: "acct", SessionID: "sess01"}
	s := newServer(&fakeAccounts{resolveResp: &fakeResolved{account: account}}, &fakeCodes{}, &fakeFeed{})

	md := metadata.New(map[string]string{
		SessionIDHeaderName: "sess01",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.DoTheThingService_GetFeed_FullMethodName}

	var gotFromCtx any
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotFromCtx = ctx.Value(AccountKey)
		return "ok", nil
	}

	resp, err := s.sessionInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if gotFromCtx != account {
		t.Fatalf("account not propagated in context: got %v want %v", gotFromCtx, account)
	}
}
