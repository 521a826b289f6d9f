package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/SyedDaiam9101/policy-block/internal/metrics"
)

// capture invokes the interceptor with a handler that records the context
// it was handed, the way the bridge's log lines read it back.
func capture(t *testing.T, interceptor grpc.UnaryServerInterceptor, ctx context.Context, method string) context.Context {
	t.Helper()
	var seen context.Context
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = ctx
		return &struct{}{}, nil
	}
	if _, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, handler); err != nil {
		t.Fatalf("interceptor failed: %v", err)
	}
	return seen
}

func TestRequestID_MintedWhenAbsent(t *testing.T) {
	ctx := capture(t, UnaryRequestIDInterceptor(), context.Background(), "/blockpb.BlockHost/Step")

	id := GetRequestID(ctx)
	if id == "" {
		t.Fatal("no request id on the handler context")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("minted request id %q is not a UUID: %v", id, err)
	}
}

func TestRequestID_CallerValueKept(t *testing.T) {
	const callerID = "sim-host-7f3a"

	md := metadata.Pairs(RequestIDHeader, callerID)
	in := metadata.NewIncomingContext(context.Background(), md)
	ctx := capture(t, UnaryRequestIDInterceptor(), in, "/blockpb.BlockHost/Step")

	if got := GetRequestID(ctx); got != callerID {
		t.Errorf("request id = %q, want the caller's %q", got, callerID)
	}
}

func TestGetRequestID_WithoutInterceptor(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("request id on a bare context = %q, want empty", got)
	}
}

func TestMetricsInterceptor_RecordsPerMethod(t *testing.T) {
	interceptor := UnaryMetricsInterceptor()

	// A method name not used elsewhere in the suite, so the new histogram
	// child is attributable to this call.
	method := "/blockpb.BlockHost/TestOnly" + uuid.New().String()

	before := testutil.CollectAndCount(metrics.GRPCServerHandlingSeconds)
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		time.Sleep(time.Millisecond)
		return &struct{}{}, nil
	}
	if _, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: method}, handler); err != nil {
		t.Fatalf("interceptor failed: %v", err)
	}
	after := testutil.CollectAndCount(metrics.GRPCServerHandlingSeconds)

	if after != before+1 {
		t.Errorf("histogram children went %d -> %d, want one new method/code pair", before, after)
	}
}

func TestMetricsInterceptor_PassesErrorThrough(t *testing.T) {
	interceptor := UnaryMetricsInterceptor()

	wantErr := status.Error(codes.NotFound, "unknown instance")
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	}

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/blockpb.BlockHost/Step"}, handler)
	if err == nil {
		t.Fatal("handler error swallowed by the interceptor")
	}
	if st, ok := status.FromError(err); !ok || st.Code() != codes.NotFound {
		t.Errorf("error = %v, want the handler's NotFound status", err)
	}
}
