package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/SyedDaiam9101/policy-block/internal/metrics"
)

// UnaryMetricsInterceptor records a Prometheus latency histogram sample for
// each unary call, labeled with the full method name and the gRPC status
// code.
func UnaryMetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := "OK"
		if err != nil {
			code = "Unknown"
			if st, ok := status.FromError(err); ok {
				code = st.Code().String()
			}
		}
		metrics.RecordGRPCLatency(info.FullMethod, code, time.Since(start).Seconds())

		return resp, err
	}
}
