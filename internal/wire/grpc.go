package wire

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"gatherchat/internal/common"
	"gatherchat/internal/config"
)

var publicMethods = map[string]bool{
	healthpb.Health_Check_FullMethodName: true,
}

// ProvideGRPCServer returns a server exposing health and reflection behind the
// auth interceptor. The health service reports SERVING once built.
func ProvideGRPCServer(cfg *config.Config, log *zap.Logger) *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			loggingUnaryInterceptor(log),
			common.AuthInterceptor([]byte(cfg.Auth.JWTSecret), publicMethods),
		),
	)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	// enables grpcurl and similar tools without proto files
	reflection.Register(server)

	return server
}

func loggingUnaryInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			log.Warn("grpc call failed", append(fields, zap.Error(err))...)
		} else {
			log.Debug("grpc call completed", fields...)
		}
		return resp, err
	}
}
