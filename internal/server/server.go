package server

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/elskow/tasktrack/internal/api"
	"github.com/elskow/tasktrack/internal/auth"
	"github.com/elskow/tasktrack/internal/config"
	"github.com/elskow/tasktrack/internal/storage"
	"github.com/elskow/tasktrack/internal/tasks"
	pb "github.com/elskow/tasktrack/proto/gen/tasktrack"
)

type Server struct {
	config     *config.AppConfig
	log        *zap.Logger
	grpcServer *grpc.Server
	health     *health.Server
	backend    storage.Backend
}

type Params struct {
	fx.In

	Config         *config.AppConfig
	Logger         *zap.Logger
	Backend        storage.Backend
	AuthHandler    *auth.Handler
	TasksHandler   *tasks.Handler
	SystemHandler  *SystemHandler
	AuthMiddleware *auth.AuthMiddleware
	RateLimiter    *RateLimiter
}

func isProtectedEndpoint(method string) bool {
	isPublic, exists := api.PublicEndpoints[method]
	return !exists || !isPublic
}

// authInterceptor requires a resolved user on protected methods and attaches
// one, when the token allows, on public methods.
func authInterceptor(m *auth.AuthMiddleware, log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !isProtectedEndpoint(info.FullMethod) {
			newCtx, err := m.AuthenticateOptional(ctx)
			if err != nil {
				log.Error("failed to resolve caller",
					zap.String("method", info.FullMethod),
					zap.Error(err))
				return nil, api.ToStatus(err)
			}
			return handler(newCtx, req)
		}

		newCtx, err := m.Authenticate(ctx)
		if err != nil {
			log.Warn("authentication failed",
				zap.String("method", info.FullMethod),
				zap.Error(err))
			return nil, api.ToStatus(err)
		}

		return handler(newCtx, req)
	}
}

func NewServer(p Params) *Server {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			p.RateLimiter.UnaryInterceptor(),
			authInterceptor(p.AuthMiddleware, p.Logger),
		),
	}
	if p.Config.GRPC.MaxReceiveMessageSize > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(p.Config.GRPC.MaxReceiveMessageSize))
	}
	if p.Config.GRPC.MaxSendMessageSize > 0 {
		opts = append(opts, grpc.MaxSendMsgSize(p.Config.GRPC.MaxSendMessageSize))
	}

	grpcServer := grpc.NewServer(opts...)
	healthServer := health.NewServer()

	server := &Server{
		config:     p.Config,
		log:        p.Logger,
		grpcServer: grpcServer,
		health:     healthServer,
		backend:    p.Backend,
	}

	// Register services
	pb.RegisterAuthServer(grpcServer, p.AuthHandler)
	pb.RegisterTasksServer(grpcServer, p.TasksHandler)
	pb.RegisterSystemServer(grpcServer, p.SystemHandler)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	for _, service := range []string{"", api.AuthService, api.TasksService, api.SystemService} {
		healthServer.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)
	}

	if p.Config.GRPC.EnableReflection {
		reflection.Register(grpcServer)
	}

	return server
}

func (s *Server) Start() error {
	addr := net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.log.Info("Starting gRPC server",
		zap.String("address", addr),
		zap.Object("config", serverConfigToField(s.config, s.backend.Info())),
	)

	return s.Serve(lis)
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	if err := s.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

func serverConfigToField(config *config.AppConfig, info storage.Info) zapcore.ObjectMarshaler {
	return zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("environment", Env())
		enc.AddString("storage", info.Kind)
		enc.AddBool("reflection_enabled", config.GRPC.EnableReflection)
		enc.AddInt("max_receive_size", config.GRPC.MaxReceiveMessageSize)
		enc.AddInt("max_send_size", config.GRPC.MaxSendMessageSize)
		enc.AddBool("rate_limit_enabled", config.RateLimit.Enabled)
		return nil
	})
}

func (s *Server) Stop() {
	s.log.Info("shutting down gRPC server")
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
