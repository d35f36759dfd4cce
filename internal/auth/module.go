package auth

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/config"
	"github.com/elskow/tasktrack/internal/storage"
)

// NewModule returns the auth module options
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(
			// Provide token service
			fx.Annotate(
				func(config *config.AppConfig) *TokenService {
					return NewTokenService(&config.Auth)
				},
			),
			// Provide guard
			fx.Annotate(
				func(tokens *TokenService, backend storage.Backend, log *zap.Logger) *Guard {
					return NewGuard(tokens, backend, log)
				},
			),
			// Provide service
			fx.Annotate(
				func(config *config.AppConfig, log *zap.Logger, backend storage.Backend, tokens *TokenService) *Service {
					return NewService(&config.Auth, log, backend, tokens)
				},
			),
			// Provide handler
			fx.Annotate(
				func(svc *Service, log *zap.Logger) *Handler {
					return NewHandler(svc, log)
				},
			),
			// Provide middleware
			fx.Annotate(
				func(guard *Guard, log *zap.Logger) *AuthMiddleware {
					return NewAuthMiddleware(guard, log)
				},
			),
		),
	)
}
