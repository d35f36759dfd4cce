package server

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/config"
)

// NewModule returns the transport module options
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(
			NewSystemHandler,
			func(config *config.AppConfig, log *zap.Logger) *RateLimiter {
				return NewRateLimiter(config.RateLimit, log)
			},
			NewServer,
		),
	)
}
