package database

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/config"
	"github.com/elskow/tasktrack/internal/storage"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				func(config *config.AppConfig, logger *zap.Logger) (storage.Backend, error) {
					return Select(context.Background(), config, logger)
				},
			),
		),
		fx.Invoke(registerHooks),
	)
}

func registerHooks(
	lifecycle fx.Lifecycle,
	backend storage.Backend,
	logger *zap.Logger,
) {
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing storage backend", zap.String("kind", backend.Info().Kind))
			return backend.Close(ctx)
		},
	})
}
