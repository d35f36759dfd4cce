package tasks

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/storage"
)

// NewModule returns the tasks module options
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(
			func(log *zap.Logger, backend storage.Backend) *Service {
				return NewService(log, backend)
			},
			NewHandler,
		),
	)
}
