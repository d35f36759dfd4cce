// Package database picks the storage backend for the lifetime of the process.
package database

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/config"
	"github.com/elskow/tasktrack/internal/storage"
	"github.com/elskow/tasktrack/internal/storage/file"
	"github.com/elskow/tasktrack/internal/storage/mongodb"
	"github.com/elskow/tasktrack/internal/storage/postgres"
)

const DefaultFileDir = "data"

// Select connects to the preferred database backend and falls back to the
// file backend when it is not configured or cannot be reached. There is no
// retry; the choice holds until the process exits.
func Select(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (storage.Backend, error) {
	preferred := strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if preferred == "" {
		preferred = storage.KindMongo
	}

	switch preferred {
	case storage.KindFile:
		logger.Info("Using file storage", zap.String("reason", "configured"))
		return openFile(cfg, logger)

	case storage.KindMongo:
		if cfg.Mongo.URI == "" {
			logger.Warn("MongoDB URI not configured, using file storage")
			return openFile(cfg, logger)
		}
		backend, err := connect(ctx, cfg, func(ctx context.Context) (storage.Backend, error) {
			return mongodb.Open(ctx, &cfg.Mongo, logger)
		})
		if err != nil {
			logger.Warn("MongoDB connection failed, using file storage", zap.Error(err))
			return openFile(cfg, logger)
		}
		return announce(backend, logger), nil

	case storage.KindPostgres:
		if cfg.Database.Host == "" || cfg.Database.Name == "" {
			logger.Warn("Postgres connection not configured, using file storage")
			return openFile(cfg, logger)
		}
		backend, err := connect(ctx, cfg, func(ctx context.Context) (storage.Backend, error) {
			return postgres.Open(ctx, &cfg.Database, logger)
		})
		if err != nil {
			logger.Warn("Postgres connection failed, using file storage", zap.Error(err))
			return openFile(cfg, logger)
		}
		return announce(backend, logger), nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func connect(
	ctx context.Context,
	cfg *config.AppConfig,
	open func(ctx context.Context) (storage.Backend, error),
) (storage.Backend, error) {
	if cfg.Storage.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Storage.ConnectTimeout)
		defer cancel()
	}
	return open(ctx)
}

func openFile(cfg *config.AppConfig, logger *zap.Logger) (storage.Backend, error) {
	dir := cfg.Storage.FileDir
	if dir == "" {
		dir = DefaultFileDir
	}

	backend, err := file.Open(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open file storage: %w", err)
	}
	return announce(backend, logger), nil
}

func announce(backend storage.Backend, logger *zap.Logger) storage.Backend {
	info := backend.Info()
	logger.Info("Storage backend selected",
		zap.String("kind", info.Kind),
		zap.String("host", info.Host),
		zap.String("database", info.Database),
		zap.String("connection", info.Connection),
	)
	return backend
}
