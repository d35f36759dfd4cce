// Package postgres implements the storage contract on PostgreSQL through gorm.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/config"
	"github.com/elskow/tasktrack/internal/migration"
	"github.com/elskow/tasktrack/internal/storage"
)

const uniqueViolation = "23505"

type Backend struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	config *config.DatabaseConfig
	log    *zap.Logger
}

// Open connects, verifies the connection within ctx and applies the embedded
// migrations when configured to.
func Open(ctx context.Context, config *config.DatabaseConfig, log *zap.Logger) (*Backend, error) {
	return open(ctx, config.DSN(), config, log)
}

func open(ctx context.Context, dsn string, config *config.DatabaseConfig, log *zap.Logger) (*Backend, error) {
	db, err := newDatabase(dsn)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if config.AutoMigrate {
		if err := migration.NewMigratorFromDB(sqlDB).Up(); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}

	return &Backend{
		db:     db,
		sqlDB:  sqlDB,
		config: config,
		log:    log,
	}, nil
}

func newDatabase(dsn string) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
		DisableAutomaticPing: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	return gorm.Open(postgres.Open(dsn), gormConfig)
}

func (b *Backend) Users() storage.UserStore {
	return users{db: b.db}
}

func (b *Backend) Tasks() storage.TaskStore {
	return tasks{db: b.db}
}

type txStores struct {
	tx *gorm.DB
}

func (s txStores) Users() storage.UserStore {
	return users{db: s.tx}
}

func (s txStores) Tasks() storage.TaskStore {
	return tasks{db: s.tx}
}

func (b *Backend) Atomically(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	var fnErr error
	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(ctx, txStores{tx: tx})
		return fnErr
	})
	if err != nil && fnErr == nil {
		return translate("commit", err)
	}
	return err
}

func (b *Backend) Info() storage.Info {
	connection := "remote"
	if isLocalHost(b.config.Host) {
		connection = "local"
	}
	return storage.Info{
		Kind:       storage.KindPostgres,
		Host:       net.JoinHostPort(b.config.Host, strconv.Itoa(b.config.Port)),
		Database:   b.config.Name,
		Connection: connection,
	}
}

func (b *Backend) Ping(ctx context.Context) error {
	if err := b.sqlDB.PingContext(ctx); err != nil {
		return storage.Unavailable("ping", err)
	}
	return nil
}

func (b *Backend) Stats(ctx context.Context) (storage.Stats, error) {
	var stats storage.Stats
	db := b.db.WithContext(ctx)
	if err := db.Model(&userRecord{}).Count(&stats.Users).Error; err != nil {
		return stats, translate("count users", err)
	}
	if err := db.Model(&taskRecord{}).Count(&stats.Tasks).Error; err != nil {
		return stats, translate("count tasks", err)
	}
	return stats, nil
}

func (b *Backend) Close(context.Context) error {
	b.log.Info("Closing database connections")
	return b.sqlDB.Close()
}

// translate maps driver errors onto the storage taxonomy.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return storage.Duplicate("email")
		case "users_username_key":
			return storage.Duplicate("username")
		default:
			return storage.Duplicate(pgErr.ConstraintName)
		}
	}

	return storage.Unavailable(op, err)
}

// validID filters ids that can never match a uuid column; Postgres would
// reject them with a syntax error instead of returning no rows.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func isLocalHost(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}
