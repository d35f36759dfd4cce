// Package mongodb implements the storage contract on MongoDB. Reorders run in
// multi-document transactions when the deployment supports them.
package mongodb

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/config"
	"github.com/elskow/tasktrack/internal/storage"
)

const (
	DefaultDatabase = "taskmanager"

	usersCollection = "users"
	tasksCollection = "tasks"

	emailIndex    = "users_email_key"
	usernameIndex = "users_username_key"
	positionIndex = "idx_tasks_owner_position"
)

type Backend struct {
	client        *mongo.Client
	users         *mongo.Collection
	tasks         *mongo.Collection
	info          storage.Info
	transactional bool
	log           *zap.Logger
	now           func() time.Time
}

// Open connects to cfg.URI, verifies the primary is reachable within ctx and
// ensures the unique indexes exist.
func Open(ctx context.Context, cfg *config.MongoConfig, log *zap.Logger) (*Backend, error) {
	info, err := describeURI(cfg.URI, cfg.Database)
	if err != nil {
		return nil, err
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.SocketTimeout > 0 {
		opts.SetSocketTimeout(cfg.SocketTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(cfg.MinPoolSize)
	}
	if cfg.MaxConnIdleTime > 0 {
		opts.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	}
	if deadline, ok := ctx.Deadline(); ok {
		opts.SetServerSelectionTimeout(time.Until(deadline))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, storage.Unavailable("connect mongodb", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, storage.Unavailable("ping mongodb", err)
	}

	db := client.Database(info.Database)
	b := &Backend{
		client: client,
		users:  db.Collection(usersCollection),
		tasks:  db.Collection(tasksCollection),
		info:   info,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}

	if err := b.ensureIndexes(ctx); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	b.transactional = supportsTransactions(ctx, client)
	if !b.transactional {
		log.Warn("MongoDB deployment is standalone, reorders will not be transactional",
			zap.String("host", info.Host))
	}

	return b, nil
}

func (b *Backend) ensureIndexes(ctx context.Context) error {
	_, err := b.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(emailIndex).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName(usernameIndex).SetUnique(true),
		},
	})
	if err != nil {
		return storage.Unavailable("create user indexes", err)
	}

	_, err = b.tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "position", Value: 1}},
		Options: options.Index().SetName(positionIndex),
	})
	if err != nil {
		return storage.Unavailable("create task indexes", err)
	}
	return nil
}

// supportsTransactions asks the server whether it is a replica set member or
// a mongos router.
func supportsTransactions(ctx context.Context, client *mongo.Client) bool {
	var hello struct {
		SetName string `bson:"setName"`
		Msg     string `bson:"msg"`
	}
	err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello)
	if err != nil {
		return false
	}
	return hello.SetName != "" || hello.Msg == "isdbgrid"
}

// describeURI derives diagnostics from the connection string without keeping
// credentials.
func describeURI(uri, database string) (storage.Info, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return storage.Info{}, storage.Unavailable("parse mongodb uri", err)
	}
	if u.Scheme != "mongodb" && u.Scheme != "mongodb+srv" {
		return storage.Info{}, storage.Unavailable("parse mongodb uri", errors.New("unsupported scheme "+u.Scheme))
	}

	if database == "" {
		database = strings.TrimPrefix(u.Path, "/")
	}
	if database == "" {
		database = DefaultDatabase
	}

	connection := "remote"
	switch {
	case u.Scheme == "mongodb+srv" || strings.Contains(u.Host, ".mongodb.net"):
		connection = "atlas"
	case strings.HasPrefix(u.Host, "localhost") || strings.HasPrefix(u.Host, "127.0.0.1"):
		connection = "local"
	}

	return storage.Info{
		Kind:       storage.KindMongo,
		Host:       u.Host,
		Database:   database,
		Connection: connection,
	}, nil
}

func (b *Backend) Users() storage.UserStore {
	return users{coll: b.users, now: b.now}
}

func (b *Backend) Tasks() storage.TaskStore {
	return tasks{coll: b.tasks, now: b.now}
}

// Transactional reports whether Atomically runs inside a multi-document
// transaction.
func (b *Backend) Transactional() bool {
	return b.transactional
}

func (b *Backend) Atomically(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !b.transactional {
		return fn(ctx, b)
	}

	session, err := b.client.StartSession()
	if err != nil {
		return storage.Unavailable("start session", err)
	}
	defer session.EndSession(context.Background())

	var fnErr error
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		fnErr = fn(sc, b)
		return nil, fnErr
	})
	if err != nil && fnErr == nil {
		return translate("commit", err)
	}
	return err
}

func (b *Backend) Info() storage.Info {
	return b.info
}

func (b *Backend) Ping(ctx context.Context) error {
	if err := b.client.Ping(ctx, readpref.Primary()); err != nil {
		return storage.Unavailable("ping", err)
	}
	return nil
}

func (b *Backend) Stats(ctx context.Context) (storage.Stats, error) {
	var stats storage.Stats
	var err error

	stats.Users, err = b.users.CountDocuments(ctx, bson.D{})
	if err != nil {
		return stats, translate("count users", err)
	}
	stats.Tasks, err = b.tasks.CountDocuments(ctx, bson.D{})
	if err != nil {
		return stats, translate("count tasks", err)
	}
	return stats, nil
}

func (b *Backend) Close(ctx context.Context) error {
	b.log.Info("Closing MongoDB connection", zap.String("host", b.info.Host))
	return b.client.Disconnect(ctx)
}

func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.ErrNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if mongo.IsDuplicateKeyError(err) {
		msg := err.Error()
		switch {
		case strings.Contains(msg, emailIndex):
			return storage.Duplicate("email")
		case strings.Contains(msg, usernameIndex):
			return storage.Duplicate("username")
		default:
			return storage.Duplicate("identity")
		}
	}
	return storage.Unavailable(op, err)
}
