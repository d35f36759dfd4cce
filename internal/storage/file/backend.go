// Package file implements the storage contract on two whole-file JSON
// documents. Every operation re-reads both documents, mutates them in memory
// and rewrites the changed ones through a temp file and rename.
//
// The backend serializes writers inside one process only.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/storage"
)

const (
	UsersFile = "users.json"
	TasksFile = "tasks.json"
)

type Backend struct {
	dir       string
	usersPath string
	tasksPath string
	log       *zap.Logger
	now       func() time.Time
	newID     func() string
	mu        sync.Mutex
}

type Option func(*Backend)

// WithClock overrides the clock used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		b.now = now
	}
}

// Open prepares dir and creates empty documents for missing collections.
func Open(dir string, log *zap.Logger, opts ...Option) (*Backend, error) {
	b := &Backend{
		dir:       dir,
		usersPath: filepath.Join(dir, UsersFile),
		tasksPath: filepath.Join(dir, TasksFile),
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	for _, path := range []string{b.usersPath, b.tasksPath} {
		if err := ensureDocument(path); err != nil {
			return nil, err
		}
	}

	log.Info("file storage initialized",
		zap.String("dir", dir))

	return b, nil
}

func (b *Backend) Users() storage.UserStore {
	return users{b: b}
}

func (b *Backend) Tasks() storage.TaskStore {
	return tasks{b: b}
}

func (b *Backend) Atomically(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.load()
	if err != nil {
		return storage.Unavailable("load file store", err)
	}

	if err := fn(ctx, snap); err != nil {
		return err
	}

	if err := b.flush(snap); err != nil {
		return storage.Unavailable("write file store", err)
	}
	return nil
}

func (b *Backend) Info() storage.Info {
	return storage.Info{
		Kind:       storage.KindFile,
		Host:       "local-files",
		Database:   b.dir,
		Connection: storage.KindFile,
	}
}

// Ping checks that both documents are still readable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.Atomically(ctx, func(context.Context, storage.Tx) error {
		return nil
	})
}

func (b *Backend) Stats(ctx context.Context) (storage.Stats, error) {
	var stats storage.Stats
	err := b.Atomically(ctx, func(_ context.Context, tx storage.Tx) error {
		snap := tx.(*snapshot)
		stats.Users = int64(len(snap.users))
		stats.Tasks = int64(len(snap.tasks))
		return nil
	})
	return stats, err
}

func (b *Backend) Close(context.Context) error {
	return nil
}

func (b *Backend) load() (*snapshot, error) {
	users, err := readDocument[storage.User](b.usersPath)
	if err != nil {
		return nil, err
	}
	tasks, err := readDocument[storage.Task](b.tasksPath)
	if err != nil {
		return nil, err
	}

	return &snapshot{
		users: users,
		tasks: tasks,
		now:   b.now().UTC(),
		newID: b.newID,
	}, nil
}

func (b *Backend) flush(snap *snapshot) error {
	if snap.usersDirty {
		if err := writeDocument(b.usersPath, snap.users); err != nil {
			return err
		}
	}
	if snap.tasksDirty {
		if err := writeDocument(b.tasksPath, snap.tasks); err != nil {
			return err
		}
	}
	return nil
}

func ensureDocument(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", filepath.Base(path), err)
	}
	return writeDocument[struct{}](path, nil)
}

func readDocument[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return items, nil
}

// writeDocument replaces path atomically with the JSON encoding of items.
func writeDocument[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
