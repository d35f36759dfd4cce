// Package storage defines the persistence contract shared by every backend.
//
// A Backend is chosen once at startup and injected into the services; callers
// never branch on which implementation is active.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/elskow/tasktrack/internal/common"
)

const (
	KindMongo    = "mongodb"
	KindPostgres = "postgres"
	KindFile     = "file"
)

// UserStore is the credential store.
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUserByID(ctx context.Context, id string) (*User, error)
	FindUserByUsername(ctx context.Context, username string) (*User, error)
	// CreateUser assigns the id and timestamps. It fails with
	// common.ErrDuplicateIdentity when the email or username is taken.
	CreateUser(ctx context.Context, user *User) (*User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

// TaskStore is the task store. FindTasksByOwner returns tasks ordered by
// position, then creation time.
type TaskStore interface {
	CreateTask(ctx context.Context, task *Task) (*Task, error)
	FindTaskByID(ctx context.Context, id string) (*Task, error)
	FindTasksByOwner(ctx context.Context, owner string) ([]Task, error)
	MaxPosition(ctx context.Context, owner string) (int, error)
	UpdateTask(ctx context.Context, id string, update TaskUpdate) (*Task, error)
	ShiftPositions(ctx context.Context, r ShiftRange) (int64, error)
	DeleteTask(ctx context.Context, id string) error
	DeleteTasksByOwner(ctx context.Context, owner string) (int64, error)
}

// Tx exposes the stores bound to one unit of work.
type Tx interface {
	Users() UserStore
	Tasks() TaskStore
}

// Info describes the active backend for diagnostics.
type Info struct {
	Kind       string `json:"kind"`
	Host       string `json:"host"`
	Database   string `json:"database"`
	Connection string `json:"connection"`
}

type Stats struct {
	Users int64 `json:"users"`
	Tasks int64 `json:"tasks"`
}

type Backend interface {
	Tx
	// Atomically runs fn as one unit of work. Stores obtained from the Tx
	// passed to fn must be called with the ctx passed to fn.
	Atomically(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Info() Info
	Ping(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)
	Close(ctx context.Context) error
}

// Unavailable wraps a driver error so callers can match it with
// common.ErrStorageUnavailable while the cause stays in the chain.
func Unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, common.ErrStorageUnavailable, err)
}

// Duplicate reports which identity field collided.
func Duplicate(field string) error {
	return fmt.Errorf("%w: %s", common.ErrDuplicateIdentity, field)
}
