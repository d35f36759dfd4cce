// Package tasks owns a user's ordered task list.
//
// Positions are 1-based and dense per owner. Every operation that renumbers
// tasks runs inside storage.Backend.Atomically and under the owner's lock, so
// concurrent requests from one user never interleave their shifts.
package tasks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/auth"
	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/storage"
	"github.com/elskow/tasktrack/internal/syncx"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

type Service struct {
	log     *zap.Logger
	backend storage.Backend
	locks   *syncx.KeyedMutex
	now     func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(log *zap.Logger, backend storage.Backend, opts ...Option) *Service {
	s := &Service{
		log:     log,
		backend: backend,
		locks:   syncx.NewKeyedMutex(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create appends a task to the end of the owner's list.
func (s *Service) Create(ctx context.Context, userID, title, description string) (*storage.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, fmt.Errorf("%w: title must be at most %d characters", common.ErrValidation, MaxTitleLength)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description must be at most %d characters", common.ErrValidation, MaxDescriptionLength)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	var created *storage.Task
	err := s.backend.Atomically(ctx, func(ctx context.Context, tx storage.Tx) error {
		highest, err := tx.Tasks().MaxPosition(ctx, userID)
		if err != nil {
			return err
		}
		created, err = tx.Tasks().CreateTask(ctx, &storage.Task{
			Owner:       userID,
			Title:       title,
			Description: description,
			Position:    highest + 1,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("task created",
		zap.String("user_id", userID),
		zap.String("task_id", created.ID),
		zap.Int("position", created.Position))
	return created, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]storage.Task, error) {
	return s.backend.Tasks().FindTasksByOwner(ctx, userID)
}

// Move places the task at newPosition and shifts the tasks in between by one.
// Positions past the end are clamped to the last slot.
// Get returns one task owned by userID.
func (s *Service) Get(ctx context.Context, userID, taskID string) (*storage.Task, error) {
	return auth.RequireOwnership(ctx, userID, func(ctx context.Context) (*storage.Task, error) {
		return s.backend.Tasks().FindTaskByID(ctx, taskID)
	})
}

func (s *Service) Move(ctx context.Context, userID, taskID string, newPosition int) (*storage.Task, error) {
	if newPosition < 1 {
		return nil, fmt.Errorf("%w: position must be at least 1", common.ErrValidation)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	var moved *storage.Task
	err := s.backend.Atomically(ctx, func(ctx context.Context, tx storage.Tx) error {
		task, err := auth.RequireOwnership(ctx, userID, func(ctx context.Context) (*storage.Task, error) {
			return tx.Tasks().FindTaskByID(ctx, taskID)
		})
		if err != nil {
			return err
		}

		owned, err := tx.Tasks().FindTasksByOwner(ctx, userID)
		if err != nil {
			return err
		}
		if needsNormalizing(owned) {
			if task, err = normalize(ctx, tx.Tasks(), owned, task.ID); err != nil {
				return err
			}
		}

		moved, err = moveToPosition(ctx, tx.Tasks(), task, min(newPosition, len(owned)))
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("task moved",
		zap.String("user_id", userID),
		zap.String("task_id", moved.ID),
		zap.Int("position", moved.Position))
	return moved, nil
}

// moveToPosition shifts the owner's other tasks between the old and new slot
// toward the gap, then writes the new position.
func moveToPosition(ctx context.Context, store storage.TaskStore, task *storage.Task, newPosition int) (*storage.Task, error) {
	old := task.Position
	if newPosition == old {
		return task, nil
	}

	shift := storage.ShiftRange{Owner: task.Owner, Except: task.ID}
	if newPosition > old {
		shift.From, shift.To, shift.Delta = old+1, newPosition, -1
	} else {
		shift.From, shift.To, shift.Delta = newPosition, old-1, 1
	}
	if _, err := store.ShiftPositions(ctx, shift); err != nil {
		return nil, err
	}

	return store.UpdateTask(ctx, task.ID, storage.TaskUpdate{Position: &newPosition})
}

func needsNormalizing(owned []storage.Task) bool {
	for i := range owned {
		if owned[i].Position == storage.UnsetPosition {
			return true
		}
	}
	return false
}

// normalize renumbers the owner's tasks 1..n. Placed tasks keep their
// relative order; unplaced ones follow in creation order. It returns the
// renumbered copy of the task identified by id.
func normalize(ctx context.Context, store storage.TaskStore, owned []storage.Task, id string) (*storage.Task, error) {
	ordered := make([]storage.Task, len(owned))
	copy(ordered, owned)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		aUnset, bUnset := a.Position == storage.UnsetPosition, b.Position == storage.UnsetPosition
		switch {
		case aUnset != bUnset:
			return bUnset
		case aUnset:
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.Position < b.Position
		}
	})

	var target *storage.Task
	for i := range ordered {
		task := &ordered[i]
		position := i + 1
		if task.Position != position {
			updated, err := store.UpdateTask(ctx, task.ID, storage.TaskUpdate{Position: &position})
			if err != nil {
				return nil, err
			}
			task = updated
		}
		if task.ID == id {
			target = task
		}
	}
	if target == nil {
		return nil, common.ErrNotFound
	}
	return target, nil
}

// Toggle flips the completion flag, stamping or clearing CompletedAt.
func (s *Service) Toggle(ctx context.Context, userID, taskID string) (*storage.Task, error) {
	task, err := auth.RequireOwnership(ctx, userID, func(ctx context.Context) (*storage.Task, error) {
		return s.backend.Tasks().FindTaskByID(ctx, taskID)
	})
	if err != nil {
		return nil, err
	}

	completed := !task.Completed
	update := storage.TaskUpdate{Completed: &completed}
	if completed {
		now := s.now().UTC()
		update.CompletedAt = &now
	} else {
		update.ClearCompletedAt = true
	}

	return s.backend.Tasks().UpdateTask(ctx, task.ID, update)
}

// Delete removes the task and closes the gap it leaves.
func (s *Service) Delete(ctx context.Context, userID, taskID string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	err := s.backend.Atomically(ctx, func(ctx context.Context, tx storage.Tx) error {
		task, err := auth.RequireOwnership(ctx, userID, func(ctx context.Context) (*storage.Task, error) {
			return tx.Tasks().FindTaskByID(ctx, taskID)
		})
		if err != nil {
			return err
		}
		if err := tx.Tasks().DeleteTask(ctx, task.ID); err != nil {
			return err
		}
		if task.Position == storage.UnsetPosition {
			return nil
		}

		highest, err := tx.Tasks().MaxPosition(ctx, userID)
		if err != nil || highest <= task.Position {
			return err
		}
		_, err = tx.Tasks().ShiftPositions(ctx, storage.ShiftRange{
			Owner: userID,
			From:  task.Position + 1,
			To:    highest,
			Delta: -1,
		})
		return err
	})
	if err != nil {
		return err
	}

	s.log.Debug("task deleted",
		zap.String("user_id", userID),
		zap.String("task_id", taskID))
	return nil
}
