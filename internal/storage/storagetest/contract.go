// Package storagetest holds the behaviour every storage.Backend must share.
// Backend packages run it from their own tests.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/storage"
)

// Factory returns an empty backend. It should register its own cleanup.
type Factory func(t *testing.T) storage.Backend

type Options struct {
	// Transactional backends discard every write of a failed Atomically call.
	Transactional bool
}

func Run(t *testing.T, newBackend Factory, opts Options) {
	t.Run("CreateAndFindUser", func(t *testing.T) { testCreateAndFindUser(t, newBackend(t)) })
	t.Run("DuplicateIdentity", func(t *testing.T) { testDuplicateIdentity(t, newBackend(t)) })
	t.Run("UpdateUser", func(t *testing.T) { testUpdateUser(t, newBackend(t)) })
	t.Run("DeleteUser", func(t *testing.T) { testDeleteUser(t, newBackend(t)) })
	t.Run("TaskOrdering", func(t *testing.T) { testTaskOrdering(t, newBackend(t)) })
	t.Run("ShiftPositions", func(t *testing.T) { testShiftPositions(t, newBackend(t)) })
	t.Run("UpdateAndDeleteTask", func(t *testing.T) { testUpdateAndDeleteTask(t, newBackend(t)) })
	t.Run("Stats", func(t *testing.T) { testStats(t, newBackend(t)) })
	if opts.Transactional {
		t.Run("AtomicallyRollsBack", func(t *testing.T) { testAtomicallyRollsBack(t, newBackend(t)) })
	}
}

// NewUser builds an unsaved user whose identity fields derive from name.
func NewUser(name string) *storage.User {
	return &storage.User{
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhashnotarealhash",
		FirstName:    "Test",
		LastName:     "User",
		Role:         storage.RoleUser,
		Preferences:  storage.DefaultPreferences(),
	}
}

// MustCreateUser stores NewUser(name).
func MustCreateUser(t *testing.T, b storage.Backend, name string) *storage.User {
	t.Helper()
	user, err := b.Users().CreateUser(context.Background(), NewUser(name))
	require.NoError(t, err)
	return user
}

// MustCreateTasks stores one task per title at positions 1..n.
func MustCreateTasks(t *testing.T, b storage.Backend, owner string, titles ...string) []*storage.Task {
	t.Helper()
	created := make([]*storage.Task, 0, len(titles))
	for i, title := range titles {
		task, err := b.Tasks().CreateTask(context.Background(), &storage.Task{
			Owner:    owner,
			Title:    title,
			Position: i + 1,
		})
		require.NoError(t, err)
		created = append(created, task)
	}
	return created
}

// Positions maps task title to position for owner.
func Positions(t *testing.T, b storage.Backend, owner string) map[string]int {
	t.Helper()
	owned, err := b.Tasks().FindTasksByOwner(context.Background(), owner)
	require.NoError(t, err)

	positions := make(map[string]int, len(owned))
	for _, task := range owned {
		positions[task.Title] = task.Position
	}
	return positions
}

func testCreateAndFindUser(t *testing.T, b storage.Backend) {
	ctx := context.Background()

	created, err := b.Users().CreateUser(ctx, NewUser("alice"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	tests := []struct {
		name string
		find func() (*storage.User, error)
	}{
		{
			name: "by email",
			find: func() (*storage.User, error) { return b.Users().FindUserByEmail(ctx, "alice@example.com") },
		},
		{
			name: "by id",
			find: func() (*storage.User, error) { return b.Users().FindUserByID(ctx, created.ID) },
		},
		{
			name: "by username",
			find: func() (*storage.User, error) { return b.Users().FindUserByUsername(ctx, "alice") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := tt.find()
			require.NoError(t, err)
			assert.Equal(t, created.ID, user.ID)
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, created.PasswordHash, user.PasswordHash)
			assert.Equal(t, storage.DefaultPreferences(), user.Preferences)
			assert.Equal(t, 0, user.Lockout.Attempts)
			assert.Nil(t, user.Lockout.LockUntil)
		})
	}

	_, err = b.Users().FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = b.Users().FindUserByID(ctx, "does-not-exist")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func testDuplicateIdentity(t *testing.T, b storage.Backend) {
	ctx := context.Background()
	MustCreateUser(t, b, "bob")

	sameEmail := NewUser("bobby")
	sameEmail.Email = "bob@example.com"
	_, err := b.Users().CreateUser(ctx, sameEmail)
	assert.ErrorIs(t, err, common.ErrDuplicateIdentity)

	sameUsername := NewUser("bob")
	sameUsername.Email = "other@example.com"
	_, err = b.Users().CreateUser(ctx, sameUsername)
	assert.ErrorIs(t, err, common.ErrDuplicateIdentity)
}

func testUpdateUser(t *testing.T, b storage.Backend) {
	ctx := context.Background()
	user := MustCreateUser(t, b, "carol")

	lockUntil := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Millisecond)
	firstName := "Caroline"
	updated, err := b.Users().UpdateUser(ctx, user.ID, storage.UserUpdate{
		FirstName: &firstName,
		Lockout:   &storage.LockoutState{Attempts: 5, LockUntil: &lockUntil},
	})
	require.NoError(t, err)
	assert.Equal(t, "Caroline", updated.FirstName)
	assert.Equal(t, "User", updated.LastName)
	assert.Equal(t, 5, updated.Lockout.Attempts)
	require.NotNil(t, updated.Lockout.LockUntil)
	assert.WithinDuration(t, lockUntil, *updated.Lockout.LockUntil, time.Millisecond)

	reloaded, err := b.Users().FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.Lockout.Attempts)
	assert.True(t, reloaded.IsLocked(time.Now()))

	_, err = b.Users().UpdateUser(ctx, user.ID, storage.UserUpdate{
		Lockout: &storage.LockoutState{},
	})
	require.NoError(t, err)

	reloaded, err = b.Users().FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Lockout.Attempts)
	assert.Nil(t, reloaded.Lockout.LockUntil)
	assert.Equal(t, "Caroline", reloaded.FirstName)

	prefs := storage.DefaultPreferences()
	prefs.Theme = storage.ThemeDark
	prefs.TimeZone = "Europe/Riga"
	reloaded, err = b.Users().UpdateUser(ctx, user.ID, storage.UserUpdate{Preferences: &prefs})
	require.NoError(t, err)
	assert.Equal(t, prefs, reloaded.Preferences)

	_, err = b.Users().UpdateUser(ctx, "does-not-exist", storage.UserUpdate{FirstName: &firstName})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func testDeleteUser(t *testing.T, b storage.Backend) {
	ctx := context.Background()
	user := MustCreateUser(t, b, "dave")

	require.NoError(t, b.Users().DeleteUser(ctx, user.ID))

	_, err := b.Users().FindUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = b.Users().DeleteUser(ctx, user.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func testTaskOrdering(t *testing.T, b storage.Backend) {
	ctx := context.Background()
	owner := MustCreateUser(t, b, "erin")
	other := MustCreateUser(t, b, "frank")

	for _, task := range []storage.Task{
		{Owner: owner.ID, Title: "C", Position: 3},
		{Owner: owner.ID, Title: "A", Position: 1},
		{Owner: other.ID, Title: "X", Position: 1},
		{Owner: owner.ID, Title: "B", Position: 2},
	} {
		_, err := b.Tasks().CreateTask(ctx, &task)
		require.NoError(t, err)
	}

	owned, err := b.Tasks().FindTasksByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, owned, 3)
	assert.Equal(t, "A", owned[0].Title)
	assert.Equal(t, "B", owned[1].Title)
	assert.Equal(t, "C", owned[2].Title)

	highest, err := b.Tasks().MaxPosition(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, highest)

	highest, err = b.Tasks().MaxPosition(ctx, MustCreateUser(t, b, "gina").ID)
	require.NoError(t, err)
	assert.Equal(t, 0, highest)
}

func testShiftPositions(t *testing.T, b storage.Backend) {
	ctx := context.Background()
	owner := MustCreateUser(t, b, "hank")
	other := MustCreateUser(t, b, "iris")
	created := MustCreateTasks(t, b, owner.ID, "A", "B", "C", "D")
	MustCreateTasks(t, b, other.ID, "X", "Y", "Z")

	shifted, err := b.Tasks().ShiftPositions(ctx, storage.ShiftRange{
		Owner:  owner.ID,
		From:   2,
		To:     4,
		Delta:  1,
		Except: created[3].ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), shifted)

	assert.Equal(t, map[string]int{"A": 1, "B": 3, "C": 4, "D": 4}, Positions(t, b, owner.ID))
	assert.Equal(t, map[string]int{"X": 1, "Y": 2, "Z": 3}, Positions(t, b, other.ID))
}

func testUpdateAndDeleteTask(t *testing.T, b storage.Backend) {
	ctx := context.Background()
	owner := MustCreateUser(t, b, "jack")
	created := MustCreateTasks(t, b, owner.ID, "A", "B")

	completed := true
	completedAt := time.Now().UTC().Truncate(time.Millisecond)
	task, err := b.Tasks().UpdateTask(ctx, created[0].ID, storage.TaskUpdate{
		Completed:   &completed,
		CompletedAt: &completedAt,
	})
	require.NoError(t, err)
	assert.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
	assert.WithinDuration(t, completedAt, *task.CompletedAt, time.Millisecond)
	assert.Equal(t, 1, task.Position)

	notCompleted := false
	task, err = b.Tasks().UpdateTask(ctx, created[0].ID, storage.TaskUpdate{
		Completed:        &notCompleted,
		ClearCompletedAt: true,
	})
	require.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)

	found, err := b.Tasks().FindTaskByID(ctx, created[1].ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.Owner)

	require.NoError(t, b.Tasks().DeleteTask(ctx, created[1].ID))
	_, err = b.Tasks().FindTaskByID(ctx, created[1].ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, b.Tasks().DeleteTask(ctx, created[1].ID), common.ErrNotFound)

	_, err = b.Tasks().UpdateTask(ctx, "does-not-exist", storage.TaskUpdate{Completed: &completed})
	assert.ErrorIs(t, err, common.ErrNotFound)

	MustCreateTasks(t, b, owner.ID, "C", "D")
	deleted, err := b.Tasks().DeleteTasksByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func testStats(t *testing.T, b storage.Backend) {
	ctx := context.Background()
	require.NoError(t, b.Ping(ctx))

	owner := MustCreateUser(t, b, "kate")
	MustCreateTasks(t, b, owner.ID, "A", "B")

	stats, err := b.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(2), stats.Tasks)
	assert.NotEmpty(t, b.Info().Kind)
}

func testAtomicallyRollsBack(t *testing.T, b storage.Backend) {
	ctx := context.Background()
	owner := MustCreateUser(t, b, "liam")
	created := MustCreateTasks(t, b, owner.ID, "A", "B")

	errBoom := errors.New("boom")
	err := b.Atomically(ctx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := tx.Tasks().ShiftPositions(ctx, storage.ShiftRange{
			Owner: owner.ID,
			From:  1,
			To:    2,
			Delta: 10,
		}); err != nil {
			return err
		}
		if err := tx.Users().DeleteUser(ctx, owner.ID); err != nil {
			return err
		}
		return fmt.Errorf("abort: %w", errBoom)
	})
	assert.ErrorIs(t, err, errBoom)

	assert.Equal(t, map[string]int{"A": 1, "B": 2}, Positions(t, b, owner.ID))
	_, err = b.Users().FindUserByID(ctx, owner.ID)
	assert.NoError(t, err)
	assert.Len(t, created, 2)
}
