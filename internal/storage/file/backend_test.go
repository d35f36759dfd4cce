package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/storage"
	"github.com/elskow/tasktrack/internal/storage/storagetest"
)

func newTestBackend(t *testing.T) *Backend {
	b, err := Open(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return b
}

func TestBackendContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Backend {
		return newTestBackend(t)
	}, storagetest.Options{Transactional: true})
}

func TestOpen_CreatesEmptyDocuments(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	_, err := Open(dir, zap.NewNop())
	require.NoError(t, err)

	for _, name := range []string{UsersFile, TasksFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(data))
	}
}

func TestOpen_KeepsExistingDocuments(t *testing.T) {
	dir := t.TempDir()
	b, err := Open(dir, zap.NewNop())
	require.NoError(t, err)
	user := storagetest.MustCreateUser(t, b, "alice")

	reopened, err := Open(dir, zap.NewNop())
	require.NoError(t, err)

	found, err := reopened.Users().FindUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestBackend_DocumentLayout(t *testing.T) {
	b := newTestBackend(t)
	user := storagetest.MustCreateUser(t, b, "alice")
	storagetest.MustCreateTasks(t, b, user.ID, "A")

	data, err := os.ReadFile(filepath.Join(b.dir, UsersFile))
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, user.ID, records[0]["_id"])
	assert.IsType(t, "", records[0]["createdAt"])

	data, err = os.ReadFile(filepath.Join(b.dir, TasksFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, user.ID, records[0]["user"])
	assert.EqualValues(t, 1, records[0]["position"])
}

func TestBackend_LockoutStoredFlat(t *testing.T) {
	b := newTestBackend(t)
	user := storagetest.MustCreateUser(t, b, "alice")

	lockUntil := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	_, err := b.Users().UpdateUser(context.Background(), user.ID, storage.UserUpdate{
		Lockout: &storage.LockoutState{Attempts: 5, LockUntil: &lockUntil},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(b.dir, UsersFile))
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.NotContains(t, records[0], "lockout")
	assert.EqualValues(t, 5, records[0]["loginAttempts"])
	assert.Equal(t, "2026-03-01T11:00:00Z", records[0]["lockUntil"])

	reopened, err := Open(b.dir, zap.NewNop())
	require.NoError(t, err)
	found, err := reopened.Users().FindUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Lockout.Attempts)
	require.NotNil(t, found.Lockout.LockUntil)
	assert.True(t, lockUntil.Equal(*found.Lockout.LockUntil))
	assert.Equal(t, user.PasswordHash, found.PasswordHash)
}

func TestBackend_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	b := newTestBackend(t)
	owner := storagetest.MustCreateUser(t, b, "alice")

	const n = 20
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			task, err := b.Tasks().CreateTask(context.Background(), &storage.Task{
				Owner:    owner.ID,
				Title:    "task",
				Position: i + 1,
			})
			assert.NoError(t, err)
			if task != nil {
				ids <- task.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	stats, err := b.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(n), stats.Tasks)
}

func TestBackend_CanceledContext(t *testing.T) {
	b := newTestBackend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Users().FindUserByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackend_CorruptDocument(t *testing.T) {
	b := newTestBackend(t)
	require.NoError(t, os.WriteFile(filepath.Join(b.dir, UsersFile), []byte("{not json"), 0644))

	_, err := b.Users().FindUserByEmail(context.Background(), "alice@example.com")
	assert.Error(t, err)
	assert.ErrorContains(t, err, "storage unavailable")
}
