package tasks

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/storage"
	"github.com/elskow/tasktrack/internal/storage/file"
	"github.com/elskow/tasktrack/internal/storage/storagetest"
)

// tickingClock advances one second per reading so records get distinct
// creation times.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type testEnv struct {
	service *Service
	backend storage.Backend
	owner   *storage.User
}

func newTestEnv(t *testing.T) *testEnv {
	clock := &tickingClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	backend, err := file.Open(t.TempDir(), zaptest.NewLogger(t), file.WithClock(clock.Now))
	require.NoError(t, err)

	return &testEnv{
		service: NewService(zaptest.NewLogger(t), backend, WithClock(clock.Now)),
		backend: backend,
		owner:   storagetest.MustCreateUser(t, backend, "owner"),
	}
}

func newTestService(t *testing.T) *Service {
	return newTestEnv(t).service
}

// seed creates the titled tasks through the service, so they land at 1..n.
func (e *testEnv) seed(t *testing.T, titles ...string) map[string]*storage.Task {
	t.Helper()
	created := make(map[string]*storage.Task, len(titles))
	for _, title := range titles {
		task, err := e.service.Create(context.Background(), e.owner.ID, title, "")
		require.NoError(t, err)
		created[title] = task
	}
	return created
}

func (e *testEnv) positions(t *testing.T) map[string]int {
	return storagetest.Positions(t, e.backend, e.owner.ID)
}

func TestService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.service.Create(ctx, env.owner.ID, "  Buy milk  ", " two litres ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", first.Title)
	assert.Equal(t, "two litres", first.Description)
	assert.Equal(t, 1, first.Position)
	assert.False(t, first.Completed)

	second, err := env.service.Create(ctx, env.owner.ID, "Walk dog", "")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Position)

	tests := []struct {
		name  string
		title string
		desc  string
	}{
		{name: "empty title", title: "   "},
		{name: "title too long", title: strings.Repeat("x", MaxTitleLength+1)},
		{name: "description too long", title: "ok", desc: strings.Repeat("x", MaxDescriptionLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.service.Create(ctx, env.owner.ID, tt.title, tt.desc)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestService_CreateConcurrent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.service.Create(ctx, env.owner.ID, "task", "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	owned, err := env.service.List(ctx, env.owner.ID)
	require.NoError(t, err)
	require.Len(t, owned, n)
	for i, task := range owned {
		assert.Equal(t, i+1, task.Position)
	}
}

func TestService_Move(t *testing.T) {
	tests := []struct {
		name     string
		task     string
		position int
		want     map[string]int
	}{
		{
			name:     "up",
			task:     "D",
			position: 2,
			want:     map[string]int{"A": 1, "D": 2, "B": 3, "C": 4},
		},
		{
			name:     "down",
			task:     "A",
			position: 3,
			want:     map[string]int{"B": 1, "C": 2, "A": 3, "D": 4},
		},
		{
			name:     "same position",
			task:     "B",
			position: 2,
			want:     map[string]int{"A": 1, "B": 2, "C": 3, "D": 4},
		},
		{
			name:     "to the top",
			task:     "C",
			position: 1,
			want:     map[string]int{"C": 1, "A": 2, "B": 3, "D": 4},
		},
		{
			name:     "past the end is clamped",
			task:     "A",
			position: 99,
			want:     map[string]int{"B": 1, "C": 2, "D": 3, "A": 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			created := env.seed(t, "A", "B", "C", "D")

			moved, err := env.service.Move(context.Background(), env.owner.ID, created[tt.task].ID, tt.position)
			require.NoError(t, err)
			assert.Equal(t, tt.want[tt.task], moved.Position)
			assert.Equal(t, tt.want, env.positions(t))
		})
	}
}

func TestService_MoveRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := env.seed(t, "A", "B", "C", "D")
	original := env.positions(t)

	_, err := env.service.Move(ctx, env.owner.ID, created["D"].ID, 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 1, "D": 2, "B": 3, "C": 4}, env.positions(t))

	_, err = env.service.Move(ctx, env.owner.ID, created["D"].ID, 4)
	require.NoError(t, err)
	assert.Equal(t, original, env.positions(t))
}

func TestService_MoveErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := env.seed(t, "A", "B")
	stranger := storagetest.MustCreateUser(t, env.backend, "stranger")

	tests := []struct {
		name     string
		userID   string
		taskID   string
		position int
		wantErr  error
	}{
		{
			name:     "foreign task",
			userID:   stranger.ID,
			taskID:   created["A"].ID,
			position: 1,
			wantErr:  common.ErrForbidden,
		},
		{
			name:     "missing task",
			userID:   env.owner.ID,
			taskID:   "does-not-exist",
			position: 1,
			wantErr:  common.ErrNotFound,
		},
		{
			name:     "zero position",
			userID:   env.owner.ID,
			taskID:   created["A"].ID,
			position: 0,
			wantErr:  common.ErrValidation,
		},
		{
			name:     "negative position",
			userID:   env.owner.ID,
			taskID:   created["A"].ID,
			position: -3,
			wantErr:  common.ErrValidation,
		},
		{
			name:     "anonymous",
			taskID:   created["A"].ID,
			position: 1,
			wantErr:  common.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.service.Move(ctx, tt.userID, tt.taskID, tt.position)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, map[string]int{"A": 1, "B": 2}, env.positions(t))
}

func TestService_MoveNormalizesUnsetPositions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seed(t, "A", "B")

	var unset []*storage.Task
	for _, title := range []string{"X", "Y"} {
		task, err := env.backend.Tasks().CreateTask(ctx, &storage.Task{
			Owner:    env.owner.ID,
			Title:    title,
			Position: storage.UnsetPosition,
		})
		require.NoError(t, err)
		unset = append(unset, task)
	}

	moved, err := env.service.Move(ctx, env.owner.ID, unset[1].ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, moved.Position)
	assert.Equal(t, map[string]int{"Y": 1, "A": 2, "B": 3, "X": 4}, env.positions(t))
}

func TestService_Toggle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := env.seed(t, "A")

	done, err := env.service.Toggle(ctx, env.owner.ID, created["A"].ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	undone, err := env.service.Toggle(ctx, env.owner.ID, created["A"].ID)
	require.NoError(t, err)
	assert.False(t, undone.Completed)
	assert.Nil(t, undone.CompletedAt)

	stranger := storagetest.MustCreateUser(t, env.backend, "stranger")
	_, err = env.service.Toggle(ctx, stranger.ID, created["A"].ID)
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestService_Get(t *testing.T) {
	env := newTestEnv(t)
	created := env.seed(t, "A", "B")
	stranger := storagetest.MustCreateUser(t, env.backend, "stranger")

	tests := []struct {
		name    string
		userID  string
		taskID  string
		want    string
		wantErr error
	}{
		{name: "owner", userID: env.owner.ID, taskID: created["B"].ID, want: "B"},
		{name: "stranger", userID: stranger.ID, taskID: created["B"].ID, wantErr: common.ErrForbidden},
		{name: "missing", userID: env.owner.ID, taskID: "missing", wantErr: common.ErrNotFound},
		{name: "anonymous", userID: "", taskID: created["A"].ID, wantErr: common.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := env.service.Get(context.Background(), tt.userID, tt.taskID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, task.Title)
			assert.Equal(t, 2, task.Position)
		})
	}
}

func TestService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := env.seed(t, "A", "B", "C", "D")

	stranger := storagetest.MustCreateUser(t, env.backend, "stranger")
	err := env.service.Delete(ctx, stranger.ID, created["B"].ID)
	assert.ErrorIs(t, err, common.ErrForbidden)

	require.NoError(t, env.service.Delete(ctx, env.owner.ID, created["B"].ID))
	assert.Equal(t, map[string]int{"A": 1, "C": 2, "D": 3}, env.positions(t))

	require.NoError(t, env.service.Delete(ctx, env.owner.ID, created["D"].ID))
	assert.Equal(t, map[string]int{"A": 1, "C": 2}, env.positions(t))

	err = env.service.Delete(ctx, env.owner.ID, created["D"].ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	next, err := env.service.Create(ctx, env.owner.ID, "E", "")
	require.NoError(t, err)
	assert.Equal(t, 3, next.Position)
}

func TestService_List(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seed(t, "A", "B", "C")
	other := storagetest.MustCreateUser(t, env.backend, "other")
	_, err := env.service.Create(ctx, other.ID, "not mine", "")
	require.NoError(t, err)

	owned, err := newTestService(t).List(ctx, env.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)

	owned, err = env.service.List(ctx, env.owner.ID)
	require.NoError(t, err)
	require.Len(t, owned, 3)
	assert.Equal(t, "A", owned[0].Title)
	assert.Equal(t, "C", owned[2].Title)
}
