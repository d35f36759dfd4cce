package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/elskow/tasktrack/internal/config"
	"github.com/elskow/tasktrack/internal/storage"
	"github.com/elskow/tasktrack/internal/storage/file"
)

const testPassword = "correct-horse"

func newTestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

func newTestConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:            "test-secret-key",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
		RefreshTokenEnabled:  true,
		PasswordCost:         bcrypt.MinCost,
	}
}

func newTestBackend(t *testing.T) storage.Backend {
	backend, err := file.Open(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return backend
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	service *Service
	tokens  *TokenService
	backend storage.Backend
	clock   *testClock
}

func newTestEnv(t *testing.T) *testEnv {
	cfg := newTestConfig()
	clock := newTestClock()
	backend := newTestBackend(t)

	tokens := NewTokenService(cfg)
	tokens.now = clock.Now

	return &testEnv{
		service: NewService(cfg, newTestLogger(t), backend, tokens, WithClock(clock.Now)),
		tokens:  tokens,
		backend: backend,
		clock:   clock,
	}
}

func newTestService(t *testing.T) *Service {
	return newTestEnv(t).service
}

func (e *testEnv) register(t *testing.T, username string) *Session {
	t.Helper()
	session, err := e.service.Register(context.Background(), RegisterInput{
		Username:  username,
		Email:     username + "@example.com",
		Password:  testPassword,
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return session
}
