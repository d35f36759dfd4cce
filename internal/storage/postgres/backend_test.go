package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/config"
	"github.com/elskow/tasktrack/internal/migration"
	"github.com/elskow/tasktrack/internal/storage"
	"github.com/elskow/tasktrack/internal/storage/storagetest"
)

// testBackend connects to TASKTRACK_TEST_POSTGRES_DSN and empties both tables.
func testBackend(t *testing.T) *Backend {
	t.Helper()
	dsn := os.Getenv("TASKTRACK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TASKTRACK_TEST_POSTGRES_DSN not set")
	}

	b, err := open(context.Background(), dsn, &config.DatabaseConfig{AutoMigrate: true}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, b.db.Exec("TRUNCATE tasks, users CASCADE").Error)
	t.Cleanup(func() { b.Close(context.Background()) })
	return b
}

func TestBackendContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Backend {
		return testBackend(t)
	}, storagetest.Options{Transactional: true})
}

func TestBackendMigrationsApplied(t *testing.T) {
	b := testBackend(t)

	m := migration.NewMigratorFromDB(b.sqlDB)
	current, err := m.GetCurrentVersion()
	require.NoError(t, err)
	latest, err := m.GetLatestVersion()
	require.NoError(t, err)
	assert.Equal(t, latest, current)
}

func TestOpenUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	_, err := Open(ctx, &config.DatabaseConfig{
		Host: "127.0.0.1",
		Port: 1,
		User: "nobody",
		Name: "nothing",
	}, zap.NewNop())
	assert.Error(t, err)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		text   string
	}{
		{
			name:   "record not found",
			err:    gorm.ErrRecordNotFound,
			target: common.ErrNotFound,
		},
		{
			name:   "duplicate email",
			err:    &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"},
			target: common.ErrDuplicateIdentity,
			text:   "email",
		},
		{
			name:   "duplicate username",
			err:    fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_username_key"}),
			target: common.ErrDuplicateIdentity,
			text:   "username",
		},
		{
			name:   "canceled",
			err:    context.Canceled,
			target: context.Canceled,
		},
		{
			name:   "anything else",
			err:    &pgconn.PgError{Code: "08006"},
			target: common.ErrStorageUnavailable,
			text:   "find user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translate("find user", tt.err)
			assert.ErrorIs(t, err, tt.target)
			if tt.text != "" {
				assert.Contains(t, err.Error(), tt.text)
			}
		})
	}

	assert.NoError(t, translate("noop", nil))
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("8f14e45f-ceea-467f-a0e6-1f5b3c2a9d10"))
	assert.False(t, validID("does-not-exist"))
	assert.False(t, validID(""))
}

func TestInfo(t *testing.T) {
	b := &Backend{config: &config.DatabaseConfig{Host: "localhost", Port: 5432, Name: "tasks"}}
	assert.Equal(t, storage.Info{
		Kind:       storage.KindPostgres,
		Host:       "localhost:5432",
		Database:   "tasks",
		Connection: "local",
	}, b.Info())

	b.config.Host = "db.internal"
	assert.Equal(t, "remote", b.Info().Connection)
}
