package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elskow/tasktrack/internal/storage"
)

const sampleConfig = `
[server]
host = "127.0.0.1"
port = "6000"

[grpc]
enable_reflection = true

[grpc.production]
enable_reflection = false

[auth]
jwt_secret = "from-file"
access_token_duration = "5m"

[storage]
backend = "postgres"
file_dir = "/tmp/tasks"

[database]
host = "db"
name = "tasks"
`

func writeConfig(t *testing.T, contents string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(contents), 0644))
	return dir
}

func TestLoadConfigFrom_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvTesting)

	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "50051", cfg.Server.Port)
	assert.Equal(t, storage.KindMongo, cfg.Storage.Backend)
	assert.Equal(t, 5*time.Second, cfg.Storage.ConnectTimeout)
	assert.Equal(t, "data", cfg.Storage.FileDir)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenDuration)
	assert.Equal(t, 5, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, 2*time.Hour, cfg.Auth.LockDuration)
	assert.Equal(t, "task-manager-api", cfg.Auth.Issuer)
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.LoginWindow)
}

func TestLoadConfigFrom_File(t *testing.T) {
	t.Setenv("APP_ENV", EnvDevelopment)

	cfg, err := LoadConfigFrom(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "6000", cfg.Server.Port)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, storage.KindPostgres, cfg.Storage.Backend)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.GRPC.EnableReflection)
}

func TestLoadConfigFrom_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("MONGODB_URI", "mongodb://mongo:27017/tasks")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("TASKTRACK_STORAGE_BACKEND", "file")

	cfg, err := LoadConfigFrom(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "mongodb://mongo:27017/tasks", cfg.Mongo.URI)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, storage.KindFile, cfg.Storage.Backend)
	assert.False(t, cfg.GRPC.EnableReflection)
}

func TestLoadConfigFrom_ProductionNeedsSecret(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)

	_, err := LoadConfigFrom(t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfigFrom_Malformed(t *testing.T) {
	t.Setenv("APP_ENV", EnvTesting)

	_, err := LoadConfigFrom(writeConfig(t, "[server\nport = "))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{EnvDevelopment, EnvProduction, EnvTesting} {
		t.Run(env, func(t *testing.T) {
			log, err := NewLogger(env)
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}

	_, err := NewLogger("staging")
	assert.Error(t, err)
}
