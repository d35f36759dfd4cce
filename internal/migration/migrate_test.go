package migration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrator_GetLatestVersion(t *testing.T) {
	m := NewMigratorFromDB(nil)

	version, err := m.GetLatestVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
	assert.NoError(t, m.Close())
}

func TestGetMigrationsDir(t *testing.T) {
	dir, err := getMigrationsDir()
	require.NoError(t, err)

	assert.Equal(t, "sql", filepath.Base(dir))
	assert.FileExists(t, filepath.Join(dir, "00001_create_users.sql"))
	assert.FileExists(t, filepath.Join(dir, "00002_create_tasks.sql"))
}
