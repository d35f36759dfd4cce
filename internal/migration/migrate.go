package migration

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/elskow/tasktrack/internal/config"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const migrationsDir = "sql"

type Migrator struct {
	db     *sql.DB
	ownsDB bool
}

// NewMigrator opens its own connection through lib/pq.
func NewMigrator(config *config.DatabaseConfig) (*Migrator, error) {
	db, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Migrator{
		db:     db,
		ownsDB: true,
	}, nil
}

// NewMigratorFromDB runs migrations over an existing pool. Close leaves the
// pool open.
func NewMigratorFromDB(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

func prepare() error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

func (m *Migrator) Up() error {
	if err := prepare(); err != nil {
		return err
	}

	if err := goose.Up(m.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (m *Migrator) Down() error {
	if err := prepare(); err != nil {
		return err
	}

	if err := goose.Down(m.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to rollback migrations: %w", err)
	}

	return nil
}

func (m *Migrator) Close() error {
	if !m.ownsDB {
		return nil
	}
	return m.db.Close()
}

// GetCurrentVersion returns the current migration version
func (m *Migrator) GetCurrentVersion() (int64, error) {
	if err := prepare(); err != nil {
		return 0, err
	}
	return goose.GetDBVersion(m.db)
}

// GetLatestVersion returns the latest embedded migration version
func (m *Migrator) GetLatestVersion() (int64, error) {
	if err := prepare(); err != nil {
		return 0, err
	}

	migrations, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return 0, err
	}

	if len(migrations) == 0 {
		return 0, nil
	}

	return migrations[len(migrations)-1].Version, nil
}

// DownTo migrates the database down to a specific version
func (m *Migrator) DownTo(version int64) error {
	if err := prepare(); err != nil {
		return err
	}

	if err := goose.DownTo(m.db, migrationsDir, version); err != nil {
		return fmt.Errorf("failed to migrate down to version %d: %w", version, err)
	}

	return nil
}

func (m *Migrator) Status() error {
	if err := prepare(); err != nil {
		return err
	}

	if err := goose.Status(m.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

func (m *Migrator) Reset() error {
	if err := prepare(); err != nil {
		return err
	}

	if err := goose.Reset(m.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to reset migrations: %w", err)
	}
	return m.Up()
}

// Create writes a new sequential SQL migration into the source tree and
// returns the directory it was written to.
func Create(name string) (string, error) {
	dir, err := getMigrationsDir()
	if err != nil {
		return "", fmt.Errorf("failed to get migrations directory: %w", err)
	}

	goose.SetBaseFS(nil)
	goose.SetSequential(true)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return "", fmt.Errorf("failed to create migration: %w", err)
	}
	return dir, nil
}
