// Command migrate manages the Postgres schema used by the postgres storage
// backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/migration"
	"github.com/elskow/tasktrack/internal/server"
)

func main() {
	if os.Getenv("APP_ENV") == "" {
		os.Setenv("APP_ENV", "development")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var log *zap.Logger

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the tasktrack Postgres schema",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = server.NewLogger(server.Env())
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

var downTo int64

func init() {
	downCmd.Flags().Int64Var(&downTo, "to", -1, "roll back to this version instead of one step")

	rootCmd.AddCommand(upCmd, downCmd, statusCmd, versionCmd, resetCmd, createCmd)
}

// withMigrator loads the config and runs fn against a fresh migrator.
func withMigrator(fn func(m *migration.Migrator) error) error {
	cfg, err := server.LoadConfig()
	if err != nil {
		log.Error("Failed to load config", zap.Error(err))
		return err
	}

	migrator, err := migration.NewMigrator(&cfg.Database)
	if err != nil {
		log.Error("Failed to create migrator", zap.Error(err))
		return err
	}
	defer migrator.Close()

	if err := fn(migrator); err != nil {
		log.Error("Migration command failed", zap.Error(err))
		return err
	}
	return nil
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migration.Migrator) error {
			if err := m.Up(); err != nil {
				return err
			}
			log.Info("Successfully ran migrations")
			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration, or down to --to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migration.Migrator) error {
			if downTo >= 0 {
				if err := m.DownTo(downTo); err != nil {
					return err
				}
				log.Info("Successfully rolled back migrations", zap.Int64("version", downTo))
				return nil
			}
			if err := m.Down(); err != nil {
				return err
			}
			log.Info("Successfully rolled back migrations")
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the state of every migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migration.Migrator) error {
			return m.Status()
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied and latest migration versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migration.Migrator) error {
			current, err := m.GetCurrentVersion()
			if err != nil {
				return err
			}
			latest, err := m.GetLatestVersion()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "current: %d\nlatest:  %d\n", current, latest)
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Roll back every migration and apply them again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migration.Migrator) error {
			if err := m.Reset(); err != nil {
				return err
			}
			log.Info("Successfully reset migrations")
			return nil
		})
	},
}

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Write a new empty SQL migration into the source tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := migration.Create(args[0])
		if err != nil {
			log.Error("Failed to create migration", zap.Error(err))
			return err
		}
		log.Info("Created migration", zap.String("name", args[0]), zap.String("dir", dir))
		return nil
	},
}
