package main

import (
	"fmt"

	pg "petcare-registry/internal/adapters/storage/postgres"
	"petcare-registry/internal/adapters/storage/sqlite"
	"petcare-registry/internal/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations for the configured SQL backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch cfg.Storage.Backend {
		case config.BackendPostgres:
			if err := pg.Migrate(cfg.Storage.DSN); err != nil {
				return err
			}
		case config.BackendSQLite:
			if err := sqlite.Migrate(cfg.Storage.SQLitePath); err != nil {
				return err
			}
		default:
			return fmt.Errorf("storage backend %q has no schema to migrate", cfg.Storage.Backend)
		}
		log.Info("migrations applied", map[string]any{"storage": cfg.Storage.Backend})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
