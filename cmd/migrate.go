package main

import (
	root "brandkit"
	"brandkit/internal/config"
	"brandkit/pkg/logger"
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand applies the provision table migrations and, unless disabled,
// the River job queue migrations.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			withRiver, _ := cmd.Flags().GetBool("river")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "storage is not backed by a database handle")
			}

			if err := migrateTables(db); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			if !withRiver {
				return
			}
			version, err := migrateRiver(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
			logger.Info(ctx, "river queue schema is up to date", zap.Int("version", version))
		},
	}
	cmd.Flags().Bool("river", true, "Also apply River job queue migrations")

	return cmd
}

func migrateTables(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}

	return goose.Up(db, "migrations") //nolint: wrapcheck
}

// migrateRiver brings the River schema to its latest version and returns it.
func migrateRiver(ctx context.Context, db *sql.DB) (int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, fmt.Errorf("could not create migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not get existing migrations: %w", err)
	}
	if len(existing) > 0 && existing[len(existing)-1].Version >= latest {
		return latest, nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		return 0, fmt.Errorf("could not apply migrations: %w", err)
	}

	return latest, nil
}
