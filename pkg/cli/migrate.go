package cli

import (
	"context"

	"github.com/m-mizutani/copycat/pkg/cli/config"
	"github.com/m-mizutani/copycat/pkg/repository/postgres"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func migrateCommand() *cli.Command {
	var database config.Database

	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply PostgreSQL schema migrations",
		Flags: database.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			dsn, err := database.PostgresURL()
			if err != nil {
				return err
			}
			if err := postgres.Migrate(dsn); err != nil {
				return err
			}

			logging.From(ctx).Info("migrations applied")
			return nil
		},
	}
}
