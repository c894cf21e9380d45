package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository/memory"
	"github.com/m-mizutani/copycat/pkg/repository/postgres"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Database selects the store: PostgreSQL when a URL is given, else Firestore
// when a project is given, else an in-process store that is lost on exit.
type Database struct {
	postgresURL types.DatabaseURL `masq:"secret"`
	migrate     bool
	firestore   Firestore
}

func (x *Database) Flags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:        "database-url",
			Usage:       "PostgreSQL connection URL",
			Category:    "Database",
			Destination: (*string)(&x.postgresURL),
			Sources:     cli.EnvVars("COPYCAT_DATABASE_URL", "DATABASE_URL"),
		},
		&cli.BoolFlag{
			Name:        "database-migrate",
			Usage:       "Apply PostgreSQL migrations on startup",
			Category:    "Database",
			Destination: &x.migrate,
			Sources:     cli.EnvVars("COPYCAT_DATABASE_MIGRATE"),
		},
	}, x.firestore.Flags()...)
}

// PostgresURL returns the PostgreSQL URL, or an error when none is configured
func (x *Database) PostgresURL() (string, error) {
	if x.postgresURL == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "database URL is required")
	}
	return string(x.postgresURL), nil
}

// Open connects to the configured store. The returned function releases it.
func (x *Database) Open(ctx context.Context) (interfaces.Database, func(), error) {
	logger := logging.From(ctx)

	switch {
	case x.postgresURL != "":
		if x.migrate {
			if err := postgres.Migrate(string(x.postgresURL)); err != nil {
				return nil, nil, err
			}
			logger.Info("applied PostgreSQL migrations")
		}

		db, err := postgres.New(ctx, string(x.postgresURL))
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil

	case x.firestore.Enabled():
		db, err := x.firestore.NewDatabase(ctx)
		if err != nil {
			return nil, nil, err
		}
		return db, func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close Firestore client", slog.Any("error", err))
			}
		}, nil

	default:
		logger.Warn("no database configured, using in-memory store")
		return memory.New(), func() {}, nil
	}
}

func (x *Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("Postgres", x.postgresURL != ""),
		slog.Bool("Migrate", x.migrate),
		slog.Any("Firestore", &x.firestore),
	)
}
