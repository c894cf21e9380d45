package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// Firestore selects the Firestore store when no Postgres URL is given.
type Firestore struct {
	projectID       types.GoogleProjectID
	databaseID      string
	credentialsFile string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID. The in-memory store is used when neither this nor a database URL is set",
			Category:    "Database",
			Sources:     cli.EnvVars("COPYCAT_FIRESTORE_PROJECT_ID"),
			Destination: (*string)(&x.projectID),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Database",
			Sources:     cli.EnvVars("COPYCAT_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-credentials",
			Usage:       "Path to a service account key file for Firestore",
			Category:    "Database",
			Sources:     cli.EnvVars("COPYCAT_FIRESTORE_CREDENTIALS"),
			Destination: &x.credentialsFile,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.String("DatabaseID", x.databaseID),
		slog.Bool("Credentials", x.credentialsFile != ""),
	)
}

func (x *Firestore) NewDatabase(ctx context.Context) (*firestore.Database, error) {
	var opts []option.ClientOption
	if x.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(x.credentialsFile))
	}
	return firestore.New(ctx, string(x.projectID), x.databaseID, opts...)
}
