package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/infra/bq"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

type BigQuery struct {
	projectID       types.GoogleProjectID
	datasetID       types.BQDatasetID
	tableID         types.BQTableID
	credentialsFile string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bq-project-id",
			Usage:       "BigQuery project ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("COPYCAT_BQ_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bq-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("COPYCAT_BQ_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bq-table-id",
			Usage:       "BigQuery table ID of exported matches",
			Category:    "BigQuery",
			Value:       "matches",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("COPYCAT_BQ_TABLE_ID"),
		},
		&cli.StringFlag{
			Name:        "bq-credentials",
			Usage:       "Path to a service account key file. Application default credentials are used when empty",
			Category:    "BigQuery",
			Destination: &x.credentialsFile,
			Sources:     cli.EnvVars("COPYCAT_BQ_CREDENTIALS"),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != "" && x.datasetID != ""
}

// NewClient returns nil without error when BigQuery is not configured
func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}

	var opts []option.ClientOption
	if x.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(x.credentialsFile))
	}
	return bq.New(ctx, x.projectID, x.datasetID, x.tableID, opts...)
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("DatasetID", x.datasetID),
		slog.Any("TableID", x.tableID),
		slog.Bool("Credentials", x.credentialsFile != ""),
	)
}
