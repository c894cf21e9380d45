package usecase

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ExportMatches writes every match with confidence at least minScore to BigQuery
// and returns the number of rows written
func (x *UseCase) ExportMatches(ctx context.Context, minScore int) (int, error) {
	bq := x.clients.BigQuery()
	if bq == nil {
		return 0, goerr.Wrap(types.ErrInvalidOption, "BigQuery is not configured")
	}

	matches, err := x.clients.Database().ListMatches(ctx, minScore, 0)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list matches", goerr.V("min_score", minScore))
	}
	if len(matches) == 0 {
		return 0, nil
	}

	schema, schemaUpdated, err := createOrUpdateBigQueryTable(ctx, bq, &model.MatchRecord{})
	if err != nil {
		return 0, err
	}

	exportedAt := now(ctx)
	rows := make([]any, len(matches))
	for i, m := range matches {
		rows[i] = model.NewMatchRecord(m, exportedAt)
	}

	if err := bq.Insert(ctx, schema, rows, interfaces.WithRetry(schemaUpdated)); err != nil {
		return 0, goerr.Wrap(err, "failed to insert match records", goerr.V("rows", len(rows)))
	}

	logging.From(ctx).Info("Exported matches",
		slog.Int("rows", len(rows)),
		slog.Int("min_score", minScore),
		slog.Bool("schema_updated", schemaUpdated),
	)
	return len(rows), nil
}

// createOrUpdateBigQueryTable creates the table from the schema inferred from
// record, or merges it into the existing schema. schemaUpdated is true when an
// existing table was altered.
func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, record any) (schema bigquery.Schema, schemaUpdated bool, err error) {
	schema, err = bqs.Infer(record)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to infer record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, false, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, false, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, false, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, false, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, true, nil
}
