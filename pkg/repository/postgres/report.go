package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (x *Database) CreateReport(ctx context.Context, report *model.Report) error {
	if report.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "report ID is empty")
	}

	if _, err := x.pool.Exec(ctx, `INSERT INTO reports
		(id, original_url, suspect_url, reason, reporter_email, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		string(report.ID), report.OriginalURL, report.SuspectURL, report.Reason,
		report.ReporterEmail, string(report.Status), report.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return goerr.Wrap(repository.ErrAlreadyExists, "report already exists", goerr.V("id", report.ID))
		}
		return goerr.Wrap(err, "failed to insert report", goerr.V("id", report.ID))
	}
	return nil
}

func (x *Database) ListReports(ctx context.Context) ([]*model.Report, error) {
	rows, err := x.pool.Query(ctx, `SELECT id, original_url, suspect_url, reason, reporter_email, status, created_at
		FROM reports ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reports")
	}

	reports, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Report, error) {
		var r model.Report
		var id, status string
		if err := row.Scan(&id, &r.OriginalURL, &r.SuspectURL, &r.Reason, &r.ReporterEmail, &status, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.ID = types.ReportID(id)
		r.Status = types.ReportStatus(status)
		return &r, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan reports")
	}
	return reports, nil
}
