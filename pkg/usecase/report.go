package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// reportPriority puts reported repositories ahead of every discovery source
const reportPriority = 100

// CreateReport stores a community report and enqueues both repositories
func (x *UseCase) CreateReport(ctx context.Context, input *model.ReportInput) (*model.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	report := &model.Report{
		ID:            types.NewReportID(),
		OriginalURL:   input.OriginalURL,
		SuspectURL:    input.SuspectURL,
		Reason:        input.Reason,
		ReporterEmail: input.ReporterEmail,
		Status:        types.ReportStatusPending,
		CreatedAt:     now(ctx),
	}
	if err := x.clients.Database().CreateReport(ctx, report); err != nil {
		return nil, goerr.Wrap(err, "failed to store report", goerr.V("id", report.ID))
	}

	for _, url := range []string{report.OriginalURL, report.SuspectURL} {
		if _, err := x.EnqueueScanFromURL(ctx, url, reportPriority); err != nil {
			return nil, goerr.Wrap(err, "failed to enqueue reported repository", goerr.V("url", url))
		}
	}

	logging.From(ctx).Info("Report received", slog.Any("report", report))
	return report, nil
}

func (x *UseCase) ListReports(ctx context.Context) ([]*model.Report, error) {
	reports, err := x.clients.Database().ListReports(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reports")
	}
	return reports, nil
}

// Stats counts stored repositories, commits and matches
func (x *UseCase) Stats(ctx context.Context) (*model.Stats, error) {
	db := x.clients.Database()

	repos, err := db.CountRepositories(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count repositories")
	}
	commits, err := db.CountCommits(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count commits")
	}
	matches, err := db.CountMatches(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count matches")
	}

	return &model.Stats{Repositories: repos, Commits: commits, Matches: matches}, nil
}
