package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/infra"
	"github.com/m-mizutani/gt"
)

func TestCreateReport(t *testing.T) {
	queue := newJobQueueMock()
	env := newTestEnv(t, newGitHubMock(), infra.WithJobQueue(queue))
	ctx := env.ctx()

	report := gt.R1(env.uc.CreateReport(ctx, &model.ReportInput{
		OriginalURL:   "https://github.com/alice/app",
		SuspectURL:    "https://github.com/mallory/app",
		Reason:        "identical history",
		ReporterEmail: "reporter@example.com",
	})).NoError(t)
	gt.V(t, report.Status).Equal(types.ReportStatusPending)
	gt.True(t, report.ID != "")

	calls := queue.EnqueueCalls()
	gt.A(t, calls).Length(2)
	gt.V(t, calls[0].Job.Owner).Equal("alice")
	gt.V(t, calls[1].Job.Owner).Equal("mallory")
	gt.V(t, calls[1].Job.Priority).Equal(100)

	reports := gt.R1(env.uc.ListReports(ctx)).NoError(t)
	gt.A(t, reports).Length(1)
	gt.V(t, reports[0].ID).Equal(report.ID)

	_, err := env.uc.CreateReport(ctx, &model.ReportInput{
		OriginalURL: "https://github.com/alice/app",
		SuspectURL:  "https://gitlab.com/mallory/app",
	})
	gt.Error(t, err).Is(types.ErrInvalidURL)
	gt.A(t, queue.EnqueueCalls()).Length(2)
}

func TestStats(t *testing.T) {
	env := newTestEnv(t, newGitHubMock(
		newHostedRepo(1200, "alice/app", baseTime, newCommit("a", "Create the scheduler", "alice", baseTime)),
		newHostedRepo(1201, "bob/app", baseTime.AddDate(0, 1, 0),
			newCommit("b", "Create the scheduler", "bob", baseTime),
			newCommit("c", "Tune the scheduler", "bob", baseTime.Add(time.Hour)),
		),
	))
	ctx := env.ctx()

	gt.R1(env.uc.IndexRepository(ctx, "alice", "app")).NoError(t)
	gt.R1(env.uc.ScanRepository(ctx, "bob", "app")).NoError(t)

	stats := gt.R1(env.uc.Stats(ctx)).NoError(t)
	gt.V(t, *stats).Equal(model.Stats{Repositories: 2, Commits: 3, Matches: 1})
}
