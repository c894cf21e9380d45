package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/infra"
	"github.com/m-mizutani/gt"
)

func TestEnqueueScan(t *testing.T) {
	queue := newJobQueueMock()
	env := newTestEnv(t, newGitHubMock(), infra.WithJobQueue(queue))
	ctx := env.ctx()

	gt.True(t, gt.R1(env.uc.EnqueueScan(ctx, "alice", "app", 5)).NoError(t))
	gt.False(t, gt.R1(env.uc.EnqueueScan(ctx, "alice", "app", 5)).NoError(t))
	gt.True(t, gt.R1(env.uc.EnqueueScanFromURL(ctx, "https://github.com/bob/lib", 1)).NoError(t))

	_, err := env.uc.EnqueueScan(ctx, "", "app", 0)
	gt.Error(t, err).Is(types.ErrValidationFailed)
	_, err = env.uc.EnqueueScanFromURL(ctx, "not a url", 0)
	gt.Error(t, err).Is(types.ErrInvalidURL)

	calls := queue.EnqueueCalls()
	gt.A(t, calls).Length(3)
	gt.V(t, calls[2].Job.Owner).Equal("bob")
	gt.V(t, calls[2].Job.Repo).Equal("lib")
	gt.V(t, calls[2].Job.EnqueuedAt).Equal(env.clock.Now().UTC())

	stats := gt.R1(env.uc.QueueStats(ctx)).NoError(t)
	gt.V(t, stats.Waiting).Equal(2)
}

func TestEnqueueScanWithoutQueue(t *testing.T) {
	env := newTestEnv(t, newGitHubMock())
	_, err := env.uc.EnqueueScan(env.ctx(), "alice", "app", 0)
	gt.Error(t, err).Is(types.ErrInvalidOption)

	_, err = env.uc.QueueStats(env.ctx())
	gt.Error(t, err).Is(types.ErrInvalidOption)
}

func TestHandleScanJob(t *testing.T) {
	ts := baseTime.Add(-time.Hour)
	a := newHostedRepo(900, "alice/app", baseTime.AddDate(0, -2, 0), newCommit("a", "Create the scheduler", "alice", ts))
	b := newHostedRepo(901, "bob/app", baseTime, newCommit("b", "Create the scheduler", "bob", ts))
	env := newTestEnv(t, newGitHubMock(a, b))
	ctx := env.ctx()

	gt.R1(env.uc.IndexRepository(ctx, "alice", "app")).NoError(t)
	gt.NoError(t, env.uc.HandleScanJob(ctx, &model.ScanJob{Owner: "bob", Repo: "app"}))
	gt.V(t, gt.R1(env.db.CountMatches(ctx)).NoError(t)).Equal(1)

	gt.Error(t, env.uc.HandleScanJob(ctx, &model.ScanJob{Owner: "nobody", Repo: "none"}))
}

func TestScanRepository(t *testing.T) {
	env := newTestEnv(t, newGitHubMock(newHostedRepo(910, "alice/app", baseTime,
		newCommit("a", "Create the scheduler", "alice", baseTime),
		newCommit("b", "Wire the scheduler", "alice", baseTime.Add(time.Minute)),
	)))

	result := gt.R1(env.uc.ScanRepository(env.ctx(), "alice", "app")).NoError(t)
	gt.V(t, result.Kind()).Equal(model.ScanResultRepo)
	gt.V(t, result.Repository.FullName).Equal("alice/app")
	gt.V(t, result.Commits).Equal(2)
	gt.A(t, result.Matches).Length(0)
}
