package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/infra"
	"github.com/m-mizutani/copycat/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestDiscoverPopular(t *testing.T) {
	done := newHostedRepo(1000, "done/app", baseTime)
	fresh := newHostedRepo(1001, "fresh/app", baseTime)
	other := newHostedRepo(1002, "other/lib", baseTime)

	gh := newGitHubMock(done, fresh, other)
	gh.SearchRepositoriesFunc = func(ctx context.Context, query string, limit int) ([]*model.GitHubRepository, error) {
		switch query {
		case "language:go stars:>=1000":
			return []*model.GitHubRepository{done.meta, fresh.meta}, nil
		case "language:rust stars:>=1000":
			return []*model.GitHubRepository{fresh.meta, other.meta}, nil
		}
		return nil, nil
	}
	queue := newJobQueueMock()
	env := newTestEnv(t, gh, infra.WithJobQueue(queue))
	ctx := env.ctx()

	gt.R1(env.uc.IndexRepository(ctx, "done", "app")).NoError(t)

	n := gt.R1(env.uc.DiscoverPopular(ctx, []string{"go", "rust"}, 1000)).NoError(t)
	gt.V(t, n).Equal(2)

	calls := queue.EnqueueCalls()
	gt.A(t, calls).Length(3)
	for _, c := range calls {
		gt.V(t, c.Job.Priority).Equal(10)
		gt.True(t, c.Job.Owner != "done")
	}
}

func TestDiscoverTrending(t *testing.T) {
	repo := newHostedRepo(1010, "new/app", baseTime)
	gh := newGitHubMock(repo)
	gh.SearchRepositoriesFunc = func(ctx context.Context, query string, limit int) ([]*model.GitHubRepository, error) {
		return []*model.GitHubRepository{repo.meta}, nil
	}
	queue := newJobQueueMock()
	env := newTestEnv(t, gh, infra.WithJobQueue(queue))

	n := gt.R1(env.uc.DiscoverTrending(env.ctx(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))).NoError(t)
	gt.V(t, n).Equal(1)
	gt.V(t, gh.SearchRepositoriesCalls()[0].Query).Equal("created:>2024-01-01")
	gt.V(t, queue.EnqueueCalls()[0].Job.Priority).Equal(20)
}

func TestDiscoverSimilarNames(t *testing.T) {
	seed := newHostedRepo(1020, "alice/react-admin-panel", baseTime)
	lookalike := newHostedRepo(1021, "bob/react-admin-panel-pro", baseTime)
	gh := newGitHubMock(seed, lookalike)
	gh.SearchRepositoriesFunc = func(ctx context.Context, query string, limit int) ([]*model.GitHubRepository, error) {
		return []*model.GitHubRepository{seed.meta, lookalike.meta}, nil
	}
	queue := newJobQueueMock()
	env := newTestEnv(t, gh, infra.WithJobQueue(queue))

	n := gt.R1(env.uc.DiscoverSimilarNames(env.ctx(), "alice/react-admin-panel")).NoError(t)
	gt.V(t, n).Equal(1)
	gt.V(t, gh.SearchRepositoriesCalls()[0].Query).Equal("alice react admin")
	gt.V(t, queue.EnqueueCalls()[0].Job.Owner).Equal("bob")
	gt.V(t, queue.EnqueueCalls()[0].Job.Priority).Equal(15)

	_, err := env.uc.DiscoverSimilarNames(env.ctx(), "a/b")
	gt.Error(t, err).Is(types.ErrValidationFailed)
}

func TestSimilarNameKeywords(t *testing.T) {
	gt.V(t, usecase.SimilarNameKeywordsForTest("facebook/react-native_web-extra")).Equal([]string{"facebook", "react", "native"})
	gt.V(t, usecase.SimilarNameKeywordsForTest("go/ui-kit")).Equal([]string{"kit"})
}
