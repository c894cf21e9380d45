package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/copycat/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestFindMatchesAcrossGitHub(t *testing.T) {
	start := baseTime.AddDate(-1, 0, 0)
	history := sharedHistory("s", "alice", start, 40)
	seed := newHostedRepo(500, "alice/widget", start.Add(-time.Hour), history...)
	thief := newHostedRepo(501, "thief/widget", baseTime, retag(history, "t", "thief")...)
	slow := newHostedRepo(502, "slow/widget", baseTime)
	weak := newHostedRepo(503, "weak/widget", baseTime)
	fork := newHostedRepo(504, "alice/widget-fork", baseTime)

	gh := newGitHubMock(seed, thief, slow, weak, fork)
	gh.SearchRepositoriesFunc = func(ctx context.Context, query string, limit int) ([]*model.GitHubRepository, error) {
		return []*model.GitHubRepository{fork.meta, weak.meta}, nil
	}
	gh.FindReposWithMatchingCommitsFunc = func(ctx context.Context, commits []*model.Commit, excludeOwner string, limit int) ([]*model.GitHubRepository, error) {
		return []*model.GitHubRepository{slow.meta, thief.meta, weak.meta}, nil
	}
	gh.CheckRepoForMatchingCommitsFunc = func(ctx context.Context, owner, name string, targets []*model.Commit, minMatches int) *model.CommitCheckResult {
		switch owner {
		case "slow":
			<-ctx.Done()
			return &model.CommitCheckResult{}
		case "thief":
			return &model.CommitCheckResult{Matches: len(targets), Qualified: true}
		default:
			return &model.CommitCheckResult{Matches: 1}
		}
	}

	env := newTestEnv(t, gh)
	env.configure(func(cfg *usecase.ScanConfig) {
		cfg.CheckTimeout = 50 * time.Millisecond
	})
	ctx := env.ctx()

	found := gt.R1(env.uc.FindMatchesAcrossGitHub(ctx, "alice", "widget")).NoError(t)
	gt.A(t, found).Length(1)
	gt.V(t, found[0].FullName).Equal("thief/widget")
	gt.V(t, found[0].CheckedMatches).Equal(40)
	gt.V(t, found[0].MatchingCommits).Equal(40)
	gt.True(t, found[0].ConfidenceScore >= model.SuspiciousScore)

	// the seed was indexed on demand
	gt.R1(env.db.GetRepositoryByFullName(ctx, "alice/widget")).NoError(t)

	for _, name := range []string{"slow/widget", "weak/widget", "alice/widget-fork"} {
		_, err := env.db.GetRepositoryByFullName(ctx, name)
		gt.Error(t, err).Is(repository.ErrNotFound)
	}

	for _, call := range gh.CheckRepoForMatchingCommitsCalls() {
		gt.True(t, call.Owner != "alice")
	}
}

func TestFindMatchesAcrossGitHubWithoutCommits(t *testing.T) {
	gh := newGitHubMock(newHostedRepo(510, "alice/empty", baseTime))
	gh.FindReposWithMatchingCommitsFunc = nil
	env := newTestEnv(t, gh)

	found := gt.R1(env.uc.FindMatchesAcrossGitHub(env.ctx(), "alice", "empty")).NoError(t)
	gt.A(t, found).Length(0)
}

func TestNameSearchTerms(t *testing.T) {
	gt.V(t, usecase.NameSearchTermsForTest("react-admin_dashboard")).Equal([]string{"react admin dashboard", "react admin", "react"})
	gt.V(t, usecase.NameSearchTermsForTest("go-x")).Equal([]string{"go"})
	gt.V(t, usecase.NameSearchTermsForTest("Awesome-List")).Equal([]string{"awesome list", "awesome"})
	gt.V(t, len(usecase.NameSearchTermsForTest("a-b"))).Equal(0)
}

func TestSeedCommits(t *testing.T) {
	commits := sharedHistory("c", "alice", baseTime, 1200)
	seeds := usecase.SeedCommitsForTest(commits)
	gt.A(t, seeds).Length(1000)
	gt.V(t, seeds[0].SHA).Equal("c1199")
}
