package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/gt"
)

func TestCompareRepositories(t *testing.T) {
	t.Run("single cross-author match", func(t *testing.T) {
		ts := baseTime.Add(-48 * time.Hour)
		original := newHostedRepo(200, "alice/auth", baseTime,
			newCommit("a1", "add login", "alice", ts),
		)
		copied := newHostedRepo(201, "mallory/auth", baseTime.AddDate(0, 0, 10),
			newCommit("m1", "add login", "other", ts),
		)
		env := newTestEnv(t, newGitHubMock(original, copied))
		ctx := env.ctx()

		gt.R1(env.uc.IndexRepository(ctx, "alice", "auth")).NoError(t)
		gt.R1(env.uc.IndexRepository(ctx, "mallory", "auth")).NoError(t)

		m := gt.R1(env.uc.CompareRepositories(ctx, 201, 200)).NoError(t)
		gt.True(t, m != nil)
		gt.V(t, m.ID).Equal(types.NewMatchID(200, 201))
		gt.V(t, m.Repo1ID).Equal(types.RepoID(200))
		gt.V(t, m.OriginalRepoID).Equal(types.RepoID(200))
		gt.V(t, m.SuspectRepoID).Equal(types.RepoID(201))
		gt.V(t, m.Statistics.ExactMatches).Equal(1)
		gt.V(t, m.Statistics.DifferentAuthorMatches).Equal(1)
		gt.True(t, m.ConfidenceScore >= 30)
		gt.V(t, m.Status).Equal(types.MatchStatusPending)
	})

	t.Run("no shared commit stores nothing", func(t *testing.T) {
		a := newHostedRepo(210, "alice/one", baseTime, newCommit("a1", "Write the parser", "alice", baseTime))
		b := newHostedRepo(211, "bob/two", baseTime, newCommit("b1", "Write the parser", "bob", baseTime.Add(time.Hour)))
		env := newTestEnv(t, newGitHubMock(a, b))
		ctx := env.ctx()

		gt.R1(env.uc.IndexRepository(ctx, "alice", "one")).NoError(t)
		gt.R1(env.uc.IndexRepository(ctx, "bob", "two")).NoError(t)

		m := gt.R1(env.uc.CompareRepositories(ctx, 210, 211)).NoError(t)
		gt.True(t, m == nil)
		gt.V(t, gt.R1(env.db.CountMatches(ctx)).NoError(t)).Equal(0)
	})

	t.Run("copied history predating creation is blacklisted", func(t *testing.T) {
		start := baseTime.AddDate(-1, 0, 0)
		originalHistory := sharedHistory("o", "alice", start, 100)
		copiedHistory := append(retag(originalHistory[:60], "c", "mallory"),
			sharedHistory("x", "mallory", baseTime.AddDate(0, 2, 0), 40)...)
		for i, c := range copiedHistory[60:] {
			c.Message = c.Message + " v2"
			c.NormalizedMessage = model.NormalizeMessage(c.Message)
			copiedHistory[60+i] = c
		}

		original := newHostedRepo(220, "alice/dashboard", start.Add(-time.Hour), originalHistory...)
		copied := newHostedRepo(221, "mallory/dashboard", baseTime.AddDate(0, 1, 0), copiedHistory...)
		env := newTestEnv(t, newGitHubMock(original, copied))
		ctx := env.ctx()

		gt.R1(env.uc.IndexRepository(ctx, "alice", "dashboard")).NoError(t)
		gt.R1(env.uc.IndexRepository(ctx, "mallory", "dashboard")).NoError(t)

		m := gt.R1(env.uc.CompareRepositories(ctx, 220, 221)).NoError(t)
		gt.V(t, m.Statistics.ExactMatches).Equal(60)
		gt.True(t, m.CommitsPredate)
		gt.True(t, m.ConfidenceScore >= 85)
		gt.V(t, m.ConfidenceLevel).Equal(types.ConfidenceVeryHigh)

		for _, id := range []types.RepoID{220, 221} {
			repo := gt.R1(env.db.GetRepository(ctx, id)).NoError(t)
			gt.V(t, repo.SuspicionScore).Equal(m.ConfidenceScore)
		}

		entry := gt.R1(env.db.GetBlacklistEntry(ctx, "mallory")).NoError(t)
		gt.V(t, entry.Status).Equal(types.BlacklistConfirmed)
		gt.V(t, entry.StolenRepos).Equal(1)
		gt.V(t, entry.TotalMatches).Equal(1)
		gt.V(t, entry.HighestConfidence).Equal(m.ConfidenceScore)

		_, err := env.db.GetBlacklistEntry(ctx, "alice")
		gt.Error(t, err).Is(repository.ErrNotFound)
	})

	t.Run("same owner is never blacklisted", func(t *testing.T) {
		history := sharedHistory("o", "alice", baseTime.AddDate(-1, 0, 0), 60)
		a := newHostedRepo(230, "alice/v1", baseTime.AddDate(-1, 0, 0).Add(-time.Hour), history...)
		b := newHostedRepo(231, "alice/v2", baseTime, retag(history, "n", "bob")...)
		env := newTestEnv(t, newGitHubMock(a, b))
		ctx := env.ctx()

		gt.R1(env.uc.IndexRepository(ctx, "alice", "v1")).NoError(t)
		gt.R1(env.uc.IndexRepository(ctx, "alice", "v2")).NoError(t)

		m := gt.R1(env.uc.CompareRepositories(ctx, 230, 231)).NoError(t)
		gt.True(t, m.ConfidenceScore >= model.BlacklistScore)

		_, err := env.db.GetBlacklistEntry(ctx, "alice")
		gt.Error(t, err).Is(repository.ErrNotFound)
	})

	t.Run("re-comparing keeps verification", func(t *testing.T) {
		history := sharedHistory("o", "alice", baseTime.AddDate(-1, 0, 0), 60)
		a := newHostedRepo(240, "alice/core", baseTime.AddDate(-1, 0, 0).Add(-time.Hour), history...)
		b := newHostedRepo(241, "eve/core", baseTime, retag(history, "e", "eve")...)
		env := newTestEnv(t, newGitHubMock(a, b))
		ctx := env.ctx()

		gt.R1(env.uc.IndexRepository(ctx, "alice", "core")).NoError(t)
		gt.R1(env.uc.IndexRepository(ctx, "eve", "core")).NoError(t)

		m := gt.R1(env.uc.CompareRepositories(ctx, 240, 241)).NoError(t)
		gt.True(t, gt.R1(env.uc.VerifyMatch(ctx, m.ID)).NoError(t))

		again := gt.R1(env.uc.CompareRepositories(ctx, 240, 241)).NoError(t)
		gt.V(t, again.Status).Equal(types.MatchStatusVerified)
		gt.V(t, again.CreatedAt).Equal(m.CreatedAt)
	})

	t.Run("comparing a repository with itself fails", func(t *testing.T) {
		env := newTestEnv(t, newGitHubMock())
		_, err := env.uc.CompareRepositories(env.ctx(), 1, 1)
		gt.Error(t, err).Is(types.ErrValidationFailed)
	})
}

func TestFindMatches(t *testing.T) {
	history := sharedHistory("o", "alice", baseTime.AddDate(-1, 0, 0), 10)
	a := newHostedRepo(300, "alice/tool", baseTime.AddDate(-1, 0, 0), history...)
	b := newHostedRepo(301, "bob/tool", baseTime, retag(history, "b", "bob")...)
	c := newHostedRepo(302, "carol/tool", baseTime, retag(history[:3], "c", "carol")...)
	d := newHostedRepo(303, "dave/other", baseTime, sharedHistory("d", "dave", baseTime, 5)...)
	for i, cm := range d.commits {
		cm.Message = "Unrelated change " + cm.SHA
		cm.NormalizedMessage = model.NormalizeMessage(cm.Message)
		d.commits[i] = cm
	}

	setup := func(t *testing.T) *testEnv {
		env := newTestEnv(t, newGitHubMock(a, b, c, d))
		ctx := env.ctx()
		for _, r := range []*hostedRepo{a, b, c, d} {
			gt.R1(env.uc.IndexRepository(ctx, r.meta.Owner, r.meta.Name)).NoError(t)
		}
		return env
	}

	t.Run("for one repository", func(t *testing.T) {
		env := setup(t)
		matches := gt.R1(env.uc.FindMatchesForRepo(env.ctx(), 300)).NoError(t)
		gt.A(t, matches).Length(2)
		for _, m := range matches {
			gt.True(t, m.Involves(300))
		}
	})

	t.Run("across all repositories compares each pair once", func(t *testing.T) {
		env := setup(t)
		n := gt.R1(env.uc.FindMatchesForAllRepos(env.ctx())).NoError(t)
		gt.V(t, n).Equal(3)
		gt.V(t, gt.R1(env.db.CountMatches(env.ctx())).NoError(t)).Equal(3)
	})

	t.Run("unknown repository", func(t *testing.T) {
		env := setup(t)
		_, err := env.uc.FindMatchesForRepo(env.ctx(), 999)
		gt.Error(t, err).Is(repository.ErrNotFound)
	})
}

func TestVerifyMatch(t *testing.T) {
	ts := baseTime.Add(-time.Hour)
	a := newHostedRepo(400, "alice/x", baseTime.AddDate(0, -1, 0), newCommit("a", "Create the scheduler", "alice", ts))
	b := newHostedRepo(401, "bob/x", baseTime, newCommit("b", "Create the scheduler", "alice", ts))
	env := newTestEnv(t, newGitHubMock(a, b))
	ctx := env.ctx()

	gt.R1(env.uc.IndexRepository(ctx, "alice", "x")).NoError(t)
	gt.R1(env.uc.IndexRepository(ctx, "bob", "x")).NoError(t)
	m := gt.R1(env.uc.CompareRepositories(ctx, 400, 401)).NoError(t)
	gt.True(t, m.ConfidenceScore < model.BlacklistScore)

	verified := gt.R1(env.uc.VerifyMatch(ctx, m.ID)).NoError(t)
	gt.False(t, verified)

	details := gt.R1(env.uc.GetMatchDetails(ctx, m.ID)).NoError(t)
	gt.V(t, details.Match.Status).Equal(types.MatchStatusPending)
	gt.V(t, details.Repo1.FullName).Equal("alice/x")
	gt.V(t, details.Repo2.FullName).Equal("bob/x")

	high := gt.R1(env.uc.ListHighConfidenceMatches(ctx, 10)).NoError(t)
	gt.A(t, high).Length(0)

	_, err := env.uc.VerifyMatch(ctx, "missing")
	gt.Error(t, err).Is(repository.ErrNotFound)
}
