package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/mock"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/infra"
	"github.com/m-mizutani/gt"
)

func TestIndexRepository(t *testing.T) {
	t.Run("stores commits and marks completed", func(t *testing.T) {
		hosted := newHostedRepo(100, "alice/app", baseTime,
			newCommit("a1", "Initial commit", "alice", baseTime.Add(time.Hour)),
			newCommit("a2", "Add login page\n\nlong body", "alice", baseTime.Add(2*time.Hour)),
		)
		env := newTestEnv(t, newGitHubMock(hosted))
		ctx := env.ctx()

		repo := gt.R1(env.uc.IndexRepository(ctx, "alice", "app")).NoError(t)
		gt.V(t, repo.ScanStatus).Equal(types.ScanStatusCompleted)
		gt.V(t, repo.FirstCommitAt).Equal(baseTime.Add(time.Hour))

		commits := gt.R1(env.db.ListCommits(ctx, repo.ID)).NoError(t)
		gt.A(t, commits).Length(2)
		for _, c := range commits {
			if c.SHA == "a2" {
				gt.V(t, c.Message).Equal("Add login page")
				gt.V(t, c.NormalizedMessage).Equal("login page")
			}
		}
	})

	t.Run("re-indexing removes commits no longer present", func(t *testing.T) {
		hosted := newHostedRepo(101, "alice/lib", baseTime,
			newCommit("old", "Remove deprecated API", "alice", baseTime.Add(time.Hour)),
			newCommit("keep", "Write documentation", "alice", baseTime.Add(2*time.Hour)),
		)
		env := newTestEnv(t, newGitHubMock(hosted))
		ctx := env.ctx()

		gt.R1(env.uc.IndexRepository(ctx, "alice", "lib")).NoError(t)
		hosted.commits = hosted.commits[1:]
		repo := gt.R1(env.uc.IndexRepository(ctx, "alice", "lib")).NoError(t)

		commits := gt.R1(env.db.ListCommits(ctx, repo.ID)).NoError(t)
		gt.A(t, commits).Length(1)
		gt.V(t, commits[0].SHA).Equal("keep")
	})

	t.Run("empty fetch keeps stored commits", func(t *testing.T) {
		hosted := newHostedRepo(104, "alice/tool", baseTime,
			newCommit("t1", "Add command parser", "alice", baseTime.Add(time.Hour)),
			newCommit("t2", "Handle missing flags", "alice", baseTime.Add(2*time.Hour)),
		)
		env := newTestEnv(t, newGitHubMock(hosted))
		ctx := env.ctx()

		gt.R1(env.uc.IndexRepository(ctx, "alice", "tool")).NoError(t)
		hosted.commits = nil
		repo := gt.R1(env.uc.IndexRepository(ctx, "alice", "tool")).NoError(t)
		gt.V(t, repo.ScanStatus).Equal(types.ScanStatusCompleted)

		commits := gt.R1(env.db.ListCommits(ctx, repo.ID)).NoError(t)
		gt.A(t, commits).Length(2)
	})

	t.Run("failure while fetching commits marks failed", func(t *testing.T) {
		gh := newGitHubMock(newHostedRepo(102, "alice/broken", baseTime))
		gh.GetCommitsFunc = func(ctx context.Context, owner, name string, limit int) ([]*model.Commit, error) {
			return nil, errors.New("boom")
		}
		env := newTestEnv(t, gh)
		ctx := env.ctx()

		_, err := env.uc.IndexRepository(ctx, "alice", "broken")
		gt.Error(t, err)

		repo := gt.R1(env.db.GetRepositoryByFullName(ctx, "alice/broken")).NoError(t)
		gt.V(t, repo.ScanStatus).Equal(types.ScanStatusFailed)
	})

	t.Run("repository without commits is completed", func(t *testing.T) {
		env := newTestEnv(t, newGitHubMock(newHostedRepo(103, "alice/empty", baseTime)))
		repo := gt.R1(env.uc.IndexRepository(env.ctx(), "alice", "empty")).NoError(t)
		gt.V(t, repo.ScanStatus).Equal(types.ScanStatusCompleted)
		gt.True(t, repo.FirstCommitAt.IsZero())
	})
}

func TestIndexFromURL(t *testing.T) {
	env := newTestEnv(t, newGitHubMock(newHostedRepo(110, "alice/app", baseTime,
		newCommit("a1", "Initial commit", "alice", baseTime),
	)))
	ctx := env.ctx()

	repo := gt.R1(env.uc.IndexFromURL(ctx, "https://github.com/alice/app.git")).NoError(t)
	gt.V(t, repo.FullName).Equal("alice/app")

	_, err := env.uc.IndexFromURL(ctx, "https://example.com/not/a/repo")
	gt.Error(t, err).Is(types.ErrInvalidURL)
}

func TestIndexLocalRepository(t *testing.T) {
	local := &mock.LocalGitMock{
		ReadHistoryFunc: func(ctx context.Context, dir string, limit int) (*model.LocalHistory, error) {
			return &model.LocalHistory{
				Owner: "alice",
				Name:  "app",
				Commits: []*model.Commit{
					newCommit("l1", "Initial commit", "alice", baseTime),
					newCommit("l2", "Add settings screen", "alice", baseTime.Add(time.Hour)),
				},
			}, nil
		},
	}
	gh := newGitHubMock(newHostedRepo(120, "alice/app", baseTime))
	gh.GetCommitsFunc = nil
	env := newTestEnv(t, gh, infra.WithLocalGit(local))
	ctx := env.ctx()

	repo := gt.R1(env.uc.IndexLocalRepository(ctx, "/tmp/app")).NoError(t)
	gt.V(t, repo.ID).Equal(types.RepoID(120))
	gt.V(t, repo.ScanStatus).Equal(types.ScanStatusCompleted)
	gt.A(t, gh.GetCommitsCalls()).Length(0)

	commits := gt.R1(env.db.ListCommits(ctx, repo.ID)).NoError(t)
	gt.A(t, commits).Length(2)
	gt.A(t, local.ReadHistoryCalls()).Length(1)
	gt.V(t, local.ReadHistoryCalls()[0].Dir).Equal("/tmp/app")
}
