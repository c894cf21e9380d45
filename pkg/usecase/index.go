package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// IndexRepository fetches metadata and commit history of owner/repo and replaces
// the stored commit set. The scan status ends as completed, or failed when
// fetching or storing failed.
func (x *UseCase) IndexRepository(ctx context.Context, owner, repo string) (*model.Repository, error) {
	return x.indexRepository(ctx, owner, repo, types.ScanStatusIndexing, types.ScanStatusCompleted)
}

// indexRepository indexes owner/repo holding the working status while fetching and
// setting final once the commits are stored
func (x *UseCase) indexRepository(ctx context.Context, owner, repo string, working, final types.ScanStatus) (*model.Repository, error) {
	logger := logging.From(ctx).With(slog.String("repo", owner+"/"+repo))
	db := x.clients.Database()

	ghRepo, err := x.clients.GitHub().GetRepository(ctx, owner, repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("owner", owner), goerr.V("repo", repo))
	}

	stored, err := db.UpsertRepository(ctx, ghRepo.ToRepository())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store repository", goerr.V("full_name", ghRepo.FullName))
	}
	if err := db.UpdateScanStatus(ctx, stored.FullName, working, now(ctx)); err != nil {
		return nil, goerr.Wrap(err, "failed to update scan status", goerr.V("full_name", stored.FullName))
	}

	commits, err := x.clients.GitHub().GetCommits(ctx, owner, repo, commitFetchLimit)
	if err != nil {
		x.markFailed(ctx, stored.FullName)
		return nil, goerr.Wrap(err, "failed to get commits", goerr.V("full_name", stored.FullName))
	}

	if err := x.storeCommits(ctx, stored, commits, final); err != nil {
		x.markFailed(ctx, stored.FullName)
		return nil, err
	}

	logger.Info("Indexed repository", slog.Int("commits", len(commits)))
	return db.GetRepository(ctx, stored.ID)
}

// IndexFromURL indexes the repository identified by a hosting URL
func (x *UseCase) IndexFromURL(ctx context.Context, url string) (*model.Repository, error) {
	owner, repo, err := model.ParseRepoURL(url)
	if err != nil {
		return nil, err
	}
	return x.IndexRepository(ctx, owner, repo)
}

// IndexLocalRepository stores the history of a local clone under its origin's
// owner/repo. Metadata comes from the hosting API when available.
func (x *UseCase) IndexLocalRepository(ctx context.Context, dir string) (*model.Repository, error) {
	history, err := x.clients.LocalGit().ReadHistory(ctx, dir, commitFetchLimit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read local history", goerr.V("dir", dir))
	}

	var repo *model.Repository
	if gh := x.clients.GitHub(); gh != nil {
		ghRepo, err := gh.GetRepository(ctx, history.Owner, history.Name)
		if err != nil {
			logging.From(ctx).Warn("Failed to get repository metadata, using local history only",
				slog.String("owner", history.Owner),
				slog.String("repo", history.Name),
				slog.Any("error", err),
			)
		} else {
			repo = ghRepo.ToRepository()
		}
	}
	if repo == nil {
		existing, err := x.clients.Database().GetRepositoryByFullName(ctx, history.Owner+"/"+history.Name)
		if err != nil {
			return nil, goerr.Wrap(err, "repository metadata is unavailable",
				goerr.V("owner", history.Owner),
				goerr.V("repo", history.Name),
			)
		}
		repo = existing
	}

	stored, err := x.clients.Database().UpsertRepository(ctx, repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store repository", goerr.V("full_name", repo.FullName))
	}
	if err := x.storeCommits(ctx, stored, history.Commits, types.ScanStatusCompleted); err != nil {
		x.markFailed(ctx, stored.FullName)
		return nil, err
	}

	logging.From(ctx).Info("Indexed local repository",
		slog.String("repo", stored.FullName),
		slog.String("dir", dir),
		slog.Int("commits", len(history.Commits)),
	)
	return x.clients.Database().GetRepository(ctx, stored.ID)
}

// storeCommits replaces the commit set of repo, records the first commit date
// and moves the repository to status. An empty fetch keeps the stored commits.
func (x *UseCase) storeCommits(ctx context.Context, repo *model.Repository, commits []*model.Commit, status types.ScanStatus) error {
	db := x.clients.Database()

	if len(commits) == 0 {
		logging.From(ctx).Info("No commits found, keeping stored commits", slog.String("repo", repo.FullName))
		if err := db.UpdateScanStatus(ctx, repo.FullName, status, now(ctx)); err != nil {
			return goerr.Wrap(err, "failed to update scan status", goerr.V("full_name", repo.FullName))
		}
		return nil
	}

	first := commits[0].Timestamp
	for _, c := range commits[1:] {
		if c.Timestamp.Before(first) {
			first = c.Timestamp
		}
	}
	if err := db.UpdateFirstCommitAt(ctx, repo.ID, first); err != nil {
		return goerr.Wrap(err, "failed to update first commit date", goerr.V("full_name", repo.FullName))
	}

	if err := db.ReplaceCommits(ctx, repo.ID, commits); err != nil {
		return goerr.Wrap(err, "failed to replace commits",
			goerr.V("full_name", repo.FullName),
			goerr.V("count", len(commits)),
		)
	}

	if err := db.UpdateScanStatus(ctx, repo.FullName, status, now(ctx)); err != nil {
		return goerr.Wrap(err, "failed to update scan status", goerr.V("full_name", repo.FullName))
	}
	return nil
}

// markFailed records failure even when ctx has already expired
func (x *UseCase) markFailed(ctx context.Context, fullName string) {
	ctx = context.WithoutCancel(ctx)
	if err := x.clients.Database().UpdateScanStatus(ctx, fullName, types.ScanStatusFailed, now(ctx)); err != nil {
		logging.From(ctx).Warn("Failed to mark repository failed",
			slog.String("repo", fullName),
			slog.Any("error", err),
		)
	}
}
