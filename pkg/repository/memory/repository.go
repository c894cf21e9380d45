package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (x *Database) UpsertRepository(ctx context.Context, repo *model.Repository) (*model.Repository, error) {
	if err := repo.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid repository")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	stored := repo.Copy()
	prev, ok := x.repos[repo.ID]
	if id, found := x.byName[repo.FullName]; found {
		prev, ok = x.repos[id], true
		if id != repo.ID {
			// the name was taken over by a different repository
			delete(x.repos, id)
		}
	}
	if ok {
		stored.ScanStatus = prev.ScanStatus
		stored.SuspicionScore = prev.SuspicionScore
		stored.FirstCommitAt = prev.FirstCommitAt
		stored.StatusUpdatedAt = prev.StatusUpdatedAt
		if prev.FullName != stored.FullName && x.byName[prev.FullName] == prev.ID {
			delete(x.byName, prev.FullName)
		}
	}
	if stored.ScanStatus == "" {
		stored.ScanStatus = types.ScanStatusPending
	}

	x.repos[stored.ID] = stored
	x.byName[stored.FullName] = stored.ID

	return stored.Copy(), nil
}

func (x *Database) GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	repo, ok := x.repos[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("id", id))
	}
	return repo.Copy(), nil
}

func (x *Database) GetRepositoryByFullName(ctx context.Context, fullName string) (*model.Repository, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	id, ok := x.byName[fullName]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("full_name", fullName))
	}
	return x.repos[id].Copy(), nil
}

func (x *Database) ListRepositoriesByOwner(ctx context.Context, owner string) ([]*model.Repository, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var repos []*model.Repository
	for _, repo := range x.repos {
		if repo.Owner == owner {
			repos = append(repos, repo.Copy())
		}
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].FullName < repos[j].FullName })
	return repos, nil
}

func (x *Database) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	repos := make([]*model.Repository, 0, len(x.repos))
	for _, repo := range x.repos {
		repos = append(repos, repo.Copy())
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].ID < repos[j].ID })
	return repos, nil
}

func (x *Database) UpdateScanStatus(ctx context.Context, fullName string, status types.ScanStatus, at time.Time) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	id, ok := x.byName[fullName]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("full_name", fullName))
	}
	x.repos[id].ScanStatus = status
	x.repos[id].StatusUpdatedAt = at
	return nil
}

func (x *Database) UpdateSuspicionScore(ctx context.Context, id types.RepoID, score int) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	repo, ok := x.repos[id]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("id", id))
	}
	repo.SuspicionScore = score
	return nil
}

func (x *Database) UpdateFirstCommitAt(ctx context.Context, id types.RepoID, at time.Time) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	repo, ok := x.repos[id]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("id", id))
	}
	repo.FirstCommitAt = at
	return nil
}

func (x *Database) CountRepositories(ctx context.Context) (int, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.repos), nil
}
