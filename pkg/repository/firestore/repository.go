package firestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (x *Database) UpsertRepository(ctx context.Context, repo *model.Repository) (*model.Repository, error) {
	if err := repo.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid repository")
	}

	stored := repo.Copy()
	err := x.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		stored = repo.Copy()

		var prev *model.Repository
		snap, err := tx.Get(x.repoDoc(repo.ID))
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to get repository", goerr.V("id", repo.ID))
		}
		if err == nil {
			var r model.Repository
			if err := snap.DataTo(&r); err != nil {
				return goerr.Wrap(err, "failed to decode repository", goerr.V("id", repo.ID))
			}
			prev = &r
		}

		query := x.client.Collection(collectionRepository).Where("full_name", "==", repo.FullName)
		sameName, err := decodeAll[model.Repository](tx.Documents(query))
		if err != nil {
			return err
		}
		for _, r := range sameName {
			if r.ID == repo.ID {
				continue
			}
			// the name was taken over by a different repository
			if prev == nil {
				prev = r
			}
			if err := tx.Delete(x.repoDoc(r.ID)); err != nil {
				return goerr.Wrap(err, "failed to delete renamed repository", goerr.V("id", r.ID))
			}
		}

		if prev != nil {
			stored.ScanStatus = prev.ScanStatus
			stored.SuspicionScore = prev.SuspicionScore
			stored.FirstCommitAt = prev.FirstCommitAt
			stored.StatusUpdatedAt = prev.StatusUpdatedAt
		}
		if stored.ScanStatus == "" {
			stored.ScanStatus = types.ScanStatusPending
		}

		return tx.Set(x.repoDoc(repo.ID), stored)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upsert repository", goerr.V("full_name", repo.FullName))
	}

	return stored, nil
}

func (x *Database) GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	snap, err := x.repoDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("id", id))
	}

	var repo model.Repository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository", goerr.V("id", id))
	}
	return &repo, nil
}

func (x *Database) GetRepositoryByFullName(ctx context.Context, fullName string) (*model.Repository, error) {
	query := x.client.Collection(collectionRepository).Where("full_name", "==", fullName).Limit(1)
	repos, err := decodeAll[model.Repository](query.Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query repository", goerr.V("full_name", fullName))
	}
	if len(repos) == 0 {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("full_name", fullName))
	}
	return repos[0], nil
}

func (x *Database) ListRepositoriesByOwner(ctx context.Context, owner string) ([]*model.Repository, error) {
	query := x.client.Collection(collectionRepository).Where("owner", "==", owner)
	repos, err := decodeAll[model.Repository](query.Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("owner", owner))
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].FullName < repos[j].FullName })
	return repos, nil
}

func (x *Database) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	repos, err := decodeAll[model.Repository](x.client.Collection(collectionRepository).Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].ID < repos[j].ID })
	return repos, nil
}

func (x *Database) UpdateScanStatus(ctx context.Context, fullName string, scanStatus types.ScanStatus, at time.Time) error {
	repo, err := x.GetRepositoryByFullName(ctx, fullName)
	if err != nil {
		return err
	}
	return x.updateRepo(ctx, repo.ID, []firestore.Update{
		{Path: "scan_status", Value: scanStatus},
		{Path: "status_updated_at", Value: at},
	})
}

func (x *Database) UpdateSuspicionScore(ctx context.Context, id types.RepoID, score int) error {
	return x.updateRepo(ctx, id, []firestore.Update{
		{Path: "suspicion_score", Value: score},
	})
}

func (x *Database) UpdateFirstCommitAt(ctx context.Context, id types.RepoID, at time.Time) error {
	return x.updateRepo(ctx, id, []firestore.Update{
		{Path: "first_commit_at", Value: at},
	})
}

func (x *Database) updateRepo(ctx context.Context, id types.RepoID, updates []firestore.Update) error {
	if _, err := x.repoDoc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to update repository", goerr.V("id", id))
	}
	return nil
}

func (x *Database) CountRepositories(ctx context.Context) (int, error) {
	return count(ctx, x.client.Collection(collectionRepository).Query)
}

func count(ctx context.Context, query firestore.Query) (int, error) {
	result, err := query.NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count documents")
	}

	v, ok := result["all"].(*firestorepb.Value)
	if !ok {
		return 0, goerr.New("unexpected count result", goerr.V("result", result))
	}
	return int(v.GetIntegerValue()), nil
}
