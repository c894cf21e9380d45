package firestore

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (x *Database) matchDoc(id types.MatchID) *firestore.DocumentRef {
	return x.client.Collection(collectionMatch).Doc(string(id))
}

func (x *Database) UpsertMatch(ctx context.Context, m *model.Match) error {
	if m.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "match ID is empty")
	}

	err := x.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		stored := m.Copy()

		snap, err := tx.Get(x.matchDoc(m.ID))
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to get match")
		}
		if err == nil {
			var prev model.Match
			if err := snap.DataTo(&prev); err != nil {
				return goerr.Wrap(err, "failed to decode match")
			}
			stored.CreatedAt = prev.CreatedAt
			stored.Status = prev.Status
		}

		return tx.Set(x.matchDoc(m.ID), stored)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to upsert match", goerr.V("id", m.ID))
	}
	return nil
}

func (x *Database) GetMatch(ctx context.Context, id types.MatchID) (*model.Match, error) {
	snap, err := x.matchDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "match not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get match", goerr.V("id", id))
	}

	var m model.Match
	if err := snap.DataTo(&m); err != nil {
		return nil, goerr.Wrap(err, "failed to decode match", goerr.V("id", id))
	}
	return &m, nil
}

func (x *Database) ListMatchesByRepo(ctx context.Context, repoID types.RepoID) ([]*model.Match, error) {
	coll := x.client.Collection(collectionMatch)

	var matches []*model.Match
	for _, field := range []string{"repo1_id", "repo2_id"} {
		found, err := decodeAll[model.Match](coll.Where(field, "==", repoID).Documents(ctx))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list matches", goerr.V("repo_id", repoID))
		}
		matches = append(matches, found...)
	}
	sortMatches(matches)
	return matches, nil
}

func (x *Database) ListMatchesByOwner(ctx context.Context, owner string) ([]*model.Match, error) {
	query := x.client.Collection(collectionMatch).Where("owners", "array-contains", owner)
	matches, err := decodeAll[model.Match](query.Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list matches", goerr.V("owner", owner))
	}
	sortMatches(matches)
	return matches, nil
}

func (x *Database) ListMatches(ctx context.Context, minScore, limit int) ([]*model.Match, error) {
	query := x.client.Collection(collectionMatch).
		Where("confidence_score", ">=", minScore).
		OrderBy("confidence_score", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	matches, err := decodeAll[model.Match](query.Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list matches", goerr.V("min_score", minScore))
	}
	sortMatches(matches)
	return matches, nil
}

func sortMatches(matches []*model.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].ConfidenceScore != matches[j].ConfidenceScore {
			return matches[i].ConfidenceScore > matches[j].ConfidenceScore
		}
		return matches[i].ID < matches[j].ID
	})
}

func (x *Database) UpdateMatchStatus(ctx context.Context, id types.MatchID, matchStatus types.MatchStatus) error {
	_, err := x.matchDoc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: matchStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "match not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to update match status", goerr.V("id", id))
	}
	return nil
}

func (x *Database) CountMatches(ctx context.Context) (int, error) {
	return count(ctx, x.client.Collection(collectionMatch).Query)
}
