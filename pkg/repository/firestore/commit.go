package firestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ReplaceCommits writes the new set first and then removes stale documents, in
// batches of batchSize. Readers may briefly observe the union of both sets.
func (x *Database) ReplaceCommits(ctx context.Context, repoID types.RepoID, commits []*model.Commit) error {
	coll := x.repoDoc(repoID).Collection(collectionCommit)

	existing, err := decodeAll[model.Commit](coll.Documents(ctx))
	if err != nil {
		return goerr.Wrap(err, "failed to list commits", goerr.V("repo_id", repoID))
	}

	seen := make(map[string]struct{}, len(commits))
	var stored []*model.Commit
	for _, c := range commits {
		if _, ok := seen[c.SHA]; ok {
			continue
		}
		seen[c.SHA] = struct{}{}

		cp := c.Copy()
		cp.RepoID = repoID
		cp.NormalizedMessage = c.MatchKey()
		stored = append(stored, cp)
	}

	var stale []string
	for _, c := range existing {
		if _, ok := seen[c.SHA]; !ok {
			stale = append(stale, c.SHA)
		}
	}

	if err := x.commitBatches(ctx, len(stored), func(batch *firestore.WriteBatch, start, end int) {
		for _, c := range stored[start:end] {
			batch.Set(coll.Doc(c.SHA), c)
		}
	}); err != nil {
		return goerr.Wrap(err, "failed to write commits", goerr.V("repo_id", repoID))
	}

	if err := x.commitBatches(ctx, len(stale), func(batch *firestore.WriteBatch, start, end int) {
		for _, sha := range stale[start:end] {
			batch.Delete(coll.Doc(sha))
		}
	}); err != nil {
		return goerr.Wrap(err, "failed to delete stale commits", goerr.V("repo_id", repoID))
	}

	return nil
}

func (x *Database) ListCommits(ctx context.Context, repoID types.RepoID) ([]*model.Commit, error) {
	commits, err := decodeAll[model.Commit](x.repoDoc(repoID).Collection(collectionCommit).Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", goerr.V("repo_id", repoID))
	}
	if commits == nil {
		commits = []*model.Commit{}
	}
	sort.SliceStable(commits, func(i, j int) bool { return commits[i].Timestamp.After(commits[j].Timestamp) })
	return commits, nil
}

func (x *Database) FindMatchingCommits(ctx context.Context, normalized string, minute time.Time, excludeRepo types.RepoID) ([]*model.Commit, error) {
	query := x.client.CollectionGroup(collectionCommit).Where("normalized_message", "==", normalized)
	candidates, err := decodeAll[model.Commit](query.Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query commits", goerr.V("normalized", normalized))
	}

	minute = model.TruncateToMinute(minute)
	var hits []*model.Commit
	for _, c := range candidates {
		if c.RepoID != excludeRepo && model.TruncateToMinute(c.Timestamp).Equal(minute) {
			hits = append(hits, c)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].RepoID != hits[j].RepoID {
			return hits[i].RepoID < hits[j].RepoID
		}
		return hits[i].SHA < hits[j].SHA
	})
	return hits, nil
}

// FindDuplicateCommitGroups scans every commit document
func (x *Database) FindDuplicateCommitGroups(ctx context.Context) ([]*model.DuplicateGroup, error) {
	commits, err := decodeAll[model.Commit](x.client.CollectionGroup(collectionCommit).Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan commits")
	}
	return model.GroupDuplicateCommits(commits), nil
}

func (x *Database) CountCommits(ctx context.Context) (int, error) {
	return count(ctx, x.client.CollectionGroup(collectionCommit).Query)
}
