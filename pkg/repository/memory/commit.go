package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
)

func (x *Database) ReplaceCommits(ctx context.Context, repoID types.RepoID, commits []*model.Commit) error {
	seen := make(map[string]struct{}, len(commits))
	stored := make([]*model.Commit, 0, len(commits))
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

	x.mu.Lock()
	defer x.mu.Unlock()
	x.commits[repoID] = stored
	return nil
}

func (x *Database) ListCommits(ctx context.Context, repoID types.RepoID) ([]*model.Commit, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	commits := make([]*model.Commit, 0, len(x.commits[repoID]))
	for _, c := range x.commits[repoID] {
		commits = append(commits, c.Copy())
	}
	sort.SliceStable(commits, func(i, j int) bool { return commits[i].Timestamp.After(commits[j].Timestamp) })
	return commits, nil
}

func (x *Database) FindMatchingCommits(ctx context.Context, normalized string, minute time.Time, excludeRepo types.RepoID) ([]*model.Commit, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	minute = model.TruncateToMinute(minute)
	var hits []*model.Commit
	for repoID, commits := range x.commits {
		if repoID == excludeRepo {
			continue
		}
		for _, c := range commits {
			if c.NormalizedMessage == normalized && model.TruncateToMinute(c.Timestamp).Equal(minute) {
				hits = append(hits, c.Copy())
			}
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

func (x *Database) FindDuplicateCommitGroups(ctx context.Context) ([]*model.DuplicateGroup, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var all []*model.Commit
	for _, commits := range x.commits {
		all = append(all, commits...)
	}
	return model.GroupDuplicateCommits(all), nil
}

func (x *Database) CountCommits(ctx context.Context) (int, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	n := 0
	for _, commits := range x.commits {
		n += len(commits)
	}
	return n, nil
}
