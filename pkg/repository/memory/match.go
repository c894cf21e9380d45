package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (x *Database) UpsertMatch(ctx context.Context, m *model.Match) error {
	if m.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "match ID is empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	stored := m.Copy()
	if prev, ok := x.matches[m.ID]; ok {
		stored.CreatedAt = prev.CreatedAt
		stored.Status = prev.Status
	}
	x.matches[m.ID] = stored
	return nil
}

func (x *Database) GetMatch(ctx context.Context, id types.MatchID) (*model.Match, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	m, ok := x.matches[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "match not found", goerr.V("id", id))
	}
	return m.Copy(), nil
}

func (x *Database) ListMatchesByRepo(ctx context.Context, repoID types.RepoID) ([]*model.Match, error) {
	return x.filterMatches(func(m *model.Match) bool { return m.Involves(repoID) }, 0), nil
}

func (x *Database) ListMatchesByOwner(ctx context.Context, owner string) ([]*model.Match, error) {
	return x.filterMatches(func(m *model.Match) bool { return slices.Contains(m.Owners, owner) }, 0), nil
}

func (x *Database) ListMatches(ctx context.Context, minScore, limit int) ([]*model.Match, error) {
	return x.filterMatches(func(m *model.Match) bool { return m.ConfidenceScore >= minScore }, limit), nil
}

// filterMatches returns copies of matching records, highest confidence first
func (x *Database) filterMatches(pred func(*model.Match) bool, limit int) []*model.Match {
	x.mu.RLock()
	defer x.mu.RUnlock()

	matches := []*model.Match{}
	for _, m := range x.matches {
		if pred(m) {
			matches = append(matches, m.Copy())
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].ConfidenceScore != matches[j].ConfidenceScore {
			return matches[i].ConfidenceScore > matches[j].ConfidenceScore
		}
		return matches[i].ID < matches[j].ID
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func (x *Database) UpdateMatchStatus(ctx context.Context, id types.MatchID, status types.MatchStatus) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	m, ok := x.matches[id]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "match not found", goerr.V("id", id))
	}
	m.Status = status
	return nil
}

func (x *Database) CountMatches(ctx context.Context) (int, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.matches), nil
}
