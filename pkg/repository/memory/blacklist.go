package memory

import (
	"context"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (x *Database) UpsertBlacklistEntry(ctx context.Context, entry *model.BlacklistEntry) error {
	if entry.Username == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "username is empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.blacklist[entry.Username]; ok {
		return nil
	}
	x.blacklist[entry.Username] = entry.Copy()
	return nil
}

func (x *Database) GetBlacklistEntry(ctx context.Context, username string) (*model.BlacklistEntry, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	entry, ok := x.blacklist[username]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "blacklist entry not found", goerr.V("username", username))
	}
	return entry.Copy(), nil
}

func (x *Database) ListBlacklistEntries(ctx context.Context, query model.BlacklistQuery) (*model.BlacklistPage, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	entries := make([]*model.BlacklistEntry, 0, len(x.blacklist))
	for _, e := range x.blacklist {
		entries = append(entries, e.Copy())
	}
	return query.Paginate(entries), nil
}

func (x *Database) UpdateBlacklistStats(ctx context.Context, username string, agg model.BlacklistAggregate, at time.Time) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	entry, ok := x.blacklist[username]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "blacklist entry not found", goerr.V("username", username))
	}
	entry.StolenRepos = agg.StolenRepos
	entry.TotalMatches = agg.TotalMatches
	entry.HighestConfidence = agg.HighestConfidence
	entry.UpdatedAt = at
	return nil
}

func (x *Database) UpdateAccountStatus(ctx context.Context, username string, status types.AccountStatus, at time.Time) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	entry, ok := x.blacklist[username]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "blacklist entry not found", goerr.V("username", username))
	}
	entry.AccountStatus = status
	entry.AccountCheckedAt = at
	entry.UpdatedAt = at
	return nil
}
