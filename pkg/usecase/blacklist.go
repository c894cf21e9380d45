package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// refreshLimit bounds the entries checked by one account status refresh
const refreshLimit = 1000

func (x *UseCase) ListBlacklist(ctx context.Context, query model.BlacklistQuery) (*model.BlacklistPage, error) {
	page, err := x.clients.Database().ListBlacklistEntries(ctx, query.Normalize())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list blacklist")
	}
	return page, nil
}

// GetScammer returns the entry of username with every repository of the account
// involved in a match of at least SuspiciousScore, highest confidence first
func (x *UseCase) GetScammer(ctx context.Context, username string) (*model.Scammer, error) {
	db := x.clients.Database()

	entry, err := db.GetBlacklistEntry(ctx, username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get blacklist entry", goerr.V("username", username))
	}

	matches, err := db.ListMatchesByOwner(ctx, username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list matches", goerr.V("username", username))
	}

	scammer := &model.Scammer{Entry: entry, Repositories: []*model.StolenRepository{}}
	repos := map[types.RepoID]*model.Repository{}
	for _, m := range matches {
		if m.ConfidenceScore < model.SuspiciousScore {
			continue
		}
		for _, id := range []types.RepoID{m.Repo1ID, m.Repo2ID} {
			repo, ok := repos[id]
			if !ok {
				repo, err = db.GetRepository(ctx, id)
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				if err != nil {
					return nil, goerr.Wrap(err, "failed to get repository", goerr.V("id", id))
				}
				repos[id] = repo
			}
			if repo.Owner != username {
				continue
			}

			_, with := m.Counterpart(id)
			scammer.Repositories = append(scammer.Repositories, &model.StolenRepository{
				Repository:      repo,
				MatchedWith:     with,
				ConfidenceScore: m.ConfidenceScore,
				MatchID:         m.ID,
			})
		}
	}
	return scammer, nil
}

// BlacklistStats sums the counters of confirmed entries
func (x *UseCase) BlacklistStats(ctx context.Context) (*model.BlacklistStats, error) {
	stats := &model.BlacklistStats{}
	for page := 1; ; page++ {
		result, err := x.clients.Database().ListBlacklistEntries(ctx, model.BlacklistQuery{
			Page:   page,
			Limit:  refreshLimit,
			Status: types.BlacklistConfirmed,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list blacklist", goerr.V("page", page))
		}

		for _, e := range result.Entries {
			stats.Scammers++
			stats.StolenRepos += e.StolenRepos
			stats.TotalMatches += e.TotalMatches
		}
		if page*result.Limit >= result.Total || len(result.Entries) == 0 {
			break
		}
	}
	return stats, nil
}

// CheckAccountStatus asks the platform whether username still exists and stores
// the answer on its blacklist entry
func (x *UseCase) CheckAccountStatus(ctx context.Context, username string) (types.AccountStatus, error) {
	status := x.clients.GitHub().GetAccountStatus(ctx, username)
	if err := x.clients.Database().UpdateAccountStatus(ctx, username, status, now(ctx)); err != nil {
		return status, goerr.Wrap(err, "failed to update account status",
			goerr.V("username", username),
			goerr.V("status", status),
		)
	}
	return status, nil
}

// RefreshAccountStatuses checks the accounts of the first refreshLimit entries,
// pausing between checks
func (x *UseCase) RefreshAccountStatuses(ctx context.Context) (*model.AccountRefreshResult, error) {
	page, err := x.clients.Database().ListBlacklistEntries(ctx, model.BlacklistQuery{Page: 1, Limit: refreshLimit})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list blacklist")
	}

	result := &model.AccountRefreshResult{}
	for i, e := range page.Entries {
		if i > 0 && x.config.AccountCheckInterval > 0 {
			select {
			case <-ctx.Done():
				return result, goerr.Wrap(ctx.Err(), "account refresh interrupted")
			case <-time.After(x.config.AccountCheckInterval):
			}
		}

		status, err := x.CheckAccountStatus(ctx, e.Username)
		if err != nil {
			logging.From(ctx).Warn("Failed to check account status",
				slog.String("username", e.Username),
				slog.Any("error", err),
			)
			continue
		}

		result.Checked++
		switch status {
		case types.AccountEliminated:
			result.Eliminated++
		case types.AccountActive:
			result.Active++
		}
	}

	logging.From(ctx).Info("Refreshed account statuses",
		slog.Int("checked", result.Checked),
		slog.Int("eliminated", result.Eliminated),
		slog.Int("active", result.Active),
	)
	return result, nil
}
