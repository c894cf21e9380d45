package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/copycat/pkg/utils/metrics"
	"github.com/m-mizutani/goerr/v2"
)

// orient returns the earlier-created repository first. Ties go to the lower ID.
func orient(a, b *model.Repository) (original, suspect *model.Repository) {
	switch {
	case a.CreatedAt.Before(b.CreatedAt):
		return a, b
	case b.CreatedAt.Before(a.CreatedAt):
		return b, a
	case a.ID <= b.ID:
		return a, b
	default:
		return b, a
	}
}

// CompareRepositories scores the commit histories of two stored repositories.
// It returns nil when the pair shares no exact match; nothing is stored then.
func (x *UseCase) CompareRepositories(ctx context.Context, id1, id2 types.RepoID) (*model.Match, error) {
	if id1 == id2 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "cannot compare a repository with itself", goerr.V("id", id1))
	}
	db := x.clients.Database()

	repo1, err := db.GetRepository(ctx, id1)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("id", id1))
	}
	repo2, err := db.GetRepository(ctx, id2)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("id", id2))
	}

	original, suspect := orient(repo1, repo2)
	commits1, err := db.ListCommits(ctx, original.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", goerr.V("id", original.ID))
	}
	commits2, err := db.ListCommits(ctx, suspect.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", goerr.V("id", suspect.ID))
	}

	stats := model.CalculateMatchStatistics(original, suspect, commits1, commits2)
	if stats.ExactMatches == 0 {
		return nil, nil
	}

	match := model.NewMatch(original, suspect, stats, now(ctx))
	if err := db.UpsertMatch(ctx, match); err != nil {
		return nil, goerr.Wrap(err, "failed to store match", goerr.V("id", match.ID))
	}
	metrics.MatchesRecorded.WithLabelValues(string(match.ConfidenceLevel)).Inc()

	logging.From(ctx).Info("Match found",
		slog.String("original", original.FullName),
		slog.String("suspect", suspect.FullName),
		slog.Int("exact_matches", stats.ExactMatches),
		slog.Int("score", stats.ConfidenceScore),
		slog.String("level", string(stats.ConfidenceLevel)),
	)

	if stats.ConfidenceScore >= model.SuspiciousScore {
		for _, r := range []*model.Repository{original, suspect} {
			if r.SuspicionScore >= stats.ConfidenceScore {
				continue
			}
			if err := db.UpdateSuspicionScore(ctx, r.ID, stats.ConfidenceScore); err != nil {
				return nil, goerr.Wrap(err, "failed to update suspicion score", goerr.V("id", r.ID))
			}
		}
	}

	if stats.ConfidenceScore >= model.BlacklistScore && suspect.Owner != original.Owner {
		if err := x.registerBlacklist(ctx, suspect.Owner); err != nil {
			return nil, err
		}
	}

	return db.GetMatch(ctx, match.ID)
}

// registerBlacklist creates the entry of owner when missing and recomputes its
// counters from every match touching the owner
func (x *UseCase) registerBlacklist(ctx context.Context, owner string) error {
	db := x.clients.Database()
	ts := now(ctx)

	if err := db.UpsertBlacklistEntry(ctx, &model.BlacklistEntry{
		Username:        owner,
		Status:          types.BlacklistConfirmed,
		AccountStatus:   types.AccountUnknown,
		FirstDetectedAt: ts,
		UpdatedAt:       ts,
	}); err != nil {
		return goerr.Wrap(err, "failed to register blacklist entry", goerr.V("owner", owner))
	}

	matches, err := db.ListMatchesByOwner(ctx, owner)
	if err != nil {
		return goerr.Wrap(err, "failed to list matches", goerr.V("owner", owner))
	}
	agg := model.AggregateMatches(owner, matches)
	if err := db.UpdateBlacklistStats(ctx, owner, agg, ts); err != nil {
		return goerr.Wrap(err, "failed to update blacklist stats", goerr.V("owner", owner))
	}

	logging.From(ctx).Warn("Account blacklisted",
		slog.String("owner", owner),
		slog.Int("stolen_repos", agg.StolenRepos),
		slog.Int("highest_confidence", agg.HighestConfidence),
	)
	return nil
}

// FindMatchesForRepo compares the repository with every stored repository that
// shares at least one (normalized message, minute) pair with it
func (x *UseCase) FindMatchesForRepo(ctx context.Context, repoID types.RepoID) ([]*model.Match, error) {
	db := x.clients.Database()

	if _, err := db.GetRepository(ctx, repoID); err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("id", repoID))
	}
	commits, err := db.ListCommits(ctx, repoID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", goerr.V("id", repoID))
	}

	var others []types.RepoID
	seen := map[types.RepoID]struct{}{}
	for _, c := range commits {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "matching interrupted", goerr.V("id", repoID))
		}

		hits, err := db.FindMatchingCommits(ctx, c.MatchKey(), c.Timestamp, repoID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to find matching commits", goerr.V("id", repoID))
		}
		for _, h := range hits {
			if _, ok := seen[h.RepoID]; !ok {
				seen[h.RepoID] = struct{}{}
				others = append(others, h.RepoID)
			}
		}
	}

	matches := []*model.Match{}
	for _, other := range others {
		m, err := x.CompareRepositories(ctx, repoID, other)
		if err != nil {
			return nil, err
		}
		if m != nil {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// FindMatchesForAllRepos compares every pair of repositories sharing a duplicate
// commit group, each unordered pair once. It returns the number of matches stored.
func (x *UseCase) FindMatchesForAllRepos(ctx context.Context) (int, error) {
	groups, err := x.clients.Database().FindDuplicateCommitGroups(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to find duplicate commit groups")
	}
	logging.From(ctx).Info("Found duplicate commit groups", slog.Int("groups", len(groups)))

	compared := map[types.MatchID]struct{}{}
	found := 0
	for _, g := range groups {
		for i := 0; i < len(g.RepoIDs); i++ {
			for j := i + 1; j < len(g.RepoIDs); j++ {
				id := types.NewMatchID(g.RepoIDs[i], g.RepoIDs[j])
				if _, ok := compared[id]; ok {
					continue
				}
				compared[id] = struct{}{}

				m, err := x.CompareRepositories(ctx, g.RepoIDs[i], g.RepoIDs[j])
				if err != nil {
					return found, err
				}
				if m != nil {
					found++
				}
			}
		}
	}
	return found, nil
}

func (x *UseCase) ListHighConfidenceMatches(ctx context.Context, limit int) ([]*model.Match, error) {
	matches, err := x.clients.Database().ListMatches(ctx, model.BlacklistScore, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list matches")
	}
	return matches, nil
}

func (x *UseCase) GetMatchDetails(ctx context.Context, id types.MatchID) (*model.MatchDetails, error) {
	db := x.clients.Database()

	m, err := db.GetMatch(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get match", goerr.V("id", id))
	}

	details := &model.MatchDetails{Match: m}
	for _, side := range []struct {
		id  types.RepoID
		dst **model.Repository
	}{{m.Repo1ID, &details.Repo1}, {m.Repo2ID, &details.Repo2}} {
		repo, err := db.GetRepository(ctx, side.id)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to get repository", goerr.V("id", side.id))
		}
		*side.dst = repo
	}
	return details, nil
}

// VerifyMatch marks the match verified when its confidence reaches the blacklist
// threshold. It reports whether the match is verified.
func (x *UseCase) VerifyMatch(ctx context.Context, id types.MatchID) (bool, error) {
	db := x.clients.Database()

	m, err := db.GetMatch(ctx, id)
	if err != nil {
		return false, goerr.Wrap(err, "failed to get match", goerr.V("id", id))
	}
	if m.ConfidenceScore < model.BlacklistScore {
		return false, nil
	}
	if m.Status == types.MatchStatusVerified {
		return true, nil
	}

	if err := db.UpdateMatchStatus(ctx, id, types.MatchStatusVerified); err != nil {
		return false, goerr.Wrap(err, "failed to update match status", goerr.V("id", id))
	}
	return true, nil
}
