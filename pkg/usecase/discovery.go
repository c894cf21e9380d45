package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	nameSearchLimit   = 30
	commitSearchLimit = 30
)

// nameSearchTerms returns the full word sequence, its first two words and its
// first word of a repository name split on '-' and '_'
func nameSearchTerms(name string) []string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	var kept []string
	for _, w := range words {
		if len(w) >= 2 {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	terms := []string{strings.Join(kept, " ")}
	if len(kept) > 2 {
		terms = append(terms, strings.Join(kept[:2], " "))
	}
	if len(kept) > 1 {
		terms = append(terms, kept[0])
	}
	return terms
}

// seedCommits returns up to seedCommitLimit of the newest stored commits
func seedCommits(commits []*model.Commit) []*model.Commit {
	sorted := append([]*model.Commit{}, commits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	if len(sorted) > seedCommitLimit {
		sorted = sorted[:seedCommitLimit]
	}
	return sorted
}

// collectCandidates merges name-similarity results and commit-message search
// results, in that order, deduplicated and capped at the configured limit
func (x *UseCase) collectCandidates(ctx context.Context, seed *model.Repository, commits []*model.Commit) []*model.GitHubRepository {
	gh := x.clients.GitHub()
	logger := logging.From(ctx)

	seen := map[string]struct{}{seed.FullName: {}}
	var candidates []*model.GitHubRepository
	add := func(repos []*model.GitHubRepository) {
		for _, r := range repos {
			if r.Owner == seed.Owner {
				continue
			}
			if _, ok := seen[r.FullName]; ok {
				continue
			}
			seen[r.FullName] = struct{}{}
			candidates = append(candidates, r)
		}
	}

	byName := 0
	for _, term := range nameSearchTerms(seed.Name) {
		repos, err := gh.SearchRepositories(ctx, term, nameSearchLimit)
		if err != nil {
			logger.Warn("Failed to search similar names", slog.String("term", term), slog.Any("error", err))
			continue
		}
		before := len(candidates)
		add(repos)
		byName += len(candidates) - before
	}

	byCommit, err := gh.FindReposWithMatchingCommits(ctx, commits, seed.Owner, commitSearchLimit)
	if err != nil {
		logger.Warn("Failed to search by commit messages", slog.Any("error", err))
	}
	add(byCommit)

	if len(candidates) > x.config.CandidateLimit {
		candidates = candidates[:x.config.CandidateLimit]
	}
	logger.Info("Collected candidate repositories",
		slog.Int("candidates", len(candidates)),
		slog.Int("by_name", byName),
		slog.Int("by_commit", len(byCommit)),
	)
	return candidates
}

// FindMatchesAcrossGitHub searches the whole platform for repositories copying
// owner/repo. The seed is indexed first when it is not stored yet.
func (x *UseCase) FindMatchesAcrossGitHub(ctx context.Context, owner, repo string) ([]*model.CandidateMatch, error) {
	logger := logging.From(ctx).With(slog.String("seed", owner+"/"+repo))
	ctx = logging.With(ctx, logger)
	db := x.clients.Database()

	seed, err := db.GetRepositoryByFullName(ctx, owner+"/"+repo)
	if errors.Is(err, repository.ErrNotFound) {
		seed, err = x.indexWithTimeout(ctx, owner, repo)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to prepare seed repository", goerr.V("owner", owner), goerr.V("repo", repo))
	}

	stored, err := db.ListCommits(ctx, seed.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list seed commits", goerr.V("id", seed.ID))
	}
	commits := seedCommits(stored)
	if len(commits) == 0 {
		logger.Info("Seed repository has no commits")
		return []*model.CandidateMatch{}, nil
	}

	candidates := x.collectCandidates(ctx, seed, commits)

	results := []*model.CandidateMatch{}
	for i, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return results, goerr.Wrap(err, "discovery interrupted", goerr.V("seed", seed.FullName))
		}

		clog := logger.With(
			slog.String("candidate", candidate.FullName),
			slog.Int("index", i+1),
			slog.Int("total", len(candidates)),
		)
		found, err := x.checkCandidate(logging.With(ctx, clog), seed, candidate, commits)
		if err != nil {
			clog.Warn("Skipped candidate", slog.Any("error", err))
			continue
		}
		if found != nil {
			clog.Warn("Suspicious copy found", slog.Int("score", found.ConfidenceScore))
			results = append(results, found)
		}
	}

	logger.Info("Finished platform-wide search", slog.Int("matches", len(results)))
	return results, nil
}

// checkCandidate runs the time-bounded check, index and match steps for one
// candidate. It returns nil when the candidate does not qualify.
func (x *UseCase) checkCandidate(ctx context.Context, seed *model.Repository, candidate *model.GitHubRepository, commits []*model.Commit) (*model.CandidateMatch, error) {
	checkCtx, cancel := context.WithTimeout(ctx, x.config.CheckTimeout)
	check := x.clients.GitHub().CheckRepoForMatchingCommits(checkCtx, candidate.Owner, candidate.Name, commits, x.config.MinMatches)
	checkErr := checkCtx.Err()
	cancel()
	if checkErr != nil {
		return nil, goerr.Wrap(checkErr, "candidate check timed out")
	}
	if check == nil || check.Matches < x.config.MinMatches {
		return nil, nil
	}

	indexed, err := x.indexWithTimeout(ctx, candidate.Owner, candidate.Name)
	if err != nil {
		return nil, err
	}

	matchCtx, cancel := context.WithTimeout(ctx, x.config.MatchTimeout)
	defer cancel()
	matches, err := x.FindMatchesForRepo(matchCtx, indexed.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to match candidate", goerr.V("candidate", candidate.FullName))
	}

	for _, m := range matches {
		if !m.Involves(seed.ID) || m.ConfidenceScore < model.SuspiciousScore {
			continue
		}
		return &model.CandidateMatch{
			FullName:        candidate.FullName,
			RepoID:          indexed.ID,
			Stars:           candidate.Stars,
			CreatedAt:       candidate.CreatedAt,
			CheckedMatches:  check.Matches,
			ConfidenceScore: m.ConfidenceScore,
			MatchingCommits: m.MatchingCommits,
		}, nil
	}
	return nil, nil
}

func (x *UseCase) indexWithTimeout(ctx context.Context, owner, repo string) (*model.Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, x.config.IndexTimeout)
	defer cancel()
	return x.IndexRepository(ctx, owner, repo)
}
