package github

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
)

const (
	phraseSourceCommits  = 30
	maxPhraseQueries     = 10
	maxDistinctive       = 10
	maxCommitQueries     = 10
	perQueryResults      = 10
	defaultDiscoverLimit = 50

	// CheckCommitLimit is how much of a candidate's history is compared by CheckRepoForMatchingCommits
	CheckCommitLimit = 1000
)

var (
	ptnNonWord          = regexp.MustCompile(`[^A-Za-z0-9_\s]`)
	genericCommitPrefix = []string{"update", "fix", "merge", "initial"}
)

// commitPhrases returns distinct 3-word phrases of at least 10 characters taken
// from the first commits, in order of appearance
func commitPhrases(commits []*model.Commit) []string {
	if len(commits) > phraseSourceCommits {
		commits = commits[:phraseSourceCommits]
	}

	seen := map[string]struct{}{}
	var phrases []string
	for _, c := range commits {
		var words []string
		for _, w := range strings.Fields(ptnNonWord.ReplaceAllString(strings.ToLower(c.Message), " ")) {
			if len(w) >= 2 {
				words = append(words, w)
			}
		}

		for i := 0; i+3 <= len(words); i++ {
			phrase := strings.Join(words[i:i+3], " ")
			if len(phrase) < 10 {
				continue
			}
			if _, ok := seen[phrase]; ok {
				continue
			}
			seen[phrase] = struct{}{}
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}

// distinctiveTerms returns the leading words of commits that are long and not generic
func distinctiveTerms(commits []*model.Commit) []string {
	var terms []string
	picked := 0
	for _, c := range commits {
		if picked >= maxDistinctive {
			break
		}
		msg := strings.ToLower(c.Message)
		if len(msg) <= 20 || hasAnyPrefix(msg, genericCommitPrefix) {
			continue
		}
		picked++

		words := strings.Fields(msg)
		if len(words) > 5 {
			words = words[:5]
		}
		if len(words) >= 3 {
			terms = append(terms, strings.Join(words, " "))
		}
	}
	return terms
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// commitQueries builds the search queries used to find repositories sharing commits
func commitQueries(commits []*model.Commit) []string {
	var queries []string
	phrases := commitPhrases(commits)
	if len(phrases) > maxPhraseQueries {
		phrases = phrases[:maxPhraseQueries]
	}
	for _, phrase := range phrases {
		queries = append(queries, fmt.Sprintf(`"%s" language:markdown OR language:text`, phrase))
	}
	queries = append(queries, distinctiveTerms(commits)...)

	if len(queries) > maxCommitQueries {
		queries = queries[:maxCommitQueries]
	}
	return queries
}

// FindReposWithMatchingCommits derives search queries from commit messages and
// collects the repositories they hit. A failing query is logged and skipped.
func (x *Client) FindReposWithMatchingCommits(ctx context.Context, commits []*model.Commit, excludeOwner string, limit int) ([]*model.GitHubRepository, error) {
	if limit <= 0 {
		limit = defaultDiscoverLimit
	}
	logger := logging.From(ctx)

	found := map[string]struct{}{}
	var repos []*model.GitHubRepository

	for _, query := range commitQueries(commits) {
		if err := ctx.Err(); err != nil {
			return repos, err
		}

		hits, err := x.SearchCode(ctx, query, perQueryResults)
		if err != nil {
			logger.Debug("code search failed, falling back to repository search",
				slog.String("query", query),
				slog.Any("error", err),
			)
			hits, err = x.SearchRepositories(ctx, query, perQueryResults)
			if err != nil {
				logger.Warn("search for matching commits failed",
					slog.String("query", query),
					slog.Any("error", err),
				)
				continue
			}
		}

		for _, repo := range hits {
			if excludeOwner != "" && repo.Owner == excludeOwner {
				continue
			}
			if _, ok := found[repo.FullName]; ok {
				continue
			}
			found[repo.FullName] = struct{}{}
			repos = append(repos, repo)
			if len(repos) >= limit {
				return repos, nil
			}
		}
	}

	return repos, nil
}

// CheckRepoForMatchingCommits compares normalized messages only, because copied
// histories often carry rewritten timestamps. Any failure yields zero matches.
func (x *Client) CheckRepoForMatchingCommits(ctx context.Context, owner, name string, targets []*model.Commit, minMatches int) *model.CommitCheckResult {
	targetMessages := map[string]struct{}{}
	for _, c := range targets {
		normalized := c.MatchKey()
		if model.IsSignificantMessage(normalized) {
			targetMessages[normalized] = struct{}{}
		}
	}

	result := &model.CommitCheckResult{}
	if len(targetMessages) == 0 {
		return result
	}

	for c, err := range x.Commits(ctx, owner, name, CheckCommitLimit) {
		if err != nil {
			logging.From(ctx).Debug("failed to check repository, treating as no match",
				slog.String("owner", owner),
				slog.String("repo", name),
				slog.Any("error", err),
			)
			return &model.CommitCheckResult{}
		}
		if _, ok := targetMessages[c.MatchKey()]; ok {
			result.MatchingCommits = append(result.MatchingCommits, c)
		}
	}

	result.Matches = len(result.MatchingCommits)
	result.Qualified = result.Matches >= minMatches
	return result
}
