package github

import (
	"context"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const maxSearchPerPage = 100

// SearchRepositories returns up to limit repositories matching query, most starred first
func (x *Client) SearchRepositories(ctx context.Context, query string, limit int) ([]*model.GitHubRepository, error) {
	return x.searchRepositories(ctx, query, "stars", limit)
}

// ListUserRepositories returns repositories owned by username, newest first
func (x *Client) ListUserRepositories(ctx context.Context, username string, limit int) ([]*model.GitHubRepository, error) {
	return x.searchRepositories(ctx, "user:"+username, "created", limit)
}

func (x *Client) searchRepositories(ctx context.Context, query, sort string, limit int) ([]*model.GitHubRepository, error) {
	if limit <= 0 {
		return nil, nil
	}

	perPage := min(maxSearchPerPage, limit)
	opts := &github.SearchOptions{
		Sort:        sort,
		Order:       "desc",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var repos []*model.GitHubRepository
	for {
		if err := x.governor.Await(ctx, types.QuotaSearch); err != nil {
			return nil, err
		}

		result, resp, err := x.gh.Search.Repositories(ctx, query, opts)
		observe("search_repositories", err)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to search repositories",
				goerr.V("query", query),
				goerr.V("page", opts.Page),
				goerr.V("status", statusCode(err)),
			)
		}

		for _, repo := range result.Repositories {
			repos = append(repos, toRepository(repo))
			if len(repos) >= limit {
				return repos, nil
			}
		}

		if len(result.Repositories) < perPage || resp.NextPage == 0 {
			return repos, nil
		}
		opts.Page = resp.NextPage
	}
}

// SearchCode returns the repositories owning files that match query, deduplicated
// by full name. Code search results carry partial repository metadata.
func (x *Client) SearchCode(ctx context.Context, query string, limit int) ([]*model.GitHubRepository, error) {
	if limit <= 0 {
		return nil, nil
	}

	perPage := min(maxSearchPerPage, limit)
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	seen := map[string]struct{}{}
	var repos []*model.GitHubRepository
	for {
		if err := x.governor.Await(ctx, types.QuotaSearch); err != nil {
			return nil, err
		}

		result, resp, err := x.gh.Search.Code(ctx, query, opts)
		observe("search_code", err)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to search code",
				goerr.V("query", query),
				goerr.V("status", statusCode(err)),
			)
		}

		for _, code := range result.CodeResults {
			if code.Repository == nil {
				continue
			}
			repo := toRepository(code.Repository)
			if _, ok := seen[repo.FullName]; ok {
				continue
			}
			seen[repo.FullName] = struct{}{}
			repos = append(repos, repo)
			if len(repos) >= limit {
				return repos, nil
			}
		}

		if len(result.CodeResults) < perPage || resp.NextPage == 0 {
			return repos, nil
		}
		opts.Page = resp.NextPage
	}
}
