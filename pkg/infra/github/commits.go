package github

import (
	"context"
	"iter"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	commitsPerPage = 100

	// DefaultCommitLimit bounds how much history is fetched for one repository
	DefaultCommitLimit = 10000
)

// Commits returns a lazy newest-first sequence of up to limit commits. Pages are
// fetched on demand, so stopping the iteration stops further API calls. An empty
// repository yields nothing.
func (x *Client) Commits(ctx context.Context, owner, name string, limit int) iter.Seq2[*model.Commit, error] {
	if limit <= 0 {
		limit = DefaultCommitLimit
	}

	return func(yield func(*model.Commit, error) bool) {
		opts := &github.CommitsListOptions{
			ListOptions: github.ListOptions{PerPage: commitsPerPage},
		}

		count := 0
		for {
			if err := x.governor.Await(ctx, types.QuotaCore); err != nil {
				yield(nil, err)
				return
			}

			commits, resp, err := x.gh.Repositories.ListCommits(ctx, owner, name, opts)
			observe("list_commits", err)
			if err != nil {
				if statusCode(err) == http.StatusConflict {
					return
				}
				yield(nil, goerr.Wrap(err, "failed to list commits",
					goerr.V("owner", owner),
					goerr.V("repo", name),
					goerr.V("page", opts.Page),
				))
				return
			}

			for _, c := range commits {
				if !yield(toCommit(c), nil) {
					return
				}
				count++
				if count >= limit {
					return
				}
			}

			if len(commits) < commitsPerPage || resp.NextPage == 0 {
				return
			}
			opts.Page = resp.NextPage
		}
	}
}

func (x *Client) GetCommits(ctx context.Context, owner, name string, limit int) ([]*model.Commit, error) {
	var commits []*model.Commit
	for c, err := range x.Commits(ctx, owner, name, limit) {
		if err != nil {
			return nil, err
		}
		commits = append(commits, c)
	}
	return commits, nil
}

func toCommit(c *github.RepositoryCommit) *model.Commit {
	detail := c.GetCommit()
	author, committer := detail.GetAuthor(), detail.GetCommitter()

	ts := author.GetDate().Time
	if ts.IsZero() {
		ts = committer.GetDate().Time
	}

	name := author.GetName()
	if name == "" {
		name = committer.GetName()
	}
	if name == "" {
		name = "Unknown"
	}

	email := author.GetEmail()
	if email == "" {
		email = committer.GetEmail()
	}

	return model.NewCommit(c.GetSHA(), detail.GetMessage(), name, email, ts.UTC(), c.GetHTMLURL())
}

