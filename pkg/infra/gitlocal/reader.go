package gitlocal

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Reader reads commit history from a local clone
type Reader struct{}

var _ interfaces.LocalGit = (*Reader)(nil)

func New() *Reader {
	return &Reader{}
}

// ReadHistory walks history from HEAD, newest first, and resolves owner and
// repository name from the origin remote
func (x *Reader) ReadHistory(ctx context.Context, dir string, limit int) (*model.LocalHistory, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get remote origin", goerr.V("dir", dir))
	}
	if len(remote.Config().URLs) == 0 {
		return nil, goerr.New("no remote URL found", goerr.V("dir", dir))
	}

	owner, name, err := model.ParseRepoURL(remote.Config().URLs[0])
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get HEAD", goerr.V("dir", dir))
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read git log", goerr.V("dir", dir))
	}
	defer iter.Close()

	history := &model.LocalHistory{Owner: owner, Name: name}
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		sha := c.Hash.String()
		url := fmt.Sprintf("https://github.com/%s/%s/commit/%s", owner, name, sha)
		history.Commits = append(history.Commits,
			model.NewCommit(sha, c.Message, c.Author.Name, c.Author.Email, c.Author.When.UTC(), url))

		if limit > 0 && len(history.Commits) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk git log", goerr.V("dir", dir))
	}

	return history, nil
}
