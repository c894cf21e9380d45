package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseRepoURL(t *testing.T) {
	testCases := []struct {
		url   string
		owner string
		repo  string
	}{
		{url: "https://github.com/octocat/hello-world", owner: "octocat", repo: "hello-world"},
		{url: "https://github.com/octocat/hello-world.git", owner: "octocat", repo: "hello-world"},
		{url: "https://github.com/octocat/hello-world/tree/main/src", owner: "octocat", repo: "hello-world"},
		{url: "https://github.com/octocat/hello-world?tab=readme", owner: "octocat", repo: "hello-world"},
		{url: "git@github.com:octocat/hello-world.git", owner: "octocat", repo: "hello-world"},
		{url: "github.com/octocat/hello-world", owner: "octocat", repo: "hello-world"},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			owner, repo, err := model.ParseRepoURL(tc.url)
			gt.NoError(t, err)
			gt.V(t, owner).Equal(tc.owner)
			gt.V(t, repo).Equal(tc.repo)
		})
	}

	t.Run("invalid URLs are rejected", func(t *testing.T) {
		for _, url := range []string{"", "https://gitlab.com/a/b", "https://github.com/only-owner", "not a url"} {
			_, _, err := model.ParseRepoURL(url)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidURL))
		}
	})
}

func TestRepositoryValidate(t *testing.T) {
	valid := func() *model.Repository {
		return &model.Repository{ID: 1, Owner: "o", Name: "r", FullName: "o/r"}
	}

	gt.NoError(t, valid().Validate())

	t.Run("missing ID", func(t *testing.T) {
		r := valid()
		r.ID = 0
		gt.True(t, errors.Is(r.Validate(), types.ErrValidationFailed))
	})

	t.Run("mismatched full name", func(t *testing.T) {
		r := valid()
		r.FullName = "x/r"
		gt.True(t, errors.Is(r.Validate(), types.ErrValidationFailed))
	})

	t.Run("copy is independent", func(t *testing.T) {
		r := valid()
		r.Topics = []string{"go"}
		c := r.Copy()
		c.Topics[0] = "rust"
		gt.V(t, r.Topics[0]).Equal("go")
	})
}
