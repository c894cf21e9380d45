package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var ptnRepoURL = regexp.MustCompile(`github\.com[/:]([^/\s]+)/([^/?#\s]+)`)

// ParseRepoURL extracts owner and repository name from a GitHub URL such as
// https://github.com/owner/repo or git@github.com:owner/repo.git
func ParseRepoURL(url string) (owner, repo string, err error) {
	m := ptnRepoURL.FindStringSubmatch(url)
	if m == nil {
		return "", "", goerr.Wrap(types.ErrInvalidURL, "not a GitHub repository URL", goerr.V("url", url))
	}

	owner = m[1]
	repo = strings.TrimSuffix(m[2], ".git")
	if owner == "" || repo == "" {
		return "", "", goerr.Wrap(types.ErrInvalidURL, "owner or repository is empty", goerr.V("url", url))
	}

	return owner, repo, nil
}
