package model

import (
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Repository is a hosting-platform repository as stored by copycat
type Repository struct {
	ID          types.RepoID `json:"id" firestore:"id"`
	Owner       string       `json:"owner" firestore:"owner"`
	Name        string       `json:"name" firestore:"name"`
	FullName    string       `json:"full_name" firestore:"full_name"`
	Description string       `json:"description,omitempty" firestore:"description"`
	Topics      []string     `json:"topics,omitempty" firestore:"topics"`
	Stars       int          `json:"stars" firestore:"stars"`
	Forks       int          `json:"forks" firestore:"forks"`
	CreatedAt   time.Time    `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" firestore:"updated_at"`
	PushedAt    time.Time    `json:"pushed_at" firestore:"pushed_at"`

	// FirstCommitAt is the timestamp of the oldest indexed commit. Zero until indexed.
	FirstCommitAt   time.Time        `json:"first_commit_at" firestore:"first_commit_at"`
	ScanStatus      types.ScanStatus `json:"scan_status" firestore:"scan_status"`
	SuspicionScore  int              `json:"suspicion_score" firestore:"suspicion_score"`
	StatusUpdatedAt time.Time        `json:"status_updated_at" firestore:"status_updated_at"`
}

func (x *Repository) Validate() error {
	if x.ID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "repository ID is empty")
	}
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository owner is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is empty")
	}
	if x.FullName != x.Owner+"/"+x.Name {
		return goerr.Wrap(types.ErrValidationFailed, "full name does not match owner and name",
			goerr.V("full_name", x.FullName),
			goerr.V("owner", x.Owner),
			goerr.V("name", x.Name),
		)
	}
	return nil
}

// Copy returns a deep copy
func (x *Repository) Copy() *Repository {
	if x == nil {
		return nil
	}
	c := *x
	if x.Topics != nil {
		c.Topics = append([]string{}, x.Topics...)
	}
	return &c
}

// GitHubRepository is repository metadata as returned by the hosting API
type GitHubRepository struct {
	ID          types.RepoID
	Owner       string
	Name        string
	FullName    string
	Description string
	Topics      []string
	Stars       int
	Forks       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PushedAt    time.Time
}

// ToRepository converts API metadata into a new stored record with pending status
func (x *GitHubRepository) ToRepository() *Repository {
	return &Repository{
		ID:          x.ID,
		Owner:       x.Owner,
		Name:        x.Name,
		FullName:    x.FullName,
		Description: x.Description,
		Topics:      append([]string{}, x.Topics...),
		Stars:       x.Stars,
		Forks:       x.Forks,
		CreatedAt:   x.CreatedAt,
		UpdatedAt:   x.UpdatedAt,
		PushedAt:    x.PushedAt,
		ScanStatus:  types.ScanStatusPending,
	}
}

// GitHubUser is account metadata as returned by the hosting API
type GitHubUser struct {
	ID          int64
	Login       string
	CreatedAt   time.Time
	PublicRepos int
}
