package model

import (
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/types"
)

// Match links two repositories that share at least one exact commit match.
// Repo1ID is always the lower repository ID.
type Match struct {
	ID              types.MatchID         `json:"id" firestore:"id"`
	Repo1ID         types.RepoID          `json:"repo1_id" firestore:"repo1_id"`
	Repo2ID         types.RepoID          `json:"repo2_id" firestore:"repo2_id"`
	Repo1FullName   string                `json:"repo1_full_name" firestore:"repo1_full_name"`
	Repo2FullName   string                `json:"repo2_full_name" firestore:"repo2_full_name"`
	Owners          []string              `json:"owners" firestore:"owners"`
	OriginalRepoID  types.RepoID          `json:"original_repo_id" firestore:"original_repo_id"`
	SuspectRepoID   types.RepoID          `json:"suspect_repo_id" firestore:"suspect_repo_id"`
	MatchingCommits int                   `json:"matching_commits" firestore:"matching_commits"`
	MatchPercentage float64               `json:"match_percentage" firestore:"match_percentage"`
	ConfidenceScore int                   `json:"confidence_score" firestore:"confidence_score"`
	ConfidenceLevel types.ConfidenceLevel `json:"confidence_level" firestore:"confidence_level"`
	CommitsPredate  bool                  `json:"commits_predate_repo" firestore:"commits_predate_repo"`
	Statistics      MatchStatistics       `json:"statistics" firestore:"statistics"`
	Evidence        Evidence              `json:"evidence" firestore:"evidence"`
	Status          types.MatchStatus     `json:"status" firestore:"status"`
	CreatedAt       time.Time             `json:"created_at" firestore:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at" firestore:"updated_at"`
}

// Evidence is the human-readable summary persisted with a match
type Evidence struct {
	Original              RepoFacts      `json:"original" firestore:"original"`
	Suspect               RepoFacts      `json:"suspect" firestore:"suspect"`
	SampleMatchingCommits []SampleCommit `json:"sample_matching_commits" firestore:"sample_matching_commits"`
}

type RepoFacts struct {
	FullName     string    `json:"full_name" firestore:"full_name"`
	CreatedAt    time.Time `json:"created_at" firestore:"created_at"`
	FirstCommit  time.Time `json:"first_commit" firestore:"first_commit"`
	TotalCommits int       `json:"total_commits" firestore:"total_commits"`
}

const maxEvidenceSamples = 5

// NewMatch builds a match record from statistics. original must be the
// earlier-created repository of the pair.
func NewMatch(original, suspect *Repository, stats *MatchStatistics, now time.Time) *Match {
	m := &Match{
		ID:              types.NewMatchID(original.ID, suspect.ID),
		OriginalRepoID:  original.ID,
		SuspectRepoID:   suspect.ID,
		MatchingCommits: stats.ExactMatches,
		MatchPercentage: stats.MatchPercentage,
		ConfidenceScore: stats.ConfidenceScore,
		ConfidenceLevel: stats.ConfidenceLevel,
		CommitsPredate:  stats.CommitsPredateRepo2,
		Statistics:      *stats,
		Status:          types.MatchStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	first, second := original, suspect
	if first.ID > second.ID {
		first, second = second, first
	}
	m.Repo1ID, m.Repo1FullName = first.ID, first.FullName
	m.Repo2ID, m.Repo2FullName = second.ID, second.FullName
	m.Owners = []string{first.Owner}
	if second.Owner != first.Owner {
		m.Owners = append(m.Owners, second.Owner)
	}

	samples := stats.SampleMatchingCommits
	if len(samples) > maxEvidenceSamples {
		samples = samples[:maxEvidenceSamples]
	}
	m.Evidence = Evidence{
		Original: RepoFacts{
			FullName:     original.FullName,
			CreatedAt:    original.CreatedAt,
			FirstCommit:  original.FirstCommitAt,
			TotalCommits: stats.TotalCommitsRepo1,
		},
		Suspect: RepoFacts{
			FullName:     suspect.FullName,
			CreatedAt:    suspect.CreatedAt,
			FirstCommit:  suspect.FirstCommitAt,
			TotalCommits: stats.TotalCommitsRepo2,
		},
		SampleMatchingCommits: append([]SampleCommit{}, samples...),
	}

	return m
}

// Involves reports whether the repository is one side of the match
func (x *Match) Involves(id types.RepoID) bool {
	return x.Repo1ID == id || x.Repo2ID == id
}

// Counterpart returns the ID and full name of the other side of the match
func (x *Match) Counterpart(id types.RepoID) (types.RepoID, string) {
	if x.Repo1ID == id {
		return x.Repo2ID, x.Repo2FullName
	}
	return x.Repo1ID, x.Repo1FullName
}

func (x *Match) Copy() *Match {
	if x == nil {
		return nil
	}
	c := *x
	c.Owners = append([]string{}, x.Owners...)
	c.Statistics.SampleMatchingCommits = append([]SampleCommit{}, x.Statistics.SampleMatchingCommits...)
	c.Evidence.SampleMatchingCommits = append([]SampleCommit{}, x.Evidence.SampleMatchingCommits...)
	return &c
}

// MatchDetails is a match together with both repositories
type MatchDetails struct {
	Match *Match      `json:"match"`
	Repo1 *Repository `json:"repo1"`
	Repo2 *Repository `json:"repo2"`
}

// CommitCheckResult is the outcome of a lightweight commit-message comparison
// against a candidate repository
type CommitCheckResult struct {
	Matches         int
	MatchingCommits []*Commit
	Qualified       bool
}

// CandidateMatch is a repository found elsewhere on the platform whose match
// with the seed repository cleared the suspicious threshold
type CandidateMatch struct {
	FullName        string       `json:"full_name"`
	RepoID          types.RepoID `json:"repo_id"`
	Stars           int          `json:"stars"`
	CreatedAt       time.Time    `json:"created_at"`
	CheckedMatches  int          `json:"checked_matches"`
	ConfidenceScore int          `json:"confidence_score"`
	MatchingCommits int          `json:"matching_commits"`
}
