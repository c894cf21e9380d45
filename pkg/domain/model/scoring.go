package model

import (
	"math"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/types"
)

const (
	// SuspiciousScore is the minimum confidence for a match to be surfaced and to
	// raise both repositories' suspicion scores
	SuspiciousScore = 50

	// BlacklistScore is the minimum confidence that registers the suspect owner in the blacklist
	BlacklistScore = 70

	maxSampleCommits = 10
)

// MatchStatistics is the result of comparing the commit histories of two repositories.
// Repo1 is the earlier-created (presumed original) repository, Repo2 the later one.
type MatchStatistics struct {
	TotalCommitsRepo1      int                   `json:"total_commits_repo1" firestore:"total_commits_repo1"`
	TotalCommitsRepo2      int                   `json:"total_commits_repo2" firestore:"total_commits_repo2"`
	ExactMatches           int                   `json:"exact_matches" firestore:"exact_matches"`
	DifferentAuthorMatches int                   `json:"different_author_matches" firestore:"different_author_matches"`
	MatchPercentage        float64               `json:"match_percentage" firestore:"match_percentage"`
	Repo1CreatedAt         time.Time             `json:"repo1_created_at" firestore:"repo1_created_at"`
	Repo2CreatedAt         time.Time             `json:"repo2_created_at" firestore:"repo2_created_at"`
	Repo1FirstCommit       time.Time             `json:"repo1_first_commit" firestore:"repo1_first_commit"`
	Repo2FirstCommit       time.Time             `json:"repo2_first_commit" firestore:"repo2_first_commit"`
	CommitsPredateRepo2    bool                  `json:"commits_predate_repo2" firestore:"commits_predate_repo2"`
	TimeGapDays            float64               `json:"time_gap_days" firestore:"time_gap_days"`
	UniqueAuthorsRepo1     int                   `json:"unique_authors_repo1" firestore:"unique_authors_repo1"`
	UniqueAuthorsRepo2     int                   `json:"unique_authors_repo2" firestore:"unique_authors_repo2"`
	AuthorOverlap          int                   `json:"author_overlap" firestore:"author_overlap"`
	ConfidenceScore        int                   `json:"confidence_score" firestore:"confidence_score"`
	ConfidenceLevel        types.ConfidenceLevel `json:"confidence_level" firestore:"confidence_level"`
	SampleMatchingCommits  []SampleCommit        `json:"sample_matching_commits" firestore:"sample_matching_commits"`
}

// SampleCommit is one exact match kept as evidence
type SampleCommit struct {
	Message   string    `json:"message" firestore:"message"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
	Author1   string    `json:"author1" firestore:"author1"`
	Author2   string    `json:"author2" firestore:"author2"`
}

type indexedCommit struct {
	minute time.Time
	author string
	name   string
}

func indexByMessage(commits []*Commit) map[string][]indexedCommit {
	idx := make(map[string][]indexedCommit, len(commits))
	for _, c := range commits {
		key := c.MatchKey()
		idx[key] = append(idx[key], indexedCommit{
			minute: TruncateToMinute(c.Timestamp),
			author: c.Author(),
			name:   c.AuthorName,
		})
	}
	return idx
}

func uniqueAuthors(commits []*Commit) map[string]struct{} {
	authors := make(map[string]struct{}, len(commits))
	for _, c := range commits {
		authors[c.Author()] = struct{}{}
	}
	return authors
}

// CalculateMatchStatistics compares two commit histories. repo1 must be the
// earlier-created repository. An exact match is a commit of repo1 and a commit of
// repo2 with the same normalized message and the same minute-truncated timestamp;
// each commit takes part in at most one exact match.
func CalculateMatchStatistics(repo1, repo2 *Repository, commits1, commits2 []*Commit) *MatchStatistics {
	stats := &MatchStatistics{
		TotalCommitsRepo1: len(commits1),
		TotalCommitsRepo2: len(commits2),
		Repo1CreatedAt:    repo1.CreatedAt,
		Repo2CreatedAt:    repo2.CreatedAt,
		Repo1FirstCommit:  repo1.FirstCommitAt,
		Repo2FirstCommit:  repo2.FirstCommitAt,
	}

	idx2 := indexByMessage(commits2)

	for _, c1 := range commits1 {
		key := c1.MatchKey()
		candidates := idx2[key]
		if len(candidates) == 0 {
			continue
		}

		minute := TruncateToMinute(c1.Timestamp)
		for i, c2 := range candidates {
			if !c2.minute.Equal(minute) {
				continue
			}

			stats.ExactMatches++
			if c1.Author() != c2.author {
				stats.DifferentAuthorMatches++
			}
			if len(stats.SampleMatchingCommits) < maxSampleCommits {
				stats.SampleMatchingCommits = append(stats.SampleMatchingCommits, SampleCommit{
					Message:   c1.Message,
					Timestamp: minute,
					Author1:   c1.AuthorName,
					Author2:   c2.name,
				})
			}

			// consume the matched commit of repo2
			idx2[key] = append(candidates[:i:i], candidates[i+1:]...)
			break
		}
	}

	if total := max(len(commits1), len(commits2)); total > 0 {
		stats.MatchPercentage = float64(stats.ExactMatches) / float64(total) * 100
	}

	authors1 := uniqueAuthors(commits1)
	authors2 := uniqueAuthors(commits2)
	stats.UniqueAuthorsRepo1 = len(authors1)
	stats.UniqueAuthorsRepo2 = len(authors2)
	for a := range authors1 {
		if _, ok := authors2[a]; ok {
			stats.AuthorOverlap++
		}
	}

	if !repo2.FirstCommitAt.IsZero() {
		stats.CommitsPredateRepo2 = repo2.FirstCommitAt.Before(repo2.CreatedAt)
	}
	stats.TimeGapDays = math.Abs(repo2.CreatedAt.Sub(repo1.CreatedAt).Hours() / 24)

	stats.ConfidenceScore = CalculateConfidenceScore(stats)
	stats.ConfidenceLevel = ConfidenceLevelOf(stats.ConfidenceScore)

	return stats
}

// CalculateConfidenceScore combines message-match volume, match density, temporal
// anomalies and author anomalies into a score in [0, 100]
func CalculateConfidenceScore(stats *MatchStatistics) int {
	score := 0

	switch {
	case stats.ExactMatches >= 50:
		score += 40
	case stats.ExactMatches >= 30:
		score += 35
	case stats.ExactMatches >= 20:
		score += 30
	case stats.ExactMatches >= 10:
		score += 25
	case stats.ExactMatches >= 5:
		score += 20
	case stats.ExactMatches >= 3:
		score += 15
	case stats.ExactMatches >= 1:
		score += 10
	}

	switch pct := stats.MatchPercentage; {
	case pct > 90:
		score += 25
	case pct >= 80:
		score += 20
	case pct >= 70:
		score += 15
	case pct >= 50:
		score += 10
	case pct >= 30:
		score += 5
	}

	if stats.CommitsPredateRepo2 {
		score += 20
	} else if stats.Repo2CreatedAt.After(stats.Repo1CreatedAt) && stats.ExactMatches > 0 {
		score += 15
	}
	if stats.TimeGapDays > 30 {
		score += 10
	}
	if !stats.Repo1FirstCommit.IsZero() && !stats.Repo2FirstCommit.IsZero() &&
		stats.Repo1FirstCommit.Equal(stats.Repo2FirstCommit) {
		score += 5
	}

	switch {
	case stats.ExactMatches > 0 && stats.DifferentAuthorMatches == stats.ExactMatches:
		score += 10
	case float64(stats.DifferentAuthorMatches) > float64(stats.ExactMatches)*0.8:
		score += 8
	case stats.DifferentAuthorMatches > 0:
		score += 5
	}

	return min(100, score)
}

func ConfidenceLevelOf(score int) types.ConfidenceLevel {
	switch {
	case score >= 85:
		return types.ConfidenceVeryHigh
	case score >= 70:
		return types.ConfidenceHigh
	case score >= 50:
		return types.ConfidenceMedium
	case score >= 30:
		return types.ConfidenceLow
	default:
		return types.ConfidenceVeryLow
	}
}
