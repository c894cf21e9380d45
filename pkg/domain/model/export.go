package model

import "time"

// MatchRecord is the flattened form of a match written to the analytics warehouse.
// Timestamps are UNIX microseconds.
type MatchRecord struct {
	MatchID                string  `bigquery:"match_id" json:"match_id"`
	OriginalRepo           string  `bigquery:"original_repo" json:"original_repo"`
	SuspectRepo            string  `bigquery:"suspect_repo" json:"suspect_repo"`
	SuspectOwner           string  `bigquery:"suspect_owner" json:"suspect_owner"`
	MatchingCommits        int64   `bigquery:"matching_commits" json:"matching_commits"`
	DifferentAuthorMatches int64   `bigquery:"different_author_matches" json:"different_author_matches"`
	MatchPercentage        float64 `bigquery:"match_percentage" json:"match_percentage"`
	ConfidenceScore        int64   `bigquery:"confidence_score" json:"confidence_score"`
	ConfidenceLevel        string  `bigquery:"confidence_level" json:"confidence_level"`
	CommitsPredateRepo     bool    `bigquery:"commits_predate_repo" json:"commits_predate_repo"`
	TimeGapDays            float64 `bigquery:"time_gap_days" json:"time_gap_days"`
	Status                 string  `bigquery:"status" json:"status"`
	CreatedAt              int64   `bigquery:"created_at" json:"created_at"`
	ExportedAt             int64   `bigquery:"exported_at" json:"exported_at"`
}

// NewMatchRecord flattens m. The original and suspect sides follow the pair orientation of the match.
func NewMatchRecord(m *Match, exportedAt time.Time) *MatchRecord {
	original, suspect := m.Repo1FullName, m.Repo2FullName
	if m.OriginalRepoID == m.Repo2ID {
		original, suspect = suspect, original
	}

	return &MatchRecord{
		MatchID:                m.ID.String(),
		OriginalRepo:           original,
		SuspectRepo:            suspect,
		SuspectOwner:           ownerOf(suspect),
		MatchingCommits:        int64(m.MatchingCommits),
		DifferentAuthorMatches: int64(m.Statistics.DifferentAuthorMatches),
		MatchPercentage:        m.MatchPercentage,
		ConfidenceScore:        int64(m.ConfidenceScore),
		ConfidenceLevel:        string(m.ConfidenceLevel),
		CommitsPredateRepo:     m.CommitsPredate,
		TimeGapDays:            m.Statistics.TimeGapDays,
		Status:                 string(m.Status),
		CreatedAt:              m.CreatedAt.UnixMicro(),
		ExportedAt:             exportedAt.UnixMicro(),
	}
}
