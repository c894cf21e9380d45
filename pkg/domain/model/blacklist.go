package model

import (
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/types"
)

// BlacklistEntry is an account whose repositories triggered high-confidence matches
type BlacklistEntry struct {
	Username          string                `json:"username" firestore:"username"`
	StolenRepos       int                   `json:"stolen_repos" firestore:"stolen_repos"`
	TotalMatches      int                   `json:"total_matches" firestore:"total_matches"`
	HighestConfidence int                   `json:"highest_confidence" firestore:"highest_confidence"`
	Status            types.BlacklistStatus `json:"status" firestore:"status"`
	AccountStatus     types.AccountStatus   `json:"account_status" firestore:"account_status"`
	FirstDetectedAt   time.Time             `json:"first_detected_at" firestore:"first_detected_at"`
	UpdatedAt         time.Time             `json:"updated_at" firestore:"updated_at"`
	AccountCheckedAt  time.Time             `json:"account_checked_at,omitempty" firestore:"account_checked_at"`
}

func (x *BlacklistEntry) Copy() *BlacklistEntry {
	if x == nil {
		return nil
	}
	c := *x
	return &c
}

// BlacklistAggregate is the recomputed counters of an entry
type BlacklistAggregate struct {
	StolenRepos       int
	TotalMatches      int
	HighestConfidence int
}

// AggregateMatches recomputes blacklist counters of owner from all matches touching
// that owner. Only matches at or above SuspiciousScore count.
func AggregateMatches(owner string, matches []*Match) BlacklistAggregate {
	var agg BlacklistAggregate
	stolen := map[types.RepoID]struct{}{}

	for _, m := range matches {
		if m.ConfidenceScore < SuspiciousScore {
			continue
		}

		var ownRepo types.RepoID
		switch owner {
		case ownerOf(m.Repo1FullName):
			ownRepo = m.Repo1ID
		case ownerOf(m.Repo2FullName):
			ownRepo = m.Repo2ID
		default:
			continue
		}

		agg.TotalMatches++
		stolen[ownRepo] = struct{}{}
		agg.HighestConfidence = max(agg.HighestConfidence, m.ConfidenceScore)
	}
	agg.StolenRepos = len(stolen)

	return agg
}

func ownerOf(fullName string) string {
	owner, _, _ := strings.Cut(fullName, "/")
	return owner
}

// BlacklistQuery filters and pages blacklist entries
type BlacklistQuery struct {
	Page   int
	Limit  int
	Search string
	Status types.BlacklistStatus
}

const DefaultBlacklistLimit = 50

// Normalize fills default paging values
func (x BlacklistQuery) Normalize() BlacklistQuery {
	if x.Page < 1 {
		x.Page = 1
	}
	if x.Limit < 1 {
		x.Limit = DefaultBlacklistLimit
	}
	return x
}

// BlacklistPage is one page of entries with the total number of hits
type BlacklistPage struct {
	Entries []*BlacklistEntry `json:"entries"`
	Total   int               `json:"total"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
}

// BlacklistStats aggregates confirmed entries
type BlacklistStats struct {
	Scammers     int `json:"scammers"`
	StolenRepos  int `json:"stolen_repos"`
	TotalMatches int `json:"total_matches"`
}

// StolenRepository is a repository of a blacklisted account with what it matched against
type StolenRepository struct {
	Repository      *Repository   `json:"repository"`
	MatchedWith     string        `json:"matched_with"`
	ConfidenceScore int           `json:"confidence_score"`
	MatchID         types.MatchID `json:"match_id"`
}

// Scammer is a blacklist entry with its stolen repositories
type Scammer struct {
	Entry        *BlacklistEntry     `json:"entry"`
	Repositories []*StolenRepository `json:"repositories"`
}

// AccountRefreshResult summarizes a refresh of account statuses
type AccountRefreshResult struct {
	Checked    int `json:"checked"`
	Eliminated int `json:"eliminated"`
	Active     int `json:"active"`
}

// Match reports whether entry passes the search and status filters. Search is a
// case-insensitive substring of the username.
func (x BlacklistQuery) Match(entry *BlacklistEntry) bool {
	if x.Status != "" && entry.Status != x.Status {
		return false
	}
	if x.Search != "" && !strings.Contains(strings.ToLower(entry.Username), strings.ToLower(x.Search)) {
		return false
	}
	return true
}

// SortBlacklistEntries orders entries by highest confidence, then stolen
// repositories, then most recent first detection
func SortBlacklistEntries(entries []*BlacklistEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.HighestConfidence != b.HighestConfidence {
			return a.HighestConfidence > b.HighestConfidence
		}
		if a.StolenRepos != b.StolenRepos {
			return a.StolenRepos > b.StolenRepos
		}
		if !a.FirstDetectedAt.Equal(b.FirstDetectedAt) {
			return a.FirstDetectedAt.After(b.FirstDetectedAt)
		}
		return a.Username < b.Username
	})
}

// Paginate filters, sorts and slices entries into the requested page. Stores
// without substring search use it on the full entry set.
func (x BlacklistQuery) Paginate(entries []*BlacklistEntry) *BlacklistPage {
	q := x.Normalize()

	var hits []*BlacklistEntry
	for _, e := range entries {
		if q.Match(e) {
			hits = append(hits, e)
		}
	}
	SortBlacklistEntries(hits)

	page := &BlacklistPage{
		Entries: []*BlacklistEntry{},
		Total:   len(hits),
		Page:    q.Page,
		Limit:   q.Limit,
	}
	start := (q.Page - 1) * q.Limit
	if start >= len(hits) {
		return page
	}
	end := min(start+q.Limit, len(hits))
	page.Entries = hits[start:end]
	return page
}
