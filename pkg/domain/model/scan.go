package model

import (
	"encoding/json"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ScanJob requests indexing and matching of a single repository
type ScanJob struct {
	Owner      string    `json:"owner"`
	Repo       string    `json:"repo"`
	Priority   int       `json:"priority"`
	Attempts   int       `json:"attempts,omitempty"`
	EnqueuedAt time.Time `json:"enqueued_at,omitempty"`
}

// ID returns the identity key that collapses duplicate enqueues
func (x *ScanJob) ID() types.JobID {
	return types.NewJobID(x.Owner, x.Repo)
}

func (x *ScanJob) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is required")
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo is required")
	}
	return nil
}

// QueueStats is the number of jobs per state
type QueueStats struct {
	Waiting   int `json:"waiting"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// ProfileScanSession is the in-memory state of a running profile scan
type ProfileScanSession struct {
	ID        types.ScanID    `json:"id"`
	Username  string          `json:"username"`
	Phase     types.ScanPhase `json:"phase"`
	StartedAt time.Time       `json:"started_at"`

	// PhaseChangedAt is the time of the last phase transition. Stuck detection measures from here.
	PhaseChangedAt time.Time `json:"phase_changed_at"`
}

func (x *ProfileScanSession) Active() bool {
	return x != nil && x.Phase != types.ScanPhaseCompleted
}

func (x *ProfileScanSession) Copy() *ProfileScanSession {
	if x == nil {
		return nil
	}
	c := *x
	return &c
}

// ScanHandle is returned when a profile scan is started in the background
type ScanHandle struct {
	Username  string          `json:"username"`
	Phase     types.ScanPhase `json:"phase"`
	StartedAt time.Time       `json:"started_at"`
}

// ScanProgress counts the repositories of a profile by scan status
type ScanProgress struct {
	TotalRepos      int `json:"total_repos"`
	ScannedRepos    int `json:"scanned_repos"`
	PendingRepos    int `json:"pending_repos"`
	ProcessingRepos int `json:"processing_repos"`
	Percentage      int `json:"percentage"`
}

// ProfileScanStatus is the polling view of a profile scan
type ProfileScanStatus struct {
	Username string `json:"username"`

	// Phase is empty when no session exists for the username
	Phase     types.ScanPhase    `json:"phase,omitempty"`
	Completed bool               `json:"completed"`
	Recovered bool               `json:"recovered,omitempty"`
	Progress  ScanProgress       `json:"progress"`
	Message   string             `json:"message"`
	Result    *ProfileScanResult `json:"result,omitempty"`
}

// MatchedRepo is the counterpart of a match as seen from one repository
type MatchedRepo struct {
	FullName        string        `json:"full_name"`
	MatchID         types.MatchID `json:"match_id"`
	ConfidenceScore int           `json:"confidence_score"`
}

// SuspiciousRepo is a repository whose best match reached SuspiciousScore
type SuspiciousRepo struct {
	FullName          string         `json:"full_name"`
	SuspicionScore    int            `json:"suspicion_score"`
	Matches           int            `json:"matches"`
	HighestConfidence int            `json:"highest_confidence"`
	MatchedAgainst    string         `json:"matched_against"`
	AllMatches        []*MatchedRepo `json:"all_matches"`
}

// ScanResultKind tags the variants of ScanResult
type ScanResultKind string

const (
	ScanResultRepo    ScanResultKind = "repo"
	ScanResultProfile ScanResultKind = "profile"
)

// ScanResult is the outcome of a scan. It is either *RepoScanResult or *ProfileScanResult.
type ScanResult interface {
	Kind() ScanResultKind
}

// RepoScanResult is the outcome of indexing and matching one repository
type RepoScanResult struct {
	Repository *Repository `json:"repository"`
	Commits    int         `json:"commits"`
	Matches    []*Match    `json:"matches"`
}

func (x *RepoScanResult) Kind() ScanResultKind { return ScanResultRepo }

func (x *RepoScanResult) MarshalJSON() ([]byte, error) {
	type alias RepoScanResult
	return json.Marshal(struct {
		Kind ScanResultKind `json:"kind"`
		*alias
	}{Kind: x.Kind(), alias: (*alias)(x)})
}

// ProfileScanResult aggregates the matches of all repositories of an account
type ProfileScanResult struct {
	Username        string            `json:"username"`
	TotalMatches    int               `json:"total_matches"`
	SuspiciousCount int               `json:"suspicious_repos"`
	ProfileScore    int               `json:"profile_score"`
	SuspiciousRepos []*SuspiciousRepo `json:"suspicious_repos_list"`
}

func (x *ProfileScanResult) Kind() ScanResultKind { return ScanResultProfile }

func (x *ProfileScanResult) MarshalJSON() ([]byte, error) {
	type alias ProfileScanResult
	return json.Marshal(struct {
		Kind ScanResultKind `json:"kind"`
		*alias
	}{Kind: x.Kind(), alias: (*alias)(x)})
}

// ProfileScore is the mean of the highest confidences of suspicious repositories, capped at 100
func ProfileScore(repos []*SuspiciousRepo) int {
	if len(repos) == 0 {
		return 0
	}
	sum := 0
	for _, r := range repos {
		sum += r.HighestConfidence
	}
	mean := (float64(sum) / float64(len(repos))) + 0.5
	return min(100, int(mean))
}
