package types

import (
	"fmt"

	"github.com/google/uuid"
)

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

type ReportID string

func NewReportID() ReportID {
	return ReportID(uuid.NewString())
}

// ScanID identifies one run of a profile scan
type ScanID string

func NewScanID() ScanID {
	return ScanID(uuid.NewString())
}

type JobID string

// NewJobID builds the identity key of a scan job. The same repository always yields the same ID.
func NewJobID(owner, repo string) JobID {
	return JobID(owner + "/" + repo)
}

// MatchID identifies an unordered pair of repositories
type MatchID string

// NewMatchID returns the same ID regardless of argument order
func NewMatchID(a, b RepoID) MatchID {
	if a > b {
		a, b = b, a
	}
	return MatchID(fmt.Sprintf("%d-%d", a, b))
}

func (x MatchID) String() string {
	return string(x)
}
