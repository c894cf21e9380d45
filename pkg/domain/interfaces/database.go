package interfaces

import (
	"context"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
)

type RepositoryStore interface {
	// UpsertRepository creates or updates metadata keyed by full name. Scan status,
	// suspicion score and first commit date of an existing record are preserved.
	UpsertRepository(ctx context.Context, repo *model.Repository) (*model.Repository, error)
	GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error)
	GetRepositoryByFullName(ctx context.Context, fullName string) (*model.Repository, error)
	ListRepositoriesByOwner(ctx context.Context, owner string) ([]*model.Repository, error)
	ListRepositories(ctx context.Context) ([]*model.Repository, error)
	UpdateScanStatus(ctx context.Context, fullName string, status types.ScanStatus, at time.Time) error
	UpdateSuspicionScore(ctx context.Context, id types.RepoID, score int) error
	UpdateFirstCommitAt(ctx context.Context, id types.RepoID, at time.Time) error
	CountRepositories(ctx context.Context) (int, error)
}

type CommitStore interface {
	// ReplaceCommits atomically removes all commits of the repository and stores the
	// given set. Duplicate SHAs are stored once.
	ReplaceCommits(ctx context.Context, repoID types.RepoID, commits []*model.Commit) error
	ListCommits(ctx context.Context, repoID types.RepoID) ([]*model.Commit, error)

	// FindMatchingCommits returns stored commits with the same normalized message and
	// minute as the given commit, excluding excludeRepo
	FindMatchingCommits(ctx context.Context, normalized string, minute time.Time, excludeRepo types.RepoID) ([]*model.Commit, error)

	// FindDuplicateCommitGroups returns (normalized message, minute) groups spanning more than one repository
	FindDuplicateCommitGroups(ctx context.Context) ([]*model.DuplicateGroup, error)
	CountCommits(ctx context.Context) (int, error)
}

type MatchStore interface {
	// UpsertMatch stores m keyed by its ID. CreatedAt and Status of an existing match are preserved.
	UpsertMatch(ctx context.Context, m *model.Match) error
	GetMatch(ctx context.Context, id types.MatchID) (*model.Match, error)
	ListMatchesByRepo(ctx context.Context, repoID types.RepoID) ([]*model.Match, error)
	ListMatchesByOwner(ctx context.Context, owner string) ([]*model.Match, error)

	// ListMatches returns matches with confidence at least minScore, highest first.
	// limit <= 0 means no limit.
	ListMatches(ctx context.Context, minScore, limit int) ([]*model.Match, error)
	UpdateMatchStatus(ctx context.Context, id types.MatchID, status types.MatchStatus) error
	CountMatches(ctx context.Context) (int, error)
}

type BlacklistStore interface {
	// UpsertBlacklistEntry creates the entry when missing and otherwise keeps it unchanged
	UpsertBlacklistEntry(ctx context.Context, entry *model.BlacklistEntry) error
	GetBlacklistEntry(ctx context.Context, username string) (*model.BlacklistEntry, error)
	ListBlacklistEntries(ctx context.Context, query model.BlacklistQuery) (*model.BlacklistPage, error)
	UpdateBlacklistStats(ctx context.Context, username string, agg model.BlacklistAggregate, at time.Time) error
	UpdateAccountStatus(ctx context.Context, username string, status types.AccountStatus, at time.Time) error
}

type ReportStore interface {
	CreateReport(ctx context.Context, report *model.Report) error
	ListReports(ctx context.Context) ([]*model.Report, error)
}

// Database is the persisted state of copycat
type Database interface {
	RepositoryStore
	CommitStore
	MatchStore
	BlacklistStore
	ReportStore
}

// SessionStore keeps profile scan sessions for their lifetime. Sessions are created
// when a scan starts, advanced on every phase change and deleted when a scan fails.
type SessionStore interface {
	PutSession(ctx context.Context, session *model.ProfileScanSession) error
	// AdvanceSession stores session only while the stored session has the same ID
	// and is not completed. It reports whether the session was stored.
	AdvanceSession(ctx context.Context, session *model.ProfileScanSession) (bool, error)
	GetSession(ctx context.Context, username string) (*model.ProfileScanSession, error)
	DeleteSession(ctx context.Context, username string) error
}
