package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
)

type UseCase interface {
	// Commit index
	IndexRepository(ctx context.Context, owner, repo string) (*model.Repository, error)
	IndexFromURL(ctx context.Context, url string) (*model.Repository, error)
	IndexLocalRepository(ctx context.Context, dir string) (*model.Repository, error)

	// Match engine
	CompareRepositories(ctx context.Context, id1, id2 types.RepoID) (*model.Match, error)
	FindMatchesForRepo(ctx context.Context, repoID types.RepoID) ([]*model.Match, error)
	FindMatchesForAllRepos(ctx context.Context) (int, error)
	FindMatchesAcrossGitHub(ctx context.Context, owner, repo string) ([]*model.CandidateMatch, error)
	ListHighConfidenceMatches(ctx context.Context, limit int) ([]*model.Match, error)
	GetMatchDetails(ctx context.Context, id types.MatchID) (*model.MatchDetails, error)
	VerifyMatch(ctx context.Context, id types.MatchID) (bool, error)

	// Scan orchestration
	ScanRepository(ctx context.Context, owner, repo string) (*model.RepoScanResult, error)
	EnqueueScan(ctx context.Context, owner, repo string, priority int) (bool, error)
	EnqueueScanFromURL(ctx context.Context, url string, priority int) (bool, error)
	QueueStats(ctx context.Context) (*model.QueueStats, error)
	HandleScanJob(ctx context.Context, job *model.ScanJob) error
	StartProfileScan(ctx context.Context, username string) (*model.ScanHandle, error)
	RunProfileScan(ctx context.Context, username string) error
	GetProfileScanStatus(ctx context.Context, username string) (*model.ProfileScanStatus, error)
	AnalyzeProfile(ctx context.Context, username string) (*model.ProfileAnalysis, error)
	ScanSuspiciousProfile(ctx context.Context, username string) (*model.ProfileAnalysis, error)

	// Seed discovery
	DiscoverPopular(ctx context.Context, languages []string, minStars int) (int, error)
	DiscoverTrending(ctx context.Context, since time.Time) (int, error)
	DiscoverSimilarNames(ctx context.Context, fullName string) (int, error)

	// Blacklist
	ListBlacklist(ctx context.Context, query model.BlacklistQuery) (*model.BlacklistPage, error)
	GetScammer(ctx context.Context, username string) (*model.Scammer, error)
	BlacklistStats(ctx context.Context) (*model.BlacklistStats, error)
	CheckAccountStatus(ctx context.Context, username string) (types.AccountStatus, error)
	RefreshAccountStatuses(ctx context.Context) (*model.AccountRefreshResult, error)

	// Reports and statistics
	CreateReport(ctx context.Context, input *model.ReportInput) (*model.Report, error)
	ListReports(ctx context.Context) ([]*model.Report, error)
	Stats(ctx context.Context) (*model.Stats, error)
	ExportMatches(ctx context.Context, minScore int) (int, error)
}
