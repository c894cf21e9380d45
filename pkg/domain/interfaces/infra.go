package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub LocalGit JobQueue

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
)

type BigQueryInsertOption func(*BigQueryInsertConfig)

type BigQueryInsertConfig struct {
	EnableRetry bool
}

func WithRetry(retry bool) BigQueryInsertOption {
	return func(c *BigQueryInsertConfig) {
		c.EnableRetry = retry
	}
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, rows []any, opts ...BigQueryInsertOption) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHub is the rate-governed gateway to the hosting API
type GitHub interface {
	GetRepository(ctx context.Context, owner, name string) (*model.GitHubRepository, error)

	// GetCommits returns up to limit commits, newest first. Messages keep the first line only.
	GetCommits(ctx context.Context, owner, name string, limit int) ([]*model.Commit, error)

	SearchRepositories(ctx context.Context, query string, limit int) ([]*model.GitHubRepository, error)
	SearchCode(ctx context.Context, query string, limit int) ([]*model.GitHubRepository, error)

	// FindReposWithMatchingCommits searches the platform for repositories that may share
	// commits with the given history. Repositories of excludeOwner are skipped.
	FindReposWithMatchingCommits(ctx context.Context, commits []*model.Commit, excludeOwner string, limit int) ([]*model.GitHubRepository, error)

	// CheckRepoForMatchingCommits never fails; an unreachable repository yields zero matches.
	CheckRepoForMatchingCommits(ctx context.Context, owner, name string, targets []*model.Commit, minMatches int) *model.CommitCheckResult

	GetAccountStatus(ctx context.Context, username string) types.AccountStatus
	GetUser(ctx context.Context, username string) (*model.GitHubUser, error)
	ListUserRepositories(ctx context.Context, username string, limit int) ([]*model.GitHubRepository, error)
}

// LocalGit reads commit history from a local clone
type LocalGit interface {
	ReadHistory(ctx context.Context, dir string, limit int) (*model.LocalHistory, error)
}

// JobHandler processes one scan job. A returned error schedules a retry.
type JobHandler func(ctx context.Context, job *model.ScanJob) error

// JobQueue is a retrying work queue of repository scans
type JobQueue interface {
	// Enqueue returns false when a job with the same ID is already waiting or running
	Enqueue(ctx context.Context, job *model.ScanJob) (bool, error)
	Stats(ctx context.Context) (*model.QueueStats, error)
}
