package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// EnqueueScan submits owner/repo to the job queue. It returns false when the
// repository is already waiting or running.
func (x *UseCase) EnqueueScan(ctx context.Context, owner, repo string, priority int) (bool, error) {
	job := &model.ScanJob{
		Owner:      owner,
		Repo:       repo,
		Priority:   priority,
		EnqueuedAt: now(ctx),
	}
	if err := job.Validate(); err != nil {
		return false, err
	}

	q := x.clients.JobQueue()
	if q == nil {
		return false, goerr.Wrap(types.ErrInvalidOption, "job queue is not configured")
	}

	added, err := q.Enqueue(ctx, job)
	if err != nil {
		return false, goerr.Wrap(err, "failed to enqueue scan job", goerr.V("job", job.ID()))
	}

	logging.From(ctx).Debug("Enqueued scan job",
		slog.Any("job", job.ID()),
		slog.Int("priority", priority),
		slog.Bool("added", added),
	)
	return added, nil
}

// EnqueueScanFromURL parses a hosting URL and enqueues the repository
func (x *UseCase) EnqueueScanFromURL(ctx context.Context, url string, priority int) (bool, error) {
	owner, repo, err := model.ParseRepoURL(url)
	if err != nil {
		return false, err
	}
	return x.EnqueueScan(ctx, owner, repo, priority)
}

func (x *UseCase) QueueStats(ctx context.Context) (*model.QueueStats, error) {
	q := x.clients.JobQueue()
	if q == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "job queue is not configured")
	}

	stats, err := q.Stats(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get queue stats")
	}
	return stats, nil
}

// HandleScanJob indexes the job's repository and matches it against the corpus.
// A returned error makes the queue retry the job.
func (x *UseCase) HandleScanJob(ctx context.Context, job *model.ScanJob) error {
	ctx = logging.With(ctx, logging.From(ctx).With(
		slog.Any("job", job.ID()),
		slog.Int("attempt", job.Attempts),
	))

	result, err := x.ScanRepository(ctx, job.Owner, job.Repo)
	if err != nil {
		return err
	}

	logging.From(ctx).Info("Scan job done",
		slog.Int("commits", result.Commits),
		slog.Int("matches", len(result.Matches)),
	)
	return nil
}
