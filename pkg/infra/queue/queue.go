package queue

import (
	"container/heap"
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/errutil"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/copycat/pkg/utils/metrics"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultAttempts    = 3
	DefaultBackoffBase = 5 * time.Second
)

// Queue is the scan job queue. Jobs are processed by a single worker, highest
// priority first and in arrival order within a priority. A repository is queued
// at most once until its job finishes.
type Queue struct {
	mu      sync.Mutex
	pending jobHeap
	ids     map[types.JobID]struct{}
	seq     uint64

	active    int
	completed int
	failed    int

	wake chan struct{}

	attempts    int
	backoffBase time.Duration
	journalPath string
	journal     *journal
	now         func() time.Time
}

var _ interfaces.JobQueue = (*Queue)(nil)

type Option func(*Queue)

// WithAttempts sets how many times a job is tried before it is reported failed
func WithAttempts(n int) Option {
	return func(x *Queue) {
		x.attempts = n
	}
}

// WithBackoff sets the first retry delay. Later delays double.
func WithBackoff(base time.Duration) Option {
	return func(x *Queue) {
		x.backoffBase = base
	}
}

// WithJournal persists jobs under path. Journaled jobs are enqueued again by New.
func WithJournal(path string) Option {
	return func(x *Queue) {
		x.journalPath = path
	}
}

func WithClock(now func() time.Time) Option {
	return func(x *Queue) {
		x.now = now
	}
}

func New(ctx context.Context, options ...Option) (*Queue, error) {
	q := &Queue{
		ids:         map[types.JobID]struct{}{},
		wake:        make(chan struct{}, 1),
		attempts:    DefaultAttempts,
		backoffBase: DefaultBackoffBase,
		now:         time.Now,
	}
	for _, opt := range options {
		opt(q)
	}

	if q.attempts < 1 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "attempts must be positive", goerr.V("attempts", q.attempts))
	}

	if q.journalPath != "" {
		j, err := openJournal(q.journalPath, logging.From(ctx))
		if err != nil {
			return nil, err
		}
		q.journal = j

		jobs, err := j.load()
		if err != nil {
			return nil, err
		}
		for _, job := range jobs {
			q.push(job)
		}
		if len(jobs) > 0 {
			logging.From(ctx).Info("restored scan jobs from journal", slog.Int("count", len(jobs)))
		}
	}

	return q, nil
}

// Close releases the journal
func (x *Queue) Close() error {
	if x.journal == nil {
		return nil
	}
	return x.journal.close()
}

// Enqueue adds job and reports false when the same repository is already waiting or running
func (x *Queue) Enqueue(ctx context.Context, job *model.ScanJob) (bool, error) {
	if err := job.Validate(); err != nil {
		return false, err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.ids[job.ID()]; ok {
		logging.From(ctx).Debug("scan job is already queued", slog.Any("job", job.ID()))
		return false, nil
	}

	queued := *job
	if queued.EnqueuedAt.IsZero() {
		queued.EnqueuedAt = x.now()
	}
	if x.journal != nil {
		if err := x.journal.put(&queued); err != nil {
			return false, err
		}
	}

	x.push(&queued)
	return true, nil
}

// push requires x.mu unless called before the queue is shared
func (x *Queue) push(job *model.ScanJob) {
	x.seq++
	heap.Push(&x.pending, &item{job: job, seq: x.seq})
	x.ids[job.ID()] = struct{}{}
	metrics.QueueDepth.Set(float64(x.pending.Len()))

	select {
	case x.wake <- struct{}{}:
	default:
	}
}

func (x *Queue) Stats(ctx context.Context) (*model.QueueStats, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	return &model.QueueStats{
		Waiting:   x.pending.Len(),
		Active:    x.active,
		Completed: x.completed,
		Failed:    x.failed,
	}, nil
}

// Run processes jobs until ctx is cancelled
func (x *Queue) Run(ctx context.Context, handler interfaces.JobHandler) error {
	for {
		job := x.next(ctx, true)
		if job == nil {
			return nil
		}
		x.process(ctx, job, handler)
	}
}

// RunUntilIdle processes jobs until no job is waiting
func (x *Queue) RunUntilIdle(ctx context.Context, handler interfaces.JobHandler) error {
	for {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "queue processing interrupted")
		}
		job := x.next(ctx, false)
		if job == nil {
			return nil
		}
		x.process(ctx, job, handler)
	}
}

func (x *Queue) next(ctx context.Context, wait bool) *model.ScanJob {
	for {
		x.mu.Lock()
		if x.pending.Len() > 0 {
			it := heap.Pop(&x.pending).(*item)
			x.active++
			metrics.QueueDepth.Set(float64(x.pending.Len()))
			x.mu.Unlock()
			return it.job
		}
		x.mu.Unlock()

		if !wait {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-x.wake:
		}
	}
}

func (x *Queue) process(ctx context.Context, job *model.ScanJob, handler interfaces.JobHandler) {
	logger := logging.From(ctx).With(slog.Any("job", job.ID()))

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = x.backoffBase
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = x.backoffBase << x.attempts
	bo.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(x.attempts-1)), ctx)

	op := func() error {
		job.Attempts++
		err := handler(logging.With(ctx, logger), job)
		if err != nil && (errors.Is(err, types.ErrValidationFailed) || errors.Is(err, types.ErrInvalidURL)) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		metrics.QueueJobs.WithLabelValues("retried").Inc()
		logger.Warn("scan job failed, retrying",
			slog.Int("attempt", job.Attempts),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	}

	err := backoff.RetryNotify(op, policy, notify)
	x.finish(ctx, job, err)
}

func (x *Queue) finish(ctx context.Context, job *model.ScanJob, err error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.active--
	delete(x.ids, job.ID())

	if err != nil && ctx.Err() != nil {
		// interrupted by shutdown; the journal entry is kept and replayed on restart
		logging.From(ctx).Info("scan job interrupted", slog.Any("job", job.ID()))
		return
	}

	if x.journal != nil {
		if jErr := x.journal.delete(job); jErr != nil {
			errutil.HandleError(ctx, "failed to remove finished job from journal", jErr)
		}
	}

	if err != nil {
		x.failed++
		metrics.QueueJobs.WithLabelValues("failed").Inc()
		errutil.HandleError(ctx, "scan job failed", goerr.Wrap(err, "scan job failed",
			goerr.V("job", job.ID()),
			goerr.V("attempts", job.Attempts),
		))
		return
	}

	x.completed++
	metrics.QueueJobs.WithLabelValues("completed").Inc()
	logging.From(ctx).Info("scan job completed", slog.Any("job", job.ID()), slog.Int("attempts", job.Attempts))
}
