package queue_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/infra/queue"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (x *recorder) add(job *model.ScanJob) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.calls = append(x.calls, string(job.ID()))
}

func (x *recorder) list() []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]string{}, x.calls...)
}

func newQueue(t *testing.T, opts ...queue.Option) *queue.Queue {
	opts = append([]queue.Option{queue.WithBackoff(time.Millisecond)}, opts...)
	q, err := queue.New(context.Background(), opts...)
	gt.NoError(t, err)
	t.Cleanup(func() { gt.NoError(t, q.Close()) })
	return q
}

func enqueue(t *testing.T, q *queue.Queue, owner, repo string, priority int) bool {
	ok, err := q.Enqueue(context.Background(), &model.ScanJob{Owner: owner, Repo: repo, Priority: priority})
	gt.NoError(t, err)
	return ok
}

func TestPriorityOrder(t *testing.T) {
	q := newQueue(t)
	gt.True(t, enqueue(t, q, "o", "low1", 10))
	gt.True(t, enqueue(t, q, "o", "high1", 30))
	gt.True(t, enqueue(t, q, "o", "low2", 10))
	gt.True(t, enqueue(t, q, "o", "high2", 30))
	gt.True(t, enqueue(t, q, "o", "report", 100))

	rec := &recorder{}
	gt.NoError(t, q.RunUntilIdle(context.Background(), func(ctx context.Context, job *model.ScanJob) error {
		rec.add(job)
		return nil
	}))

	gt.V(t, rec.list()).Equal([]string{"o/report", "o/high1", "o/high2", "o/low1", "o/low2"})

	stats := gt.R1(q.Stats(context.Background())).NoError(t)
	gt.V(t, *stats).Equal(model.QueueStats{Completed: 5})
}

func TestDuplicateEnqueue(t *testing.T) {
	q := newQueue(t)
	gt.True(t, enqueue(t, q, "o", "r", 10))
	gt.False(t, enqueue(t, q, "o", "r", 50))

	stats := gt.R1(q.Stats(context.Background())).NoError(t)
	gt.V(t, stats.Waiting).Equal(1)

	gt.NoError(t, q.RunUntilIdle(context.Background(), func(ctx context.Context, job *model.ScanJob) error {
		// a running job still collapses duplicates
		ok, err := q.Enqueue(ctx, &model.ScanJob{Owner: "o", Repo: "r"})
		gt.NoError(t, err)
		gt.False(t, ok)
		return nil
	}))

	// finished jobs can be queued again
	gt.True(t, enqueue(t, q, "o", "r", 10))
}

func TestEnqueueInvalidJob(t *testing.T) {
	q := newQueue(t)
	_, err := q.Enqueue(context.Background(), &model.ScanJob{Owner: "o"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
}

func TestRetry(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		q := newQueue(t)
		enqueue(t, q, "o", "r", 10)

		var attempts []int
		gt.NoError(t, q.RunUntilIdle(context.Background(), func(ctx context.Context, job *model.ScanJob) error {
			attempts = append(attempts, job.Attempts)
			if job.Attempts < 3 {
				return goerr.New("temporary failure")
			}
			return nil
		}))

		gt.V(t, attempts).Equal([]int{1, 2, 3})
		stats := gt.R1(q.Stats(context.Background())).NoError(t)
		gt.V(t, stats.Completed).Equal(1)
		gt.V(t, stats.Failed).Equal(0)
	})

	t.Run("reports failure after all attempts", func(t *testing.T) {
		q := newQueue(t)
		enqueue(t, q, "o", "r", 10)

		calls := 0
		gt.NoError(t, q.RunUntilIdle(context.Background(), func(ctx context.Context, job *model.ScanJob) error {
			calls++
			return goerr.New("always fails")
		}))

		gt.V(t, calls).Equal(3)
		stats := gt.R1(q.Stats(context.Background())).NoError(t)
		gt.V(t, stats.Failed).Equal(1)
		gt.V(t, stats.Completed).Equal(0)
	})

	t.Run("validation errors are not retried", func(t *testing.T) {
		q := newQueue(t)
		enqueue(t, q, "o", "r", 10)

		calls := 0
		gt.NoError(t, q.RunUntilIdle(context.Background(), func(ctx context.Context, job *model.ScanJob) error {
			calls++
			return goerr.Wrap(types.ErrValidationFailed, "bad job")
		}))

		gt.V(t, calls).Equal(1)
		stats := gt.R1(q.Stats(context.Background())).NoError(t)
		gt.V(t, stats.Failed).Equal(1)
	})

	t.Run("attempts are configurable", func(t *testing.T) {
		q := newQueue(t, queue.WithAttempts(1))
		enqueue(t, q, "o", "r", 10)

		calls := 0
		gt.NoError(t, q.RunUntilIdle(context.Background(), func(ctx context.Context, job *model.ScanJob) error {
			calls++
			return goerr.New("fails")
		}))
		gt.V(t, calls).Equal(1)
	})
}

func TestInvalidAttempts(t *testing.T) {
	_, err := queue.New(context.Background(), queue.WithAttempts(0))
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestRunWaitsForJobs(t *testing.T) {
	q := newQueue(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handled := make(chan string, 2)
	done := make(chan error, 1)
	go func() {
		done <- q.Run(ctx, func(ctx context.Context, job *model.ScanJob) error {
			handled <- string(job.ID())
			return nil
		})
	}()

	enqueue(t, q, "o", "first", 10)
	select {
	case id := <-handled:
		gt.V(t, id).Equal("o/first")
	case <-time.After(5 * time.Second):
		t.Fatal("job was not handled")
	}

	enqueue(t, q, "o", "second", 10)
	select {
	case id := <-handled:
		gt.V(t, id).Equal("o/second")
	case <-time.After(5 * time.Second):
		t.Fatal("job was not handled")
	}

	cancel()
	select {
	case err := <-done:
		gt.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestJournal(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	q1, err := queue.New(ctx, queue.WithJournal(dir), queue.WithBackoff(time.Millisecond))
	gt.NoError(t, err)
	gt.True(t, enqueue(t, q1, "o", "a", 10))
	gt.True(t, enqueue(t, q1, "o", "b", 20))
	gt.NoError(t, q1.Close())

	q2, err := queue.New(ctx, queue.WithJournal(dir), queue.WithBackoff(time.Millisecond))
	gt.NoError(t, err)
	stats := gt.R1(q2.Stats(ctx)).NoError(t)
	gt.V(t, stats.Waiting).Equal(2)

	// restored jobs still collapse duplicates
	gt.False(t, enqueue(t, q2, "o", "a", 10))

	rec := &recorder{}
	gt.NoError(t, q2.RunUntilIdle(ctx, func(ctx context.Context, job *model.ScanJob) error {
		rec.add(job)
		return nil
	}))
	gt.V(t, rec.list()).Equal([]string{"o/b", "o/a"})
	gt.NoError(t, q2.Close())

	q3, err := queue.New(ctx, queue.WithJournal(dir))
	gt.NoError(t, err)
	defer func() { gt.NoError(t, q3.Close()) }()
	stats = gt.R1(q3.Stats(ctx)).NoError(t)
	gt.V(t, stats.Waiting).Equal(0)
}
