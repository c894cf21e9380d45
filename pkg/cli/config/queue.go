package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/copycat/pkg/infra/queue"
	"github.com/urfave/cli/v3"
)

type Queue struct {
	journal  string
	attempts int64
	backoff  time.Duration
}

func (x *Queue) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "queue-journal",
			Usage:       "Directory of the job journal. Waiting jobs survive a restart when set",
			Category:    "Queue",
			Destination: &x.journal,
			Sources:     cli.EnvVars("COPYCAT_QUEUE_JOURNAL"),
		},
		&cli.Int64Flag{
			Name:        "queue-attempts",
			Usage:       "Attempts per scan job before it is reported failed",
			Category:    "Queue",
			Value:       queue.DefaultAttempts,
			Destination: &x.attempts,
			Sources:     cli.EnvVars("COPYCAT_QUEUE_ATTEMPTS"),
		},
		&cli.DurationFlag{
			Name:        "queue-backoff",
			Usage:       "First retry delay of a failed scan job, doubled on each retry",
			Category:    "Queue",
			Value:       queue.DefaultBackoffBase,
			Destination: &x.backoff,
			Sources:     cli.EnvVars("COPYCAT_QUEUE_BACKOFF"),
		},
	}
}

func (x *Queue) New(ctx context.Context) (*queue.Queue, error) {
	opts := []queue.Option{
		queue.WithAttempts(int(x.attempts)),
		queue.WithBackoff(x.backoff),
	}
	if x.journal != "" {
		opts = append(opts, queue.WithJournal(x.journal))
	}
	return queue.New(ctx, opts...)
}

func (x *Queue) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Journal", x.journal),
		slog.Int64("Attempts", x.attempts),
		slog.Duration("Backoff", x.backoff),
	)
}
