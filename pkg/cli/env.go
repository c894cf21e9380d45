package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/m-mizutani/copycat/pkg/cli/config"
	"github.com/m-mizutani/copycat/pkg/infra"
	"github.com/m-mizutani/copycat/pkg/infra/queue"
	"github.com/m-mizutani/copycat/pkg/infra/queue/kafka"
	"github.com/m-mizutani/copycat/pkg/usecase"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// environment is the configuration shared by every command that touches the platform or the store
type environment struct {
	github    config.GitHub
	rateLimit config.RateLimit
	database  config.Database
	queue     config.Queue
	kafka     config.Kafka
	bigQuery  config.BigQuery
	sentry    config.Sentry
	scan      config.Scan
}

func (x *environment) Flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.rateLimit.Flags(),
		x.database.Flags(),
		x.queue.Flags(),
		x.kafka.Flags(),
		x.bigQuery.Flags(),
		x.sentry.Flags(),
		x.scan.Flags(),
	)
}

type queueMode int

const (
	// localQueue processes jobs in this process
	localQueue queueMode = iota
	// publishQueue sends jobs to Kafka when it is configured, else falls back to localQueue
	publishQueue
)

type runtime struct {
	uc       *usecase.UseCase
	queue    *queue.Queue
	producer *kafka.Producer
	closers  []func()
}

func (x *environment) setup(ctx context.Context, mode queueMode) (*runtime, error) {
	logging.From(ctx).Info("configuration",
		slog.Any("GitHub", &x.github),
		slog.Any("RateLimit", &x.rateLimit),
		slog.Any("Database", &x.database),
		slog.Any("Queue", &x.queue),
		slog.Any("Kafka", &x.kafka),
		slog.Any("BigQuery", &x.bigQuery),
		slog.Any("Sentry", &x.sentry),
		slog.Any("Scan", &x.scan),
	)

	if err := x.sentry.Configure(ctx); err != nil {
		return nil, err
	}

	rt := &runtime{
		closers: []func(){func() { x.sentry.Flush(ctx) }},
	}
	ok := false
	defer func() {
		if !ok {
			rt.close(ctx)
		}
	}()

	gh, err := x.github.NewClient(ctx, &x.rateLimit)
	if err != nil {
		return nil, err
	}

	db, closeDB, err := x.database.Open(ctx)
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, closeDB)

	options := []infra.Option{
		infra.WithGitHub(gh),
		infra.WithDatabase(db),
	}

	if mode == publishQueue && x.kafka.Enabled() {
		producer, err := x.kafka.NewProducer()
		if err != nil {
			return nil, err
		}
		rt.producer = producer
		options = append(options, infra.WithJobQueue(producer))
	} else {
		q, err := x.queue.New(ctx)
		if err != nil {
			return nil, err
		}
		rt.queue = q
		options = append(options, infra.WithJobQueue(q))
	}

	bqClient, err := x.bigQuery.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	if bqClient != nil {
		options = append(options, infra.WithBigQuery(bqClient))
	}

	rt.uc = usecase.New(infra.New(options...), usecase.WithScanConfig(x.scan.Config()))
	ok = true
	return rt, nil
}

// close waits for background scans and releases clients in reverse order of creation
func (x *runtime) close(ctx context.Context) {
	logger := logging.From(ctx)

	if x.uc != nil {
		if err := x.uc.Wait(); err != nil {
			logger.Warn("background task failed", slog.Any("error", err))
		}
	}
	if x.producer != nil {
		if err := x.producer.Close(); err != nil {
			logger.Warn("failed to close kafka producer", slog.Any("error", err))
		}
	}
	if x.queue != nil {
		if err := x.queue.Close(); err != nil {
			logger.Warn("failed to close job queue", slog.Any("error", err))
		}
	}
	for i := len(x.closers) - 1; i >= 0; i-- {
		x.closers[i]()
	}
}

// drain processes locally queued jobs until none is waiting. Jobs published to Kafka are left to the workers.
func (x *runtime) drain(ctx context.Context) error {
	if x.queue == nil {
		return nil
	}
	return x.queue.RunUntilIdle(ctx, x.uc.HandleScanJob)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}
