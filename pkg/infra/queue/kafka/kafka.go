// Package kafka carries scan jobs over a Kafka topic. Producers publish jobs from
// anywhere; the consumer runs next to the worker and feeds them into the job queue.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer messageWriter
}

func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no kafka brokers configured")
	}
	if topic == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "kafka topic is empty")
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafka.RequireAll,
		},
	}, nil
}

// Publish sends job keyed by its identity so that jobs of one repository stay in one partition
func (x *Producer) Publish(ctx context.Context, job *model.ScanJob) error {
	if err := job.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(job)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal scan job", goerr.V("job", job.ID()))
	}

	msg := kafka.Message{
		Key:   []byte(job.ID()),
		Value: raw,
		Time:  time.Now(),
	}
	if err := x.writer.WriteMessages(ctx, msg); err != nil {
		return goerr.Wrap(err, "failed to write scan job to kafka", goerr.V("job", job.ID()))
	}

	return nil
}

var _ interfaces.JobQueue = (*Producer)(nil)

// Enqueue publishes job. Duplicates are resolved by the consuming queue, so a
// published job is always reported as added.
func (x *Producer) Enqueue(ctx context.Context, job *model.ScanJob) (bool, error) {
	if err := x.Publish(ctx, job); err != nil {
		return false, err
	}
	return true, nil
}

// Stats reports nothing; the counts live with the consuming worker
func (x *Producer) Stats(ctx context.Context) (*model.QueueStats, error) {
	return &model.QueueStats{}, nil
}

func (x *Producer) Close() error {
	if err := x.writer.Close(); err != nil {
		return goerr.Wrap(err, "failed to close kafka writer")
	}
	return nil
}

type Consumer struct {
	reader messageReader
}

func NewConsumer(brokers []string, topic, groupID string) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no kafka brokers configured")
	}
	if topic == "" || groupID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "kafka topic and group are required",
			goerr.V("topic", topic),
			goerr.V("group", groupID),
		)
	}

	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        brokers,
			Topic:          topic,
			GroupID:        groupID,
			MinBytes:       1,
			MaxBytes:       10e6,
			MaxWait:        time.Second,
			StartOffset:    kafka.FirstOffset,
			CommitInterval: 0,
		}),
	}, nil
}

// Run reads scan jobs and enqueues them until ctx is cancelled. A message is
// committed once it is enqueued or found malformed; malformed messages are dropped.
func (x *Consumer) Run(ctx context.Context, queue interfaces.JobQueue) error {
	logger := logging.From(ctx)

	for {
		msg, err := x.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return goerr.Wrap(err, "failed to fetch kafka message")
		}

		var job model.ScanJob
		if err := json.Unmarshal(msg.Value, &job); err != nil {
			logger.Warn("dropping malformed scan job message",
				slog.String("key", string(msg.Key)),
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		} else {
			queued, err := queue.Enqueue(ctx, &job)
			switch {
			case errors.Is(err, types.ErrValidationFailed):
				logger.Warn("dropping invalid scan job", slog.Any("job", job), slog.Any("error", err))
			case err != nil:
				return goerr.Wrap(err, "failed to enqueue scan job from kafka", goerr.V("job", job.ID()))
			default:
				logger.Debug("scan job received from kafka",
					slog.Any("job", job.ID()),
					slog.Bool("queued", queued),
				)
			}
		}

		if err := x.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return goerr.Wrap(err, "failed to commit kafka message", goerr.V("offset", msg.Offset))
		}
	}
}

func (x *Consumer) Close() error {
	if err := x.reader.Close(); err != nil {
		return goerr.Wrap(err, "failed to close kafka reader")
	}
	return nil
}
