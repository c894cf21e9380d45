package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/m-mizutani/copycat/pkg/domain/mock"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/infra/queue/kafka"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	kafkago "github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs []kafkago.Message
}

func (x *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	x.msgs = append(x.msgs, msgs...)
	return nil
}

func (x *fakeWriter) Close() error { return nil }

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []int64
}

func (x *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	x.mu.Lock()
	if len(x.msgs) > 0 {
		msg := x.msgs[0]
		x.msgs = x.msgs[1:]
		x.mu.Unlock()
		return msg, nil
	}
	x.mu.Unlock()

	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (x *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, m := range msgs {
		x.committed = append(x.committed, m.Offset)
	}
	return nil
}

func (x *fakeReader) Close() error { return nil }

func TestPublish(t *testing.T) {
	w := &fakeWriter{}
	p := kafka.NewProducerWithWriter(w)

	gt.NoError(t, p.Publish(context.Background(), &model.ScanJob{Owner: "octo", Repo: "app", Priority: 20}))
	gt.V(t, len(w.msgs)).Equal(1)
	gt.V(t, string(w.msgs[0].Key)).Equal("octo/app")

	var job model.ScanJob
	gt.NoError(t, json.Unmarshal(w.msgs[0].Value, &job))
	gt.V(t, job.Owner).Equal("octo")
	gt.V(t, job.Repo).Equal("app")
	gt.V(t, job.Priority).Equal(20)

	err := p.Publish(context.Background(), &model.ScanJob{Owner: "octo"})
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
	gt.V(t, len(w.msgs)).Equal(1)
}

func TestProducerAsJobQueue(t *testing.T) {
	w := &fakeWriter{}
	p := kafka.NewProducerWithWriter(w)

	added, err := p.Enqueue(context.Background(), &model.ScanJob{Owner: "octo", Repo: "app", Priority: 10})
	gt.NoError(t, err)
	gt.True(t, added)
	gt.V(t, len(w.msgs)).Equal(1)

	_, err = p.Enqueue(context.Background(), &model.ScanJob{Repo: "app"})
	gt.True(t, errors.Is(err, types.ErrValidationFailed))

	stats, err := p.Stats(context.Background())
	gt.NoError(t, err)
	gt.V(t, *stats).Equal(model.QueueStats{})
}

func TestConsumerRun(t *testing.T) {
	valid, err := json.Marshal(&model.ScanJob{Owner: "octo", Repo: "app", Priority: 15})
	gt.NoError(t, err)
	missingRepo, err := json.Marshal(&model.ScanJob{Owner: "octo"})
	gt.NoError(t, err)

	r := &fakeReader{msgs: []kafkago.Message{
		{Offset: 1, Value: valid},
		{Offset: 2, Value: []byte("{broken")},
		{Offset: 3, Value: missingRepo},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var received []*model.ScanJob
	q := &mock.JobQueueMock{
		EnqueueFunc: func(ctx context.Context, job *model.ScanJob) (bool, error) {
			if err := job.Validate(); err != nil {
				if job.Repo == "" {
					defer cancel()
				}
				return false, err
			}
			received = append(received, job)
			return true, nil
		},
	}

	gt.NoError(t, kafka.NewConsumerWithReader(r).Run(ctx, q))

	gt.V(t, len(received)).Equal(1)
	gt.V(t, received[0].Owner).Equal("octo")
	gt.V(t, received[0].Priority).Equal(15)
	gt.V(t, len(q.EnqueueCalls())).Equal(2)
	// the invalid job is still committed so that it is not redelivered
	gt.True(t, len(r.committed) >= 2)
	gt.V(t, r.committed[:2]).Equal([]int64{1, 2})
}

func TestConsumerEnqueueFailure(t *testing.T) {
	valid, err := json.Marshal(&model.ScanJob{Owner: "octo", Repo: "app"})
	gt.NoError(t, err)
	r := &fakeReader{msgs: []kafkago.Message{{Offset: 7, Value: valid}}}

	q := &mock.JobQueueMock{
		EnqueueFunc: func(ctx context.Context, job *model.ScanJob) (bool, error) {
			return false, goerr.New("journal is broken")
		},
	}

	err = kafka.NewConsumerWithReader(r).Run(context.Background(), q)
	gt.Error(t, err)
	gt.V(t, len(r.committed)).Equal(0)
}

func TestNewRequiresBrokers(t *testing.T) {
	_, err := kafka.NewProducer(nil, "jobs")
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, err = kafka.NewConsumer([]string{"localhost:9092"}, "jobs", "")
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}
