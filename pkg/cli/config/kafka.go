package config

import (
	"log/slog"

	"github.com/m-mizutani/copycat/pkg/infra/queue/kafka"
	"github.com/urfave/cli/v3"
)

type Kafka struct {
	brokers []string
	topic   string
	groupID string
}

func (x *Kafka) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "kafka-brokers",
			Usage:       "Kafka brokers. Scan jobs are distributed through Kafka when set",
			Category:    "Kafka",
			Destination: &x.brokers,
			Sources:     cli.EnvVars("COPYCAT_KAFKA_BROKERS"),
		},
		&cli.StringFlag{
			Name:        "kafka-topic",
			Usage:       "Kafka topic of scan jobs",
			Category:    "Kafka",
			Value:       "copycat-scan-jobs",
			Destination: &x.topic,
			Sources:     cli.EnvVars("COPYCAT_KAFKA_TOPIC"),
		},
		&cli.StringFlag{
			Name:        "kafka-group-id",
			Usage:       "Kafka consumer group of scan workers",
			Category:    "Kafka",
			Value:       "copycat-worker",
			Destination: &x.groupID,
			Sources:     cli.EnvVars("COPYCAT_KAFKA_GROUP_ID"),
		},
	}
}

func (x *Kafka) Enabled() bool {
	return len(x.brokers) > 0
}

func (x *Kafka) NewProducer() (*kafka.Producer, error) {
	return kafka.NewProducer(x.brokers, x.topic)
}

func (x *Kafka) NewConsumer() (*kafka.Consumer, error) {
	return kafka.NewConsumer(x.brokers, x.topic, x.groupID)
}

func (x *Kafka) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Brokers", x.brokers),
		slog.String("Topic", x.topic),
		slog.String("GroupID", x.groupID),
	)
}
