package broker

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	"restaurantBackoffice/internal/modules/events/application/port"
	"restaurantBackoffice/internal/modules/events/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes each event to "<prefix>.<entity>.<action>", keyed by
// resource id so updates to one record stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
	prefix string
}

func NewKafkaPublisher(brokers []string, prefix string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			MaxAttempts:            3,
			WriteTimeout:           publishTimeout,
		},
		prefix: prefix,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg *domain.Message) error {
	body, err := encodeMessage(msg)
	if err != nil {
		return err
	}
	topic := prefixedTopic(p.prefix, msg.Topic)

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(msg.ResourceID),
		Value: body,
		Time:  msg.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("kafka write %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var _ port.Publisher = (*KafkaPublisher)(nil)
