package broker

import (
	"context"
	"sync"

	"restaurantBackoffice/internal/modules/events/domain"
)

// StartKafkaConsumers runs one consumer per topic and returns a WaitGroup
// that completes once all of them have stopped.
func StartKafkaConsumers(
	ctx context.Context,
	brokers []string,
	groupID string,
	topics []string,
	handler func(*domain.Message) error,
) *sync.WaitGroup {
	var wg sync.WaitGroup
	if len(brokers) == 0 {
		return &wg
	}
	for _, topic := range topics {
		wg.Add(1)
		go func(tp string) {
			defer wg.Done()
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			_ = consumer.Consume(ctx, handler)
		}(topic)
	}
	return &wg
}
