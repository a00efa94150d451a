package broker

import (
	"fmt"

	"restaurantBackoffice/internal/config"
	"restaurantBackoffice/internal/modules/events/application/port"
)

// NewPublisher returns the publisher selected by EVENTS_DRIVER.
func NewPublisher(cfg config.EventsConfig) (port.Publisher, error) {
	switch cfg.Driver {
	case "", "none":
		return NoopPublisher{}, nil
	case "kafka":
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopicPrefix), nil
	case "rabbitmq":
		return NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
	default:
		return nil, fmt.Errorf("unsupported events driver %q", cfg.Driver)
	}
}
