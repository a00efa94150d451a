// Command eventtail follows the change events the server publishes to Kafka
// and logs one line per event.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"restaurantBackoffice/internal/config"
	"restaurantBackoffice/internal/modules/events/domain"
	"restaurantBackoffice/internal/platform/broker"
	"restaurantBackoffice/internal/shared/logging"
)

type tailConfig struct {
	Events  config.EventsConfig
	Logging config.LoggingConfig
	GroupID string `envconfig:"KAFKA_GROUP_ID" default:"restaurant-eventtail"`
}

func main() {
	if err := godotenv.Overload(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
	}
	var cfg tailConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(os.Stdout, logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}))

	if len(cfg.Events.KafkaBrokers) == 0 {
		slog.Error("KAFKA_BROKERS is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	topics := broker.KafkaTopics(cfg.Events.KafkaTopicPrefix)
	slog.Info("tailing events", slog.Any("brokers", cfg.Events.KafkaBrokers), slog.Int("topics", len(topics)))

	wg := broker.StartKafkaConsumers(ctx, cfg.Events.KafkaBrokers, cfg.GroupID, topics, func(msg *domain.Message) error {
		slog.Info("event",
			slog.String("topic", msg.Topic),
			slog.String("resourceId", msg.ResourceID),
			slog.Time("timestamp", msg.Timestamp),
			slog.Any("data", msg.Data),
		)
		return nil
	})
	wg.Wait()
	slog.Info("eventtail stopped")
}
