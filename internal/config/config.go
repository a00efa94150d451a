package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Security  SecurityConfig
	Pricing   PricingConfig
	Events    EventsConfig
	Logging   LoggingConfig
	Telemetry TelemetryConfig
	SeedFile  string `envconfig:"SEED_FILE"`
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"5000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// StoreConfig selects the document store backend and its connection settings.
type StoreConfig struct {
	Driver             string `envconfig:"STORE_DRIVER" default:"file"`
	FilePath           string `envconfig:"STORE_FILE_PATH" default:"./data/database.json"`
	RedisAddr          string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword      string `envconfig:"REDIS_PASSWORD"`
	RedisDB            int    `envconfig:"REDIS_DB" default:"0"`
	RedisKey           string `envconfig:"REDIS_KEY" default:"restaurant:database"`
	PostgresDSN        string `envconfig:"POSTGRES_DSN"`
	PostgresDocumentID string `envconfig:"POSTGRES_DOCUMENT_ID" default:"default"`
}

type SecurityConfig struct {
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"0s"`
}

type PricingConfig struct {
	Strict bool `envconfig:"PRICING_STRICT" default:"false"`
}

// EventsConfig controls where entity change events are published.
type EventsConfig struct {
	Driver           string   `envconfig:"EVENTS_DRIVER" default:"none"`
	KafkaBrokers     []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopicPrefix string   `envconfig:"KAFKA_TOPIC_PREFIX" default:"restaurant"`
	RabbitMQURL      string   `envconfig:"RABBITMQ_URL"`
	RabbitMQExchange string   `envconfig:"RABBITMQ_EXCHANGE" default:"restaurant.events"`
}

type LoggingConfig struct {
	Level     string `envconfig:"LOG_LEVEL" default:"info"`
	Format    string `envconfig:"LOG_FORMAT" default:"text"`
	Directory string `envconfig:"LOG_DIRECTORY" default:"./logs"`
}

type TelemetryConfig struct {
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	Exporter    string `envconfig:"OTEL_EXPORTER" default:"stdout"`
	Endpoint    string `envconfig:"OTEL_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"restaurant-backoffice"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case "file", "memory", "redis":
	case "postgres":
		if strings.TrimSpace(c.Store.PostgresDSN) == "" {
			return fmt.Errorf("POSTGRES_DSN is required when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	c.Events.Driver = strings.ToLower(strings.TrimSpace(c.Events.Driver))
	switch c.Events.Driver {
	case "", "none":
		c.Events.Driver = "none"
	case "kafka":
		brokers := make([]string, 0, len(c.Events.KafkaBrokers))
		for _, b := range c.Events.KafkaBrokers {
			if trimmed := strings.TrimSpace(b); trimmed != "" {
				brokers = append(brokers, trimmed)
			}
		}
		if len(brokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is required when EVENTS_DRIVER=kafka")
		}
		c.Events.KafkaBrokers = brokers
	case "rabbitmq":
		if strings.TrimSpace(c.Events.RabbitMQURL) == "" {
			return fmt.Errorf("RABBITMQ_URL is required when EVENTS_DRIVER=rabbitmq")
		}
	default:
		return fmt.Errorf("unsupported EVENTS_DRIVER %q", c.Events.Driver)
	}

	if strings.TrimSpace(c.Security.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.Security.JWTTTL < 0 {
		return fmt.Errorf("JWT_TTL must not be negative")
	}
	return nil
}
