package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "5000" {
		t.Fatalf("unexpected port: %s", cfg.Server.Port)
	}
	if cfg.Store.Driver != "file" {
		t.Fatalf("unexpected store driver: %s", cfg.Store.Driver)
	}
	if cfg.Events.Driver != "none" {
		t.Fatalf("unexpected events driver: %s", cfg.Events.Driver)
	}
	if cfg.Security.JWTTTL != 0 {
		t.Fatalf("expected no token expiry by default, got %s", cfg.Security.JWTTTL)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}
}

func TestLoadValidatesDrivers(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown store", env: map[string]string{"STORE_DRIVER": "mongo"}},
		{name: "postgres without dsn", env: map[string]string{"STORE_DRIVER": "postgres"}},
		{name: "kafka without brokers", env: map[string]string{"EVENTS_DRIVER": "kafka"}},
		{name: "rabbitmq without url", env: map[string]string{"EVENTS_DRIVER": "rabbitmq"}},
		{name: "unknown events", env: map[string]string{"EVENTS_DRIVER": "nats"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret")
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected validation error for %v", tc.env)
			}
		})
	}
}

func TestLoadKafkaBrokersTrimmed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("EVENTS_DRIVER", " Kafka ")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, ,broker-2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Events.Driver != "kafka" {
		t.Fatalf("unexpected driver: %s", cfg.Events.Driver)
	}
	if len(cfg.Events.KafkaBrokers) != 2 || cfg.Events.KafkaBrokers[1] != "broker-2:9092" {
		t.Fatalf("unexpected brokers: %v", cfg.Events.KafkaBrokers)
	}
}
