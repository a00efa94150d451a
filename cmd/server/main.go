package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"restaurantBackoffice/internal/config"
	authuc "restaurantBackoffice/internal/modules/auth/application/usecase"
	transport "restaurantBackoffice/internal/modules/backoffice/interface"
	customersinfra "restaurantBackoffice/internal/modules/customers/infrastructure"
	dashboarduc "restaurantBackoffice/internal/modules/dashboard/application/usecase"
	eventsuc "restaurantBackoffice/internal/modules/events/application/usecase"
	feedbackinfra "restaurantBackoffice/internal/modules/feedback/infrastructure"
	menuinfra "restaurantBackoffice/internal/modules/menu/infrastructure"
	ordersuc "restaurantBackoffice/internal/modules/orders/application/usecase"
	reservationsuc "restaurantBackoffice/internal/modules/reservations/application/usecase"
	staffinfra "restaurantBackoffice/internal/modules/staff/infrastructure"
	tablesinfra "restaurantBackoffice/internal/modules/tables/infrastructure"
	usersinfra "restaurantBackoffice/internal/modules/users/infrastructure"
	"restaurantBackoffice/internal/platform/broker"
	"restaurantBackoffice/internal/platform/docstore"
	"restaurantBackoffice/internal/platform/seed"
	"restaurantBackoffice/internal/platform/telemetry"
	"restaurantBackoffice/internal/shared/auth"
	"restaurantBackoffice/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.Open(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: true,
		Directory: cfg.Logging.Directory,
	}, os.Stdout, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	if err := run(cfg); err != nil {
		slog.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("tracer shutdown", slog.Any("error", err))
		}
	}()

	store, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()
	slog.Info("document store ready", slog.String("driver", cfg.Store.Driver))

	seedData, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}
	if _, err := seed.Apply(ctx, store, seedData, auth.HashPassword); err != nil {
		return err
	}

	publisher, err := broker.NewPublisher(cfg.Events)
	if err != nil {
		return err
	}
	defer publisher.Close()
	slog.Info("event publisher ready", slog.String("driver", cfg.Events.Driver))

	jwtManager := auth.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.JWTTTL)
	handler := transport.NewHandler(transport.Deps{
		Auth:         authuc.NewAuthUseCase(usersinfra.NewRepository(store), jwtManager),
		Reservations: reservationsuc.NewReservationManager(store),
		Pricing:      ordersuc.NewPricingEngine(store, cfg.Pricing.Strict),
		Stats:        dashboarduc.NewStatsUseCase(store),
		Tables:       tablesinfra.NewRepository(store),
		Customers:    customersinfra.NewRepository(store),
		Menu:         menuinfra.NewRepository(store),
		Staff:        staffinfra.NewRepository(store),
		Feedback:     feedbackinfra.NewRepository(store),
		Events:       eventsuc.NewPublishUseCase(publisher),
	})

	e := transport.NewServer(handler)
	e.Logger.SetOutput(log.Writer())

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if cfg.Telemetry.Enabled {
		srv.Handler = telemetry.Handler(e, cfg.Telemetry.ServiceName)
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg config.StoreConfig) (docstore.Store, func(), error) {
	switch cfg.Driver {
	case "memory":
		return docstore.NewMemoryStore(), func() {}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return docstore.NewRedisStore(client, cfg.RedisKey), func() { client.Close() }, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connect: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("postgres ping: %w", err)
		}
		store := docstore.NewPostgresStore(pool, cfg.PostgresDocumentID)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	default:
		return docstore.NewFileStore(cfg.FilePath), func() {}, nil
	}
}
