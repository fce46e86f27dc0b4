package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"basegraph.app/blueprint/common/id"
	"basegraph.app/blueprint/common/logger"
	"basegraph.app/blueprint/common/otel"
	"basegraph.app/blueprint/core/config"
	"basegraph.app/blueprint/internal/queue"
	"basegraph.app/blueprint/internal/service"
	"basegraph.app/blueprint/internal/store"
	"basegraph.app/blueprint/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "blueprint worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Redis.Group,
		"consumer_name", cfg.Redis.Consumer)

	// Different node ID than the server
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	stores, closeStores, err := store.Open(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to open stores", "error", err)
		os.Exit(1)
	}
	defer closeStores()

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Redis.Stream)

	stores.WithPRDCache(redisClient, cfg.Redis.PRDCacheTTL)
	statuses := queue.NewRedisJobStatusStore(redisClient, cfg.Redis.JobStatusTTL)
	services := service.NewServices(stores, service.WithJobStatuses(statuses))

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Redis.Stream,
		Group:        cfg.Redis.Group,
		Consumer:     cfg.Redis.Consumer,
		DLQStream:    cfg.Redis.DLQStream,
		BatchSize:    1, // one document at a time
		Block:        5 * time.Second,
		MaxAttempts:  cfg.Redis.MaxAttempts,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	w := worker.New(consumer, worker.NewGenerationProcessor(services.PRDs()), statuses, worker.Config{
		MaxAttempts: cfg.Redis.MaxAttempts,
	})

	reclaimer := worker.NewReclaimer(consumer, consumer, statuses, w.HandleMessage, worker.ReclaimerConfig{
		Claimant:      cfg.Redis.Consumer + "-reclaimer",
		MinIdle:       5 * time.Minute,
		Interval:      1 * time.Minute,
		BatchSize:     10,
		MaxDeliveries: int64(cfg.Redis.MaxAttempts),
	})

	errCh := make(chan error, 2)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Reclaimer first; the worker may be mid-generation
	reclaimer.Stop()
	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
 ____  _                       _       _                       _
| __ )| |_   _  ___ _ __  _ __(_)_ __ | |_  __      _____  _ __| | _____ _ __
|  _ \| | | | |/ _ \ '_ \| '__| | '_ \| __| \ \ /\ / / _ \| '__| |/ / _ \ '__|
| |_) | | |_| |  __/ |_) | |  | | | | | |_   \ V  V / (_) | |  |   <  __/ |
|____/|_|\__,_|\___| .__/|_|  |_|_| |_|\__|   \_/\_/ \___/|_|  |_|\_\___|_|
                   |_|
`
