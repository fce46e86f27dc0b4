package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"basegraph.app/blueprint/common/arangodb"
	"basegraph.app/blueprint/common/id"
	"basegraph.app/blueprint/common/llm"
	"basegraph.app/blueprint/common/logger"
	"basegraph.app/blueprint/common/otel"
	"basegraph.app/blueprint/core/config"
	"basegraph.app/blueprint/internal/assistant"
	"basegraph.app/blueprint/internal/http/middleware"
	httprouter "basegraph.app/blueprint/internal/http/router"
	"basegraph.app/blueprint/internal/intake"
	"basegraph.app/blueprint/internal/queue"
	"basegraph.app/blueprint/internal/service"
	"basegraph.app/blueprint/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "blueprint starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	stores, closeStores, err := store.Open(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to open stores", "error", err)
		os.Exit(1)
	}
	defer closeStores()

	var opts []service.Option

	if cfg.Redis.Enabled() {
		redisClient, err := connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		slog.InfoContext(ctx, "redis connected", "stream", cfg.Redis.Stream)

		stores.WithPRDCache(redisClient, cfg.Redis.PRDCacheTTL)

		producer := queue.NewRedisProducer(redisClient, cfg.Redis.Stream, slog.Default())
		defer producer.Close()

		opts = append(opts,
			service.WithQueue(producer),
			service.WithJobStatuses(queue.NewRedisJobStatusStore(redisClient, cfg.Redis.JobStatusTTL)),
		)
	} else {
		slog.InfoContext(ctx, "redis disabled; async generation and prd cache are off")
	}

	if cfg.ArangoDB.Enabled() {
		graph, err := arangodb.New(ctx, arangodb.Config{
			URL:      cfg.ArangoDB.URL,
			Username: cfg.ArangoDB.Username,
			Password: cfg.ArangoDB.Password,
			Database: cfg.ArangoDB.Database,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to arangodb", "error", err)
			os.Exit(1)
		}
		defer graph.Close()

		if err := arangodb.Setup(ctx, graph); err != nil {
			slog.ErrorContext(ctx, "failed to prepare arangodb graph", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "arangodb connected", "database", cfg.ArangoDB.Database)
		opts = append(opts, service.WithGraphSink(service.NewGraphSink(graph)))
	}

	if cfg.GitLab.Enabled() {
		issues, err := intake.NewGitLabIssueSource(cfg.GitLab.BaseURL, cfg.GitLab.Token)
		if err != nil {
			slog.ErrorContext(ctx, "failed to create gitlab client", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "gitlab intake enabled", "base_url", cfg.GitLab.BaseURL)
		opts = append(opts, service.WithIssueSource(issues))
	}

	ai, err := assistant.Open(ctx, llm.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create assistant", "error", err)
		os.Exit(1)
	}
	opts = append(opts, service.WithAssistant(ai))

	services := service.NewServices(stores, opts...)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return client, nil
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger("/health"))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		Version:                cfg.OTel.ServiceVersion,
		GitLabWebhookSecret:    cfg.GitLab.WebhookSecret,
		GitLabRequirementLabel: cfg.GitLab.RequirementLabel,
	})

	return router
}

const banner = `
 ____  _                       _       _
| __ )| |_   _  ___ _ __  _ __(_)_ __ | |_
|  _ \| | | | |/ _ \ '_ \| '__| | '_ \| __|
| |_) | | |_| |  __/ |_) | |  | | | | | |_
|____/|_|\__,_|\___| .__/|_|  |_|_| |_|\__|
                   |_|
`
