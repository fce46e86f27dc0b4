package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"basegraph.app/blueprint/internal/model"
)

type Producer interface {
	Enqueue(ctx context.Context, job model.GenerationJob) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, job model.GenerationJob) error {
	if job.Attempt <= 0 {
		job.Attempt = 1
	}
	if job.RequestedAt.IsZero() {
		job.RequestedAt = time.Now().UTC()
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: jobValues(job),
	}).Err(); err != nil {
		return fmt.Errorf("enqueue job: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued generation job", "job_id", job.ID, "context_id", job.ContextID, "attempt", job.Attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
