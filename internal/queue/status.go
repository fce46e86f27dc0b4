package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"basegraph.app/blueprint/internal/model"
)

var ErrJobNotFound = errors.New("job not found")

// JobStatusStore keeps the latest state of each generation job.
type JobStatusStore interface {
	Put(ctx context.Context, job model.GenerationJob) error
	Get(ctx context.Context, jobID int64) (*model.GenerationJob, error)
}

type redisJobStatusStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisJobStatusStore stores job states as JSON values that expire after ttl.
func NewRedisJobStatusStore(client *redis.Client, ttl time.Duration) JobStatusStore {
	return &redisJobStatusStore{client: client, ttl: ttl}
}

func (s *redisJobStatusStore) Put(ctx context.Context, job model.GenerationJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshaling job %d: %w", job.ID, err)
	}
	if err := s.client.Set(ctx, jobStatusKey(job.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("storing job %d: %w", job.ID, err)
	}
	return nil
}

func (s *redisJobStatusStore) Get(ctx context.Context, jobID int64) (*model.GenerationJob, error) {
	payload, err := s.client.Get(ctx, jobStatusKey(jobID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("loading job %d: %w", jobID, err)
	}

	var job model.GenerationJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("decoding job %d: %w", jobID, err)
	}
	return &job, nil
}

func jobStatusKey(jobID int64) string {
	return fmt.Sprintf("blueprint:job:%d", jobID)
}
