package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"basegraph.app/blueprint/common/logger"
	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/queue"
)

// StaleClaimer hands over generation jobs whose worker died between reading
// and acknowledging them.
type StaleClaimer interface {
	ClaimStale(ctx context.Context, claimant string, minIdle time.Duration, count int64) ([]queue.StaleMessage, error)
}

// ReclaimerConfig.MaxDeliveries caps how often one message is handed out. A
// job past it keeps taking workers down and is dead-lettered instead. Zero
// disables the cap.
type ReclaimerConfig struct {
	Claimant      string
	MinIdle       time.Duration
	Interval      time.Duration
	BatchSize     int64
	MaxDeliveries int64
}

// Reclaimer settles stale generation jobs. A job whose document was already
// recorded is only acknowledged, a job delivered too often is dead-lettered
// as failed, and anything else is handed back to the worker.
type Reclaimer struct {
	claimer  StaleClaimer
	consumer Consumer
	statuses queue.JobStatusStore
	handle   queue.MessageProcessor
	cfg      ReclaimerConfig

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// NewReclaimer builds a reclaimer. statuses may be nil.
func NewReclaimer(claimer StaleClaimer, consumer Consumer, statuses queue.JobStatusStore, handle queue.MessageProcessor, cfg ReclaimerConfig) *Reclaimer {
	return &Reclaimer{
		claimer:   claimer,
		consumer:  consumer,
		statuses:  statuses,
		handle:    handle,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Run reclaims on every tick until Stop is called or ctx ends.
func (r *Reclaimer) Run(ctx context.Context) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "blueprint.worker.reclaimer",
	})

	defer close(r.stoppedCh)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "reclaimer started",
		"interval", r.cfg.Interval,
		"min_idle", r.cfg.MinIdle,
		"max_deliveries", r.cfg.MaxDeliveries)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			slog.InfoContext(ctx, "reclaimer stopping")
			return
		case <-ticker.C:
			if _, err := r.ReclaimOnce(ctx); err != nil {
				slog.ErrorContext(ctx, "reclaim cycle error", "error", err)
			}
		}
	}
}

func (r *Reclaimer) Stop() {
	close(r.stopCh)
	<-r.stoppedCh
}

// ReclaimOnce claims one batch of stale jobs and settles each of them. It
// returns how many jobs were claimed.
func (r *Reclaimer) ReclaimOnce(ctx context.Context) (int, error) {
	stale, err := r.claimer.ClaimStale(ctx, r.cfg.Claimant, r.cfg.MinIdle, r.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("claiming stale jobs: %w", err)
	}

	if len(stale) > 0 {
		slog.InfoContext(ctx, "claimed stale generation jobs", "count", len(stale))
	}
	for _, s := range stale {
		r.settle(ctx, s)
	}
	return len(stale), nil
}

func (r *Reclaimer) settle(ctx context.Context, s queue.StaleMessage) {
	jobID := s.JobID
	messageID := s.ID
	contextID := s.ContextID
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		JobID:     &jobID,
		MessageID: &messageID,
		ContextID: &contextID,
	})

	if prior := r.lookup(ctx, s.JobID); prior != nil && prior.Status == model.JobStatusCompleted {
		// The document was stored; only the ack was lost.
		slog.InfoContext(ctx, "stale job already completed, acknowledging", "prd_id", prior.PRDID)
		if err := r.consumer.Ack(ctx, s.Message); err != nil {
			slog.WarnContext(ctx, "failed to ACK completed job", "error", err)
		}
		return
	}

	if r.cfg.MaxDeliveries > 0 && s.Deliveries > r.cfg.MaxDeliveries {
		reason := fmt.Sprintf("abandoned after %d deliveries without acknowledgement", s.Deliveries-1)
		slog.ErrorContext(ctx, "stale job exceeded its deliveries, sending to DLQ",
			"deliveries", s.Deliveries,
			"previous_consumer", s.PreviousConsumer)
		if err := r.consumer.SendDLQ(ctx, s.Message, reason); err != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", err)
		}

		job := s.Job()
		job.Status = model.JobStatusFailed
		job.Error = reason
		putStatus(ctx, r.statuses, job)
		return
	}

	slog.InfoContext(ctx, "redelivering stale job",
		"previous_consumer", s.PreviousConsumer,
		"idle_time", s.Idle,
		"deliveries", s.Deliveries,
		"attempt", s.Attempt)

	putStatus(ctx, r.statuses, s.Job())
	_ = r.handle(ctx, s.Message)
}

func (r *Reclaimer) lookup(ctx context.Context, jobID int64) *model.GenerationJob {
	if r.statuses == nil {
		return nil
	}
	job, err := r.statuses.Get(ctx, jobID)
	if err != nil {
		if !errors.Is(err, queue.ErrJobNotFound) {
			slog.WarnContext(ctx, "failed to load job status", "error", err)
		}
		return nil
	}
	return job
}
