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

type Config struct {
	MaxAttempts int
}

type Worker struct {
	consumer  Consumer
	processor JobProcessor
	statuses  queue.JobStatusStore
	cfg       Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// New builds a worker. statuses may be nil when job states are not tracked.
func New(consumer Consumer, processor JobProcessor, statuses queue.JobStatusStore, cfg Config) *Worker {
	return &Worker{
		consumer:  consumer,
		processor: processor,
		statuses:  statuses,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "blueprint.worker",
	})

	defer close(w.stoppedCh)

	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				// Brief backoff on error
				time.Sleep(time.Second)
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		_ = w.HandleMessage(ctx, msg)
	}

	return nil
}

// HandleMessage processes one message and routes a failure to retry or the
// dead letter stream. The processing error is returned for logging only.
func (w *Worker) HandleMessage(ctx context.Context, msg queue.Message) error {
	jobID := msg.JobID
	messageID := msg.ID
	contextID := msg.ContextID
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		JobID:     &jobID,
		MessageID: &messageID,
		ContextID: &contextID,
	})

	err := w.processMessageSafe(ctx, msg)
	if err != nil {
		slog.ErrorContext(ctx, "message processing failed", "error", err)
		w.handleFailedMessage(ctx, msg, err)
	}
	return err
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing", "panic", r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// ProcessMessage generates the document for one job and acks it.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	sc := logger.StartSpanFromTraceID(ctx, msg.TraceID, "worker.generate_prd")
	defer sc.End()
	ctx = sc.Context()

	slog.InfoContext(ctx, "processing generation job", "attempt", msg.Attempt)

	start := time.Now()
	job := msg.Job()

	prdID, err := w.processor.Process(ctx, job)
	if err != nil {
		sc.RecordError(err)
		return err
	}

	if err := w.consumer.Ack(ctx, msg); err != nil {
		// The reclaimer may redeliver it; generation stores a fresh document either way.
		slog.WarnContext(ctx, "failed to ACK message", "error", err)
	}

	job.Status = model.JobStatusCompleted
	job.PRDID = prdID
	w.record(ctx, job)

	slog.InfoContext(ctx, "generation job completed",
		"prd_id", prdID,
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Attempt >= w.cfg.MaxAttempts || errors.Is(err, ErrPermanent) {
		slog.ErrorContext(ctx, "job cannot be retried, sending to DLQ", "attempts", msg.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}

		job := msg.Job()
		job.Status = model.JobStatusFailed
		job.Error = err.Error()
		w.record(ctx, job)
		return
	}

	slog.WarnContext(ctx, "requeuing failed message", "attempt", msg.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}

func (w *Worker) record(ctx context.Context, job model.GenerationJob) {
	putStatus(ctx, w.statuses, job)
}

func putStatus(ctx context.Context, statuses queue.JobStatusStore, job model.GenerationJob) {
	if statuses == nil {
		return
	}
	if err := statuses.Put(ctx, job); err != nil {
		slog.WarnContext(ctx, "failed to record job status", "error", err, "status", job.Status)
	}
}
